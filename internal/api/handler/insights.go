package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finsight/finsight/internal/api/response"
	"github.com/finsight/finsight/pkg/models"
)

// InsightGenerator defines the interface the insights handler depends on.
// The operation never fails; the handler always answers 200.
type InsightGenerator interface {
	GeneratePersonalizedInsights(ctx context.Context, uc models.UserContext) models.InsightsResult
}

// NewInsightsHandler returns an http.HandlerFunc for POST /api/v1/insights.
func NewInsightsHandler(svc InsightGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var uc models.UserContext
		if err := json.NewDecoder(r.Body).Decode(&uc); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		response.JSON(w, svc.GeneratePersonalizedInsights(r.Context(), uc))
	}
}
