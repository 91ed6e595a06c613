package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/finsight/finsight/internal/api/response"
	"github.com/finsight/finsight/pkg/models"
)

// ScenarioGenerator defines the interface the scenario handler depends on.
type ScenarioGenerator interface {
	GenerateScenario(ctx context.Context, situation, scenarioType string) (*models.ScenarioResult, error)
}

// NewScenarioHandler returns an http.HandlerFunc for POST /api/v1/scenario.
// Scenario generation has no fallback: any model failure is a 502 carrying
// the fixed generic message.
func NewScenarioHandler(svc ScenarioGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Situation    string `json:"situation"`
			ScenarioType string `json:"scenario_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		req.Situation = strings.TrimSpace(req.Situation)
		if req.Situation == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "situation is required", nil)
			return
		}
		if req.ScenarioType == "" {
			req.ScenarioType = "optimiste"
		}

		result, err := svc.GenerateScenario(r.Context(), req.Situation, req.ScenarioType)
		if err != nil {
			response.Error(w, http.StatusBadGateway, "SCENARIO_FAILED", err.Error(), nil)
			return
		}

		response.JSON(w, result)
	}
}
