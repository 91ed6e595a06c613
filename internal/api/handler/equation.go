package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finsight/finsight/internal/api/response"
	"github.com/finsight/finsight/pkg/models"
)

// EquationGenerator defines the interface the equation handler depends on.
// The operation never fails; the handler always answers 200.
type EquationGenerator interface {
	GenerateFinancialEquation(ctx context.Context, uc models.UserContext) *models.EquationResult
}

// NewEquationHandler returns an http.HandlerFunc for POST /api/v1/equation.
func NewEquationHandler(svc EquationGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var uc models.UserContext
		if err := json.NewDecoder(r.Body).Decode(&uc); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		response.JSON(w, svc.GenerateFinancialEquation(r.Context(), uc))
	}
}
