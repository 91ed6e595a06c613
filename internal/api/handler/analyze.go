package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/finsight/finsight/internal/api/response"
	"github.com/finsight/finsight/pkg/models"
)

const (
	maxQuestionLen = 2000
	minMood        = 1
	maxMood        = 10
	defaultMood    = 5
)

// QuestionAnalyzer defines the interface the analyze handler depends on.
type QuestionAnalyzer interface {
	AnalyzeFinancialQuestion(ctx context.Context, question string, mood int, tags []string) (*models.AnalysisResult, error)
}

// NewAnalyzeHandler returns an http.HandlerFunc for POST /api/v1/analyze.
func NewAnalyzeHandler(svc QuestionAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question string   `json:"question"`
			Mood     int      `json:"mood"`
			Tags     []string `json:"tags"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		req.Question = strings.TrimSpace(req.Question)
		if req.Question == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "question is required", nil)
			return
		}
		if len(req.Question) > maxQuestionLen {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "question is too long", nil)
			return
		}

		mood := req.Mood
		if mood == 0 {
			mood = defaultMood
		}
		if mood < minMood || mood > maxMood {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "mood must be between 1 and 10", nil)
			return
		}

		result, err := svc.AnalyzeFinancialQuestion(r.Context(), req.Question, mood, req.Tags)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		response.JSON(w, result)
	}
}
