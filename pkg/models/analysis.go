package models

import (
	"time"

	"github.com/google/uuid"
)

// Insight is one observation attached to a question analysis.
type Insight struct {
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult is the fully populated output of a question analysis.
// All fields are always set: on extraction failure the fallback generator
// fills them, with Confidence = 0.5 marking demo data.
type AnalysisResult struct {
	Analysis   string    `json:"analysis"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	Insights   []Insight `json:"insights"`
}

// Analysis is the persisted record of an analyzed question.
type Analysis struct {
	ID         uuid.UUID `db:"id"         json:"id"`
	Question   string    `db:"question"   json:"question"`
	Mood       int       `db:"mood"       json:"mood"`
	Tags       []string  `db:"tags"       json:"tags"`
	Analysis   string    `db:"analysis"   json:"analysis"`
	Category   string    `db:"category"   json:"category"`
	Confidence float64   `db:"confidence" json:"confidence"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// UserContext is the financial context supplied by the caller for
// insight, equation and scenario generation. Zero values mean "not
// provided" and render as explicit placeholders in prompts.
type UserContext struct {
	MonthlyIncome   float64  `json:"monthly_income"`
	MonthlyExpenses float64  `json:"monthly_expenses"`
	Mood            int      `json:"mood"`
	Tags            []string `json:"tags"`
	Goals           []string `json:"goals"`
	EmotionalState  string   `json:"emotional_state"`
	Triggers        []string `json:"triggers"`
}
