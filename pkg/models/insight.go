package models

import "time"

// InsightItem is one personalized recommendation parsed from model text,
// or a catch-all item wrapping the raw text when no structure was found.
type InsightItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// InsightsResult is the output of personalized insight generation.
// This operation never fails: on any error it degrades to a fixed
// single-item list.
type InsightsResult struct {
	Insights    []InsightItem `json:"insights"`
	GeneratedAt time.Time     `json:"generated_at"`
}
