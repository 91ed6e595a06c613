package models

// ScenarioImpact quantifies the projected effect of a scenario.
type ScenarioImpact struct {
	BalanceChange int     `json:"balance_change"`
	Timeframe     string  `json:"timeframe"`
	Probability   float64 `json:"probability"`
}

// ScenarioResult is a what-if financial scenario. Steps is capped at 5
// entries; Variables may be empty.
type ScenarioResult struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Impact      ScenarioImpact `json:"impact"`
	Variables   []Variable     `json:"variables"`
	Steps       []string       `json:"steps"`
}
