package models

// Variable is one term of a financial equation.
type Variable struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Impact      float64 `json:"impact"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

// EquationInsight is one observation attached to an equation.
type EquationInsight struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
	Message  string  `json:"message"`
}

// EquationResult is a human-readable "A × B = C" financial equation.
// Variables always has at least one entry; the fallback equation has
// exactly one variable with id "demo".
type EquationResult struct {
	Formula   string            `json:"formula"`
	Variables []Variable        `json:"variables"`
	Insights  []EquationInsight `json:"insights"`
}
