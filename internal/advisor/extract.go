package advisor

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/finsight/finsight/pkg/models"
)

const defaultCategory = "Général"

// categoryKeywords is scanned in declaration order; the first set with any
// keyword present in the text wins. Ties break by declaration order, not
// frequency — a deliberately coarse heuristic kept for output stability.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Émotionnel", []string{"stress", "anxiété", "émotion", "impulsif", "humeur", "culpabilité"}},
	{"Habitudes", []string{"habitude", "routine", "quotidien", "récurrent", "abonnement"}},
	{"Budget", []string{"budget", "dépense", "épargne", "économie", "revenu"}},
	{"Investissement", []string{"investissement", "placement", "bourse", "rendement", "action"}},
}

// ExtractCategory scans text case-insensitively against the fixed keyword
// sets and returns the first matching category. Defaults to "Général".
func ExtractCategory(text string) string {
	lower := strings.ToLower(text)
	for _, set := range categoryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.category
			}
		}
	}
	return defaultCategory
}

// ExtractInsights returns a single fixed insight regardless of input.
// Real per-response extraction never shipped; callers depend on this exact
// shape, so it stays until a structured-output contract with the model
// replaces it.
func ExtractInsights(_ string) []models.Insight {
	return []models.Insight{{
		Type:       "pattern",
		Message:    "Analyse basée sur vos habitudes financières récentes",
		Confidence: 0.7,
	}}
}

// ParseInsightsFromText scans model text line by line. A line containing
// "**" or "#" starts a new insight (title = markers stripped); bullet lines
// append to its actions; other non-empty lines extend its description.
// When no structure is found, the whole text degrades to one catch-all item.
func ParseInsightsFromText(text string) []models.InsightItem {
	var items []models.InsightItem
	var current *models.InsightItem

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch {
		case strings.Contains(trimmed, "**") || strings.Contains(trimmed, "#"):
			if current != nil {
				items = append(items, *current)
			}
			title := strings.NewReplacer("*", "", "#", "").Replace(trimmed)
			current = &models.InsightItem{Title: strings.TrimSpace(title)}
		case strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•"):
			if current != nil {
				if action := trimBullet(trimmed); action != "" {
					current.Actions = append(current.Actions, action)
				}
			}
		default:
			if current != nil {
				if current.Description != "" {
					current.Description += " "
				}
				current.Description += trimmed
			}
		}
	}
	if current != nil {
		items = append(items, *current)
	}

	if len(items) == 0 {
		items = append(items, models.InsightItem{
			Title:       "Aperçu",
			Description: truncate(text, 200) + "...",
		})
	}
	return items
}

// ParseEquationFromText extracts the largest brace-delimited JSON blob and
// validates it (non-empty formula, at least one variable, impacts in
// [0,1]). Anything else degrades to a fixed demonstration equation that
// embeds an excerpt of the raw text. Never fails.
func ParseEquationFromText(text string) models.EquationResult {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var eq models.EquationResult
		if err := json.Unmarshal([]byte(text[start:end+1]), &eq); err == nil && validEquation(eq) {
			return eq
		}
	}
	return demoEquation(text)
}

func validEquation(eq models.EquationResult) bool {
	if strings.TrimSpace(eq.Formula) == "" || len(eq.Variables) == 0 {
		return false
	}
	for _, v := range eq.Variables {
		if v.Impact < 0 || v.Impact > 1 {
			return false
		}
	}
	return true
}

func demoEquation(text string) models.EquationResult {
	return models.EquationResult{
		Formula: "Habitudes × État émotionnel = Impact financier",
		Variables: []models.Variable{
			{
				ID: "habits", Name: "Habitudes", Value: 65, Unit: "%",
				Impact: 0.65, Color: "#4F46E5",
				Description: "Poids de vos routines de dépense",
			},
			{
				ID: "emotional_state", Name: "État émotionnel", Value: 50, Unit: "%",
				Impact: 0.5, Color: "#F59E0B",
				Description: "Influence de votre humeur sur vos décisions",
			},
			{
				ID: "financial_impact", Name: "Impact financier", Value: 320, Unit: "€",
				Impact: 0.8, Color: "#10B981",
				Description: "Effet mensuel estimé sur votre solde",
			},
		},
		Insights: []models.EquationInsight{{
			ID:       "raw",
			Type:     "observation",
			Strength: 0.6,
			Message:  "Analyse : " + truncate(text, 100) + "...",
		}},
	}
}

const (
	maxScenarioSteps    = 5
	scenarioTimeframe   = "3 mois"
	scenarioProbability = 0.75
	minBalanceChange    = 100
	balanceChangeSpread = 400
)

// ParseScenarioFromText builds a scenario from model text. The description
// is a raw excerpt and steps come from bullet lines (capped at 5). The
// balance change is a bounded random placeholder in [100, 500) — not
// derived from the model output — until the model contract exposes a real
// figure.
func ParseScenarioFromText(text, scenarioType string) models.ScenarioResult {
	var steps []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "-") && !strings.Contains(line, "•") {
			continue
		}
		if step := trimBullet(strings.TrimSpace(line)); step != "" {
			steps = append(steps, step)
		}
		if len(steps) == maxScenarioSteps {
			break
		}
	}

	return models.ScenarioResult{
		Name:        "Scénario " + scenarioType,
		Description: truncate(text, 200) + "...",
		Impact: models.ScenarioImpact{
			BalanceChange: minBalanceChange + rand.IntN(balanceChangeSpread),
			Timeframe:     scenarioTimeframe,
			Probability:   scenarioProbability,
		},
		Variables: []models.Variable{},
		Steps:     steps,
	}
}

func trimBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-• \t"))
}

// truncate shortens s to maxBytes without splitting UTF-8 runes.
func truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
