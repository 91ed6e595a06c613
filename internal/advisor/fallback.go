package advisor

import "github.com/finsight/finsight/pkg/models"

// Fallback kinds with a demo result available.
const (
	KindAnalysis = "analysis"
	KindEquation = "equation"
)

// demoConfidence marks fallback data so the UI can label it.
const demoConfidence = 0.5

// Fallback returns the deterministic demo result for a kind, or nil when
// no fallback exists for that kind. Callers receiving nil must surface the
// error instead.
func Fallback(kind string) any {
	switch kind {
	case KindAnalysis:
		return FallbackAnalysis()
	case KindEquation:
		return FallbackEquation()
	default:
		return nil
	}
}

// FallbackAnalysis returns a complete demo analysis. No I/O, no randomness:
// tests assert the exact shape.
func FallbackAnalysis() *models.AnalysisResult {
	return &models.AnalysisResult{
		Analysis: "Le service d'analyse est momentanément indisponible. " +
			"Voici un exemple : vos dépenses récurrentes représentent souvent " +
			"la plus grande marge de manœuvre. Comparez-les à vos revenus " +
			"pour dégager une capacité d'épargne.",
		Category:   "Général",
		Confidence: demoConfidence,
		Insights: []models.Insight{{
			Type:       "demo",
			Message:    "Analyse de démonstration — réessayez plus tard pour un résultat personnalisé.",
			Confidence: demoConfidence,
		}},
	}
}

// FallbackEquation returns a complete demo equation with exactly one
// variable whose id is "demo".
func FallbackEquation() *models.EquationResult {
	return &models.EquationResult{
		Formula: "Démonstration × Mode = Exemple",
		Variables: []models.Variable{{
			ID:          "demo",
			Name:        "Démonstration",
			Value:       1,
			Unit:        "",
			Impact:      demoConfidence,
			Color:       "#9CA3AF",
			Description: "Variable d'exemple affichée quand le service IA est indisponible",
		}},
		Insights: []models.EquationInsight{{
			ID:       "demo",
			Type:     "demo",
			Strength: demoConfidence,
			Message:  "Équation de démonstration — réessayez plus tard pour une analyse personnalisée.",
		}},
	}
}
