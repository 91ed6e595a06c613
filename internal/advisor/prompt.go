package advisor

import (
	"fmt"
	"strings"

	"github.com/finsight/finsight/pkg/models"
)

// Per-task sampling parameters. Fixed here rather than caller-configurable:
// the extractors' heuristics are tuned to the response style these produce.
const (
	analysisTemperature float32 = 0.7
	analysisMaxTokens           = 800

	insightsTemperature float32 = 0.8
	insightsMaxTokens           = 1000

	equationTemperature float32 = 0.9
	equationMaxTokens           = 600

	scenarioTemperature float32 = 0.8
	scenarioMaxTokens           = 700

	adviceTemperature float32 = 0.7
	adviceMaxTokens           = 500
)

// Placeholders for absent context. Absent values must never leak as empty
// strings or zero literals into the prompt text.
const (
	noValue = "Non spécifié"
	noItems = "Aucun"
)

// Personas. The wording is stable on purpose: the extractors are tuned to
// the response style each persona produces.
const (
	analysisPersona = "Tu es un analyste spécialisé en finance comportementale. " +
		"Tu analyses les questions financières personnelles avec bienveillance, " +
		"en tenant compte de l'état émotionnel de l'utilisateur. " +
		"Réponds en français, de manière concise et structurée."

	insightsPersona = "Tu es un data scientist spécialisé en finances personnelles. " +
		"Tu produis des recommandations concrètes et actionnables à partir des données " +
		"de l'utilisateur. Structure ta réponse avec des titres en **gras** et des " +
		"actions en liste à puces. Réponds en français."

	equationPersona = "Tu es un data scientist qui traduit les comportements financiers " +
		"en équations symboliques. Réponds uniquement avec un objet JSON décrivant " +
		"l'équation : formula (texte de la forme \"A × B = C\"), variables " +
		"(id, name, value, unit, impact entre 0 et 1, color hexadécimale, description), " +
		"insights (id, type, strength entre 0 et 1, message)."

	scenarioPersona = "Tu es un planificateur financier. Tu décris des scénarios " +
		"d'évolution financière réalistes, avec des étapes concrètes en liste à puces. " +
		"Réponds en français."

	advicePersona = "Tu es un conseiller financier bienveillant. Tu donnes des conseils " +
		"pratiques et rassurants, en français, en phrases courtes."
)

// BuildAnalysisPrompt renders the prompt for a financial question analysis.
func BuildAnalysisPrompt(question string, mood int, tags []string) models.Prompt {
	user := fmt.Sprintf(`Question de l'utilisateur : %s
Humeur déclarée : %d/10
Thèmes associés : %s

Analyse cette question en expliquant les mécanismes comportementaux en jeu,
puis propose une piste d'action concrète.`,
		orPlaceholder(question), mood, joinOrNone(tags))

	return models.Prompt{
		System:      analysisPersona,
		User:        user,
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	}
}

// BuildInsightsPrompt renders the prompt for personalized insights.
func BuildInsightsPrompt(uc models.UserContext) models.Prompt {
	user := fmt.Sprintf(`Profil financier :
- Revenus mensuels : %s
- Dépenses mensuelles : %s
- Humeur : %s
- Thèmes : %s
- Objectifs : %s
- État émotionnel : %s
- Déclencheurs de dépenses : %s

Propose 3 à 5 recommandations personnalisées. Pour chacune : un titre en
**gras**, une courte explication, puis des actions en liste à puces.`,
		formatAmount(uc.MonthlyIncome),
		formatAmount(uc.MonthlyExpenses),
		formatMood(uc.Mood),
		joinOrNone(uc.Tags),
		joinOrNone(uc.Goals),
		orPlaceholder(uc.EmotionalState),
		joinOrNone(uc.Triggers))

	return models.Prompt{
		System:      insightsPersona,
		User:        user,
		Temperature: insightsTemperature,
		MaxTokens:   insightsMaxTokens,
	}
}

// BuildEquationPrompt renders the prompt for financial equation generation.
func BuildEquationPrompt(uc models.UserContext) models.Prompt {
	user := fmt.Sprintf(`Données de l'utilisateur :
- Revenus mensuels : %s
- Dépenses mensuelles : %s
- Humeur : %s
- État émotionnel : %s
- Déclencheurs : %s

Construis une équation symbolique reliant ses comportements à son résultat
financier, au format JSON décrit dans tes instructions.`,
		formatAmount(uc.MonthlyIncome),
		formatAmount(uc.MonthlyExpenses),
		formatMood(uc.Mood),
		orPlaceholder(uc.EmotionalState),
		joinOrNone(uc.Triggers))

	return models.Prompt{
		System:      equationPersona,
		User:        user,
		Temperature: equationTemperature,
		MaxTokens:   equationMaxTokens,
	}
}

// BuildScenarioPrompt renders the prompt for what-if scenario generation.
func BuildScenarioPrompt(situation, scenarioType string) models.Prompt {
	user := fmt.Sprintf(`Situation actuelle : %s
Type de scénario demandé : %s

Décris l'évolution probable sur les prochains mois, puis liste les étapes
concrètes à suivre (une par ligne, précédée d'un tiret).`,
		orPlaceholder(situation), orPlaceholder(scenarioType))

	return models.Prompt{
		System:      scenarioPersona,
		User:        user,
		Temperature: scenarioTemperature,
		MaxTokens:   scenarioMaxTokens,
	}
}

// BuildAdvicePrompt renders the prompt for streaming advice. Prior turns
// travel separately as ChatRequest.History.
func BuildAdvicePrompt(message string) models.Prompt {
	return models.Prompt{
		System:      advicePersona,
		User:        orPlaceholder(message),
		Temperature: adviceTemperature,
		MaxTokens:   adviceMaxTokens,
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return noValue
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return noItems
	}
	return strings.Join(items, ", ")
}

func formatAmount(v float64) string {
	if v == 0 {
		return noValue
	}
	return fmt.Sprintf("%.2f €", v)
}

func formatMood(mood int) string {
	if mood == 0 {
		return noValue
	}
	return fmt.Sprintf("%d/10", mood)
}
