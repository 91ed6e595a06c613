// Package advisor is the AI integration and response normalization layer:
// it turns user-supplied financial context into model prompts, invokes the
// model, classifies failures, and coerces free-form model output into fully
// populated domain objects the SPA can render without crashing.
package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finsight/finsight/internal/cache"
	"github.com/finsight/finsight/pkg/models"
)

// analysisConfidence is the fixed confidence attached to every successful
// question analysis. It is a constant, not derived from the response.
const analysisConfidence = 0.85

const analysisCacheTTL = time.Hour

// Fixed generic errors for the operations that rethrow without fallback.
// The message is user-facing French; the raw cause is only logged.
var (
	ErrScenarioFailed = errors.New("la génération du scénario a échoué, veuillez réessayer")
	ErrAdviceFailed   = errors.New("le conseiller est momentanément indisponible, veuillez réessayer")
)

// AnalysisStore persists successful analyses. Writes are best-effort:
// a storage failure never fails the user-facing operation.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, a *models.Analysis) error
}

// ResultCache caches successful analysis results.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Service exposes the five task orchestrators. Each call is independent
// and stateless between invocations; per-operation failure behavior is
// deliberately asymmetric and must stay that way (the UI depends on it).
type Service struct {
	client  models.ChatClient
	store   AnalysisStore
	cache   ResultCache
	logger  *slog.Logger
	timeout time.Duration
}

// NewService wires the orchestrators. logger receives raw provider errors
// at classification time; pass a discard logger in production so no
// diagnostic output reaches production consoles.
func NewService(client models.ChatClient, st AnalysisStore, ca ResultCache, logger *slog.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{client: client, store: st, cache: ca, logger: logger, timeout: timeout}
}

// classify logs the raw cause exactly once, then maps it onto the closed
// taxonomy. The returned error is safe to surface to end users.
func (s *Service) classify(err error) *models.ServiceError {
	svcErr := Classify(err)
	s.logger.Error("model call failed", "code", string(svcErr.Code), "error", err)
	return svcErr
}

func (s *Service) complete(ctx context.Context, prompt models.Prompt, history []models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Complete(ctx, models.ChatRequest{Prompt: prompt, History: history})
}

// AnalyzeFinancialQuestion analyzes a free-form financial question.
// On NETWORK_ERROR or GENERIC_ERROR it resolves to the demo analysis;
// other classified errors are returned to the caller.
func (s *Service) AnalyzeFinancialQuestion(ctx context.Context, question string, mood int, tags []string) (*models.AnalysisResult, error) {
	key := cache.AnalysisKey(analysisHash(question, mood, tags))
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			var result models.AnalysisResult
			if json.Unmarshal(cached, &result) == nil {
				return &result, nil
			}
		}
	}

	raw, err := s.complete(ctx, BuildAnalysisPrompt(question, mood, tags), nil)
	if err != nil {
		svcErr := s.classify(err)
		if svcErr.Code == models.CodeNetworkError || svcErr.Code == models.CodeGenericError {
			return FallbackAnalysis(), nil
		}
		return nil, svcErr
	}

	result := &models.AnalysisResult{
		Analysis:   raw,
		Category:   ExtractCategory(raw),
		Confidence: analysisConfidence,
		Insights:   ExtractInsights(raw),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, key, payload, analysisCacheTTL)
		}
	}
	if s.store != nil {
		_ = s.store.SaveAnalysis(ctx, &models.Analysis{
			ID:         uuid.New(),
			Question:   question,
			Mood:       mood,
			Tags:       tags,
			Analysis:   raw,
			Category:   result.Category,
			Confidence: result.Confidence,
			CreatedAt:  time.Now().UTC(),
		})
	}
	return result, nil
}

// GeneratePersonalizedInsights produces recommendations from the user's
// financial context. This operation never fails: any error degrades to a
// fixed single-item list.
func (s *Service) GeneratePersonalizedInsights(ctx context.Context, uc models.UserContext) models.InsightsResult {
	raw, err := s.complete(ctx, BuildInsightsPrompt(uc), nil)
	if err != nil {
		s.classify(err)
		return models.InsightsResult{
			Insights:    fallbackInsightItems(),
			GeneratedAt: time.Now().UTC(),
		}
	}
	return models.InsightsResult{
		Insights:    ParseInsightsFromText(raw),
		GeneratedAt: time.Now().UTC(),
	}
}

// fallbackInsightItems is the inline degradation for insight generation.
// Intentionally distinct from Fallback(KindAnalysis).
func fallbackInsightItems() []models.InsightItem {
	return []models.InsightItem{{
		Title:       "Vos finances en un coup d'œil",
		Description: "Le service de recommandations est momentanément indisponible. Vos données restent inchangées.",
		Actions:     []string{"Vérifiez votre connexion", "Réessayez dans quelques minutes"},
	}}
}

// GenerateFinancialEquation builds a symbolic equation from the user's
// context. This operation never fails: any error resolves to the demo
// equation.
func (s *Service) GenerateFinancialEquation(ctx context.Context, uc models.UserContext) *models.EquationResult {
	raw, err := s.complete(ctx, BuildEquationPrompt(uc), nil)
	if err != nil {
		s.classify(err)
		return FallbackEquation()
	}
	eq := ParseEquationFromText(raw)
	return &eq
}

// GenerateScenario projects a what-if scenario. No fallback exists for
// this operation: any failure returns the fixed generic error.
func (s *Service) GenerateScenario(ctx context.Context, situation, scenarioType string) (*models.ScenarioResult, error) {
	raw, err := s.complete(ctx, BuildScenarioPrompt(situation, scenarioType), nil)
	if err != nil {
		s.logger.Error("scenario generation failed", "error", err)
		return nil, ErrScenarioFailed
	}
	res := ParseScenarioFromText(raw, scenarioType)
	return &res, nil
}

// StreamFinancialAdvice streams advice deltas to onChunk in arrival order,
// filtering empty deltas. On failure it returns the fixed generic error;
// already-delivered chunks stand. The accumulated reply is returned for
// persistence.
func (s *Service) StreamFinancialAdvice(ctx context.Context, message string, history []models.ChatMessage, onChunk func(delta string)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stream, err := s.client.Stream(ctx, models.ChatRequest{
		Prompt:  BuildAdvicePrompt(message),
		History: history,
	})
	if err != nil {
		s.logger.Error("advice stream failed to start", "error", err)
		return "", ErrAdviceFailed
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.logger.Error("advice stream interrupted", "error", err)
			return reply.String(), ErrAdviceFailed
		}
		if delta == "" {
			continue
		}
		reply.WriteString(delta)
		onChunk(delta)
	}
	return reply.String(), nil
}

func analysisHash(question string, mood int, tags []string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s", question, mood, strings.Join(tags, ","))
	return hex.EncodeToString(h.Sum(nil))
}
