package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finsight/finsight/pkg/models"
)

var ErrNotFound = errors.New("resource not found")
var ErrDuplicateKey = errors.New("duplicate key violation")

// Store is the data access interface. All database operations go through here.
type Store interface {
	Ping(ctx context.Context) error

	GetAPIKeyByPrefix(ctx context.Context, prefix string) ([]*models.APIKey, error)
	UpdateAPIKeyLastUsed(ctx context.Context, id uuid.UUID) error
	CreateAPIKey(ctx context.Context, key *models.APIKey) error
	ListAPIKeys(ctx context.Context) ([]*models.APIKey, error)
	RevokeAPIKey(ctx context.Context, id uuid.UUID) error

	SaveAnalysis(ctx context.Context, a *models.Analysis) error
	ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]*models.Analysis, int, error)

	CreateConversation(ctx context.Context, c *models.Conversation) error
	GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	AppendMessage(ctx context.Context, m *models.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]*models.Message, error)
}

// AnalysisFilter selects and paginates persisted analyses.
type AnalysisFilter struct {
	Category string
	Page     int
	Limit    int
}
