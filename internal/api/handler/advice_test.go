package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finsight/internal/advisor"
	"github.com/finsight/finsight/internal/store"
	"github.com/finsight/finsight/pkg/models"
)

// --- doubles ---

type mockStreamer struct {
	deltas []string
	err    error

	gotMessage string
	gotHistory []models.ChatMessage
}

func (m *mockStreamer) StreamFinancialAdvice(_ context.Context, message string, history []models.ChatMessage, onChunk func(string)) (string, error) {
	m.gotMessage = message
	m.gotHistory = history
	var reply strings.Builder
	for _, d := range m.deltas {
		reply.WriteString(d)
		onChunk(d)
	}
	return reply.String(), m.err
}

type memConvStore struct {
	mu            sync.Mutex
	conversations map[uuid.UUID]*models.Conversation
	messages      map[uuid.UUID][]*models.Message
}

func newMemConvStore() *memConvStore {
	return &memConvStore{
		conversations: map[uuid.UUID]*models.Conversation{},
		messages:      map[uuid.UUID][]*models.Message{},
	}
}

func (m *memConvStore) CreateConversation(_ context.Context, c *models.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[c.ID] = c
	return nil
}

func (m *memConvStore) GetConversation(_ context.Context, id uuid.UUID) (*models.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.conversations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (m *memConvStore) AppendMessage(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[msg.ConversationID] = append(m.messages[msg.ConversationID], msg)
	return nil
}

func (m *memConvStore) ListMessages(_ context.Context, id uuid.UUID, limit int) ([]*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.messages[id]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

// --- tests ---

func TestAdviceHandler_StreamsSSE(t *testing.T) {
	streamer := &mockStreamer{deltas: []string{"Bonjour", " !"}}
	st := newMemConvStore()
	h := NewAdviceHandler(streamer, st)

	rec := httptest.NewRecorder()
	h(rec, postJSON(t, "/api/v1/advice", map[string]string{"message": "un conseil ?"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Conversation-ID"))

	body := rec.Body.String()
	assert.Contains(t, body, `data: {"delta":"Bonjour"}`)
	assert.Contains(t, body, `data: {"delta":" !"}`)
	assert.Contains(t, body, "event: done")
	assert.NotContains(t, body, "event: error")

	assert.Equal(t, "un conseil ?", streamer.gotMessage)
}

func TestAdviceHandler_PersistsBothTurns(t *testing.T) {
	streamer := &mockStreamer{deltas: []string{"Commencez par un budget."}}
	st := newMemConvStore()
	h := NewAdviceHandler(streamer, st)

	rec := httptest.NewRecorder()
	h(rec, postJSON(t, "/api/v1/advice", map[string]string{"message": "par où commencer ?"}))
	require.Equal(t, http.StatusOK, rec.Code)

	convID, err := uuid.Parse(rec.Header().Get("X-Conversation-ID"))
	require.NoError(t, err)

	msgs, err := st.ListMessages(context.Background(), convID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, "par où commencer ?", msgs[0].Content)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Commencez par un budget.", msgs[1].Content)
}

func TestAdviceHandler_LoadsHistory(t *testing.T) {
	st := newMemConvStore()
	now := time.Now().UTC()
	conv := &models.Conversation{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.CreateConversation(context.Background(), conv))
	require.NoError(t, st.AppendMessage(context.Background(), &models.Message{
		ID: uuid.New(), ConversationID: conv.ID, Role: models.RoleUser, Content: "bonjour", CreatedAt: now,
	}))

	streamer := &mockStreamer{deltas: []string{"suite"}}
	h := NewAdviceHandler(streamer, st)

	rec := httptest.NewRecorder()
	h(rec, postJSON(t, "/api/v1/advice", map[string]string{
		"message":         "et ensuite ?",
		"conversation_id": conv.ID.String(),
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, conv.ID.String(), rec.Header().Get("X-Conversation-ID"))
	require.Len(t, streamer.gotHistory, 1)
	assert.Equal(t, "bonjour", streamer.gotHistory[0].Content)
}

func TestAdviceHandler_UnknownConversation(t *testing.T) {
	h := NewAdviceHandler(&mockStreamer{}, newMemConvStore())

	rec := httptest.NewRecorder()
	h(rec, postJSON(t, "/api/v1/advice", map[string]string{
		"message":         "bonjour",
		"conversation_id": uuid.NewString(),
	}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdviceHandler_EmptyMessage(t *testing.T) {
	h := NewAdviceHandler(&mockStreamer{}, newMemConvStore())

	rec := httptest.NewRecorder()
	h(rec, postJSON(t, "/api/v1/advice", map[string]string{"message": "   "}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// A stream failure after delivered chunks emits an error event; the
// delivered chunks and the partial reply are kept.
func TestAdviceHandler_MidStreamError(t *testing.T) {
	streamer := &mockStreamer{deltas: []string{"partiel"}, err: advisor.ErrAdviceFailed}
	st := newMemConvStore()
	h := NewAdviceHandler(streamer, st)

	rec := httptest.NewRecorder()
	h(rec, postJSON(t, "/api/v1/advice", map[string]string{"message": "bonjour"}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data: {"delta":"partiel"}`)
	assert.Contains(t, body, "event: error")
	assert.Contains(t, body, advisor.ErrAdviceFailed.Error())
	assert.NotContains(t, body, "event: done")

	convID, err := uuid.Parse(rec.Header().Get("X-Conversation-ID"))
	require.NoError(t, err)
	msgs, err := st.ListMessages(context.Background(), convID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "partiel", msgs[1].Content)
}
