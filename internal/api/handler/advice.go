package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finsight/finsight/internal/api/response"
	"github.com/finsight/finsight/internal/store"
	"github.com/finsight/finsight/pkg/models"
)

const historyLimit = 20

// AdviceStreamer defines the interface the advice handler depends on.
type AdviceStreamer interface {
	StreamFinancialAdvice(ctx context.Context, message string, history []models.ChatMessage, onChunk func(delta string)) (string, error)
}

// ConversationStore persists advice conversations. All writes are
// best-effort: a storage failure never interrupts an ongoing stream.
type ConversationStore interface {
	CreateConversation(ctx context.Context, c *models.Conversation) error
	GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	AppendMessage(ctx context.Context, m *models.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]*models.Message, error)
}

// NewAdviceHandler returns an http.HandlerFunc for POST /api/v1/advice.
// The response is a Server-Sent Events stream: one data event per model
// delta, then either "event: done" or "event: error". The conversation ID
// is echoed in X-Conversation-ID before the stream starts.
func NewAdviceHandler(svc AdviceStreamer, st ConversationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message        string `json:"message"`
			ConversationID string `json:"conversation_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "message is required", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			response.Error(w, http.StatusInternalServerError,
				"INTERNAL_ERROR", "Streaming is not supported", nil)
			return
		}

		conv, history, err := resolveConversation(r.Context(), st, req.ConversationID)
		if err != nil {
			response.Error(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Conversation-ID", conv.ID.String())
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		reply, streamErr := svc.StreamFinancialAdvice(r.Context(), req.Message, history, func(delta string) {
			payload, _ := json.Marshal(map[string]string{"delta": delta})
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		})

		// Persist the exchange regardless of how the stream ended; partial
		// replies are kept.
		persistTurn(r.Context(), st, conv.ID, req.Message, reply)

		if streamErr != nil {
			payload, _ := json.Marshal(map[string]string{"message": streamErr.Error()})
			fmt.Fprintf(w, "event: error\ndata: %s\n\n", payload)
			flusher.Flush()
			return
		}

		fmt.Fprintf(w, "event: done\ndata: {}\n\n")
		flusher.Flush()
	}
}

// resolveConversation loads an existing conversation and its recent history,
// or creates a fresh one when no ID is supplied.
func resolveConversation(ctx context.Context, st ConversationStore, rawID string) (*models.Conversation, []models.ChatMessage, error) {
	if rawID == "" {
		now := time.Now().UTC()
		conv := &models.Conversation{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
		if st != nil {
			_ = st.CreateConversation(ctx, conv)
		}
		return conv, nil, nil
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, nil, store.ErrNotFound
	}
	if st == nil {
		return &models.Conversation{ID: id}, nil, nil
	}

	conv, err := st.GetConversation(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := st.ListMessages(ctx, id, historyLimit)
	if err != nil {
		// History is an enhancement; stream without it.
		return conv, nil, nil
	}
	history := make([]models.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, models.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return conv, history, nil
}

func persistTurn(ctx context.Context, st ConversationStore, convID uuid.UUID, userMsg, reply string) {
	if st == nil {
		return
	}
	now := time.Now().UTC()
	_ = st.AppendMessage(ctx, &models.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		Role:           models.RoleUser,
		Content:        userMsg,
		CreatedAt:      now,
	})
	if reply != "" {
		_ = st.AppendMessage(ctx, &models.Message{
			ID:             uuid.New(),
			ConversationID: convID,
			Role:           models.RoleAssistant,
			Content:        reply,
			CreatedAt:      now.Add(time.Millisecond),
		})
	}
}
