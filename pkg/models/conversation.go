package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation groups the message history of one advice chat.
type Conversation struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Message is one persisted turn of an advice conversation. Role is one of
// the chat roles (user or assistant; system prompts are never persisted).
type Message struct {
	ID             uuid.UUID `db:"id"              json:"id"`
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	Role           string    `db:"role"            json:"role"`
	Content        string    `db:"content"         json:"content"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
}
