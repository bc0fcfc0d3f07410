package agent

import (
	"encoding/json"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Conversation is a persisted chat between a user and the agent.
// Messages is a JSON array of ChatMessage values.
type Conversation struct {
	shared.OwnedAggregateRoot
	Title       string
	Messages    string
	DashboardID *uuid.UUID
}

// Transcript roles
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// ChatMessage is one entry of a conversation transcript
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// ConversationFields are the values accepted when creating a conversation
type ConversationFields struct {
	Title       string
	Messages    string
	DashboardID *uuid.UUID
}

// ConversationPatch lists the fields a partial update may change
type ConversationPatch struct {
	Title       *string
	Messages    *string
	DashboardID *uuid.UUID
}

// NewConversation creates a conversation owned by userID
func NewConversation(userID uuid.UUID, f ConversationFields) (*Conversation, error) {
	c := &Conversation{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Title:              f.Title,
		Messages:           f.Messages,
		DashboardID:        f.DashboardID,
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyPatch validates the merged result and only then commits it
func (c *Conversation) ApplyPatch(p ConversationPatch) error {
	next := *c
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Messages != nil {
		next.Messages = *p.Messages
	}
	if p.DashboardID != nil {
		id := *p.DashboardID
		next.DashboardID = &id
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*c = next
	c.MarkUpdated()
	return nil
}

// AppendMessages adds entries to the transcript.
// The stored messages must be a JSON array for this to succeed.
func (c *Conversation) AppendMessages(msgs ...ChatMessage) error {
	var transcript []json.RawMessage
	if err := json.Unmarshal([]byte(c.Messages), &transcript); err != nil {
		return shared.NewDomainError("INVALID_MESSAGES", "Messages must be a JSON array to append to")
	}
	for _, m := range msgs {
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		transcript = append(transcript, raw)
	}
	encoded, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	c.Messages = string(encoded)
	c.MarkUpdated()
	return nil
}

func (c *Conversation) normalize() error {
	var err error
	if c.Title, err = shared.RequireText("Title", c.Title, 200); err != nil {
		return err
	}
	if err = shared.RequireJSON("Messages", c.Messages); err != nil {
		return err
	}
	if c.DashboardID != nil && *c.DashboardID == uuid.Nil {
		c.DashboardID = nil
	}
	return nil
}
