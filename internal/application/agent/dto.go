package agent

import (
	"encoding/json"
	"time"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/google/uuid"
)

// QueryRequest asks the agent a free-text question.
// When ConversationID is set, both sides of the exchange are appended to that conversation.
type QueryRequest struct {
	Query          string     `json:"query" binding:"required,max=1000"`
	ConversationID *uuid.UUID `json:"conversation_id"`
}

// QueryResponse is the agent's answer
type QueryResponse struct {
	Message   string                   `json:"message"`
	Dashboard agent.GeneratedDashboard `json:"dashboard"`
	Domains   []agent.Domain           `json:"domains"`
}

// SaveDashboardRequest asks the agent to generate and keep a dashboard for a query
type SaveDashboardRequest struct {
	Query string `json:"query" binding:"required,max=1000"`
}

// SaveDashboardResponse identifies the saved dashboard. Created is false when an
// existing dashboard for the same query was reused.
type SaveDashboardResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Created bool      `json:"created"`
}

// SuggestionsResponse lists starter queries
type SuggestionsResponse struct {
	Queries []string `json:"queries"`
}

// ===================== Conversation DTOs =====================

// CreateConversationRequest represents a request to create a conversation
type CreateConversationRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Messages    json.RawMessage `json:"messages" binding:"required"`
	DashboardID *uuid.UUID      `json:"dashboard_id"`
}

// UpdateConversationRequest represents a partial conversation update
type UpdateConversationRequest struct {
	Title       *string         `json:"title" binding:"omitempty,min=1,max=200"`
	Messages    json.RawMessage `json:"messages"`
	DashboardID *uuid.UUID      `json:"dashboard_id"`
}

// ConversationListFilter represents pagination options for the conversation list
type ConversationListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ConversationResponse represents a conversation in API responses
type ConversationResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Title       string          `json:"title"`
	Messages    json.RawMessage `json:"messages"`
	DashboardID *uuid.UUID      `json:"dashboard_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ToConversationResponse converts a domain Conversation to its response
func ToConversationResponse(c *agent.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Messages:    json.RawMessage(c.Messages),
		DashboardID: c.DashboardID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// ToConversationResponses converts a slice of conversations
func ToConversationResponses(conversations []agent.Conversation) []ConversationResponse {
	responses := make([]ConversationResponse, len(conversations))
	for i := range conversations {
		responses[i] = ToConversationResponse(&conversations[i])
	}
	return responses
}

func (r UpdateConversationRequest) patch() agent.ConversationPatch {
	p := agent.ConversationPatch{
		Title:       r.Title,
		DashboardID: r.DashboardID,
	}
	if len(r.Messages) > 0 && string(r.Messages) != "null" {
		messages := string(r.Messages)
		p.Messages = &messages
	}
	return p
}
