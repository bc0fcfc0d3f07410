package models

import (
	"github.com/argos/backend/internal/domain/agent"
	"github.com/google/uuid"
)

// ConversationModel is the persistence model for the agent Conversation entity.
type ConversationModel struct {
	OwnedAggregateModel
	Title       string     `gorm:"type:varchar(200);not null"`
	Messages    string     `gorm:"type:jsonb;not null"`
	DashboardID *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (ConversationModel) TableName() string {
	return "agent_conversations"
}

// ToDomain converts the persistence model to a domain Conversation entity.
func (m *ConversationModel) ToDomain() *agent.Conversation {
	return &agent.Conversation{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Title:              m.Title,
		Messages:           m.Messages,
		DashboardID:        m.DashboardID,
	}
}

// FromDomain populates the persistence model from a domain Conversation entity.
func (m *ConversationModel) FromDomain(c *agent.Conversation) {
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	m.Title = c.Title
	m.Messages = c.Messages
	m.DashboardID = c.DashboardID
}

// ConversationModelFromDomain creates a new persistence model from domain entity.
func ConversationModelFromDomain(c *agent.Conversation) *ConversationModel {
	m := &ConversationModel{}
	m.FromDomain(c)
	return m
}
