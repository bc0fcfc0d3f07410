package agent

import "github.com/argos/backend/internal/domain/shared"

// ConversationRepository persists agent conversations
type ConversationRepository interface {
	shared.OwnedRepository[Conversation]
}
