package services

import "github.com/jonaspay/jonaspay-bot/internal/core/domain"

// ConversationStateStore tracks at most one pending multi-step
// operation per user. Implementations must be safe for concurrent
// get/set/clear on the same or different users.
type ConversationStateStore interface {
	// Get returns the pending state for a user, if any.
	Get(userID string) (*domain.ConversationState, bool)

	// Set records a pending state for a user, replacing any existing one.
	Set(userID string, state *domain.ConversationState)

	// Clear removes the pending state for a user, if any.
	Clear(userID string)
}
