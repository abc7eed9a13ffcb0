package services

import (
	"sync"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
)

// MemoryConversationStore tracks pending per-user operations in a
// process-local map. State is transient and cancellable, so losing it
// on restart is acceptable.
type MemoryConversationStore struct {
	mu     sync.RWMutex
	states map[string]*domain.ConversationState
}

var _ portssvc.ConversationStateStore = (*MemoryConversationStore)(nil)

// NewMemoryConversationStore creates an empty conversation state store.
func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		states: make(map[string]*domain.ConversationState),
	}
}

// Get returns the pending state for a user, if any.
func (s *MemoryConversationStore) Get(userID string) (*domain.ConversationState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[userID]
	return state, ok
}

// Set records a pending state for a user, replacing any existing one.
func (s *MemoryConversationStore) Set(userID string, state *domain.ConversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[userID] = state
}

// Clear removes the pending state for a user.
func (s *MemoryConversationStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, userID)
}
