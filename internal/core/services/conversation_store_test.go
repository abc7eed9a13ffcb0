package services_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	"github.com/jonaspay/jonaspay-bot/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryConversationStore(t *testing.T) {
	store := services.NewMemoryConversationStore()

	_, ok := store.Get("U1")
	assert.False(t, ok)

	store.Set("U1", &domain.ConversationState{Operation: "edit_debt", Data: map[string]string{"debt_id": "3"}})

	state, ok := store.Get("U1")
	require.True(t, ok)
	assert.Equal(t, "edit_debt", state.Operation)
	assert.Equal(t, "3", state.Data["debt_id"])

	// Replacing overwrites, not merges.
	store.Set("U1", &domain.ConversationState{Operation: "delete_debt"})
	state, ok = store.Get("U1")
	require.True(t, ok)
	assert.Equal(t, "delete_debt", state.Operation)
	assert.Empty(t, state.Data)

	store.Clear("U1")
	_, ok = store.Get("U1")
	assert.False(t, ok)

	// Clearing an absent user is a no-op.
	store.Clear("U2")
}

func TestMemoryConversationStoreConcurrentAccess(t *testing.T) {
	store := services.NewMemoryConversationStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("U%d", i%10)
			store.Set(userID, &domain.ConversationState{Operation: "edit_debt"})
			store.Get(userID)
			store.Clear(userID)
		}(i)
	}
	wg.Wait()
}
