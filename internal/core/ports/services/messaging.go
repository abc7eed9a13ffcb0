package services

import (
	"context"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
)

// MessagingClient is the outbound chat-platform contract the core
// consumes. Implementations live under internal/adapters.
type MessagingClient interface {
	// Reply sends messages bound to a reply token.
	Reply(ctx context.Context, replyToken string, messages ...domain.Message) error

	// Push sends messages directly to a user.
	Push(ctx context.Context, userID string, messages ...domain.Message) error

	// GetProfile fetches a user's display profile.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}
