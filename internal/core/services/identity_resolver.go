package services

import (
	"context"

	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
)

// placeholderIdentityResolver fabricates a borrower ID from the typed
// name. Real resolution against platform contacts is a future
// substitution behind the same interface; the Executor never needs to
// know the difference.
type placeholderIdentityResolver struct{}

var _ portssvc.IdentityResolver = placeholderIdentityResolver{}

// NewPlaceholderIdentityResolver returns the name-derived resolver.
func NewPlaceholderIdentityResolver() portssvc.IdentityResolver {
	return placeholderIdentityResolver{}
}

func (placeholderIdentityResolver) ResolveBorrowerID(_ context.Context, borrowerName string) (string, error) {
	return "user_" + borrowerName, nil
}
