package services

import (
	"log/slog"

	portsrepo "github.com/jonaspay/jonaspay-bot/internal/core/ports/repositories"
	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, messenger portssvc.MessagingClient, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Events = NewExecutor(
		repos.LedgerRepo,
		messenger,
		NewMemoryConversationStore(),
		NewPlaceholderIdentityResolver(),
		logger,
	)

	return container
}
