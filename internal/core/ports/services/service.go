package services

import (
	"context"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
)

// EventHandlerSvc handles one authenticated inbound webhook event and
// produces at most one reply/push action for it.
type EventHandlerSvc interface {
	HandleEvent(ctx context.Context, event domain.InboundEvent) error
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Events EventHandlerSvc
}
