package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
	"github.com/jonaspay/jonaspay-bot/internal/dto"
	"github.com/jonaspay/jonaspay-bot/internal/middleware"
)

// webhookHandler handles authenticated webhook deliveries.
type webhookHandler struct {
	events portssvc.EventHandlerSvc
}

// newWebhookHandler creates a new webhookHandler.
func newWebhookHandler(events portssvc.EventHandlerSvc) *webhookHandler {
	return &webhookHandler{events: events}
}

// handleWebhook processes one delivery. Events in the batch are
// handled concurrently and independently: a failing event is logged
// and never fails its siblings or the delivery's 200 response.
func (h *webhookHandler) handleWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var payload dto.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn("Failed to bind webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	var wg sync.WaitGroup
	for _, wireEvent := range payload.Events {
		event := wireEvent.ToDomain()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic while handling event",
						slog.String("type", string(event.Type)),
						slog.Any("panic", r))
				}
			}()
			if err := h.events.HandleEvent(ctx, event); err != nil {
				logger.Error("Event handling failed",
					slog.String("type", string(event.Type)),
					slog.String("user_id", event.UserID),
					slog.String("error", err.Error()))
			}
		}()
	}
	wg.Wait()

	c.Status(http.StatusOK)
}
