package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jonaspay/jonaspay-bot/internal/core/ports/services"
	"github.com/jonaspay/jonaspay-bot/internal/middleware"
	"github.com/jonaspay/jonaspay-bot/pkg/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// Status and health check routes
	r.GET("/", getHome(cfg))
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	rate, err := limiter.NewRateFromFormatted(cfg.WebhookRateLimit)
	if err != nil {
		return fmt.Errorf("invalid webhook rate limit %q: %w", cfg.WebhookRateLimit, err)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	webhook := newWebhookHandler(services.Events)
	r.POST("/webhook",
		middleware.RateLimit(limiterInstance),
		middleware.VerifySignature(cfg.ChannelSecret),
		webhook.handleWebhook,
	)

	return nil
}
