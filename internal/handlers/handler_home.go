package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonaspay/jonaspay-bot/pkg/config"
)

// getHome reports service status plus a presence check for the
// channel credentials, handy when debugging a fresh deployment.
func getHome(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "Jonas Pay Bot is running!",
			"timestamp": time.Now().Format(time.RFC3339),
			"env_check": gin.H{
				"has_channel_secret": cfg.ChannelSecret != "",
				"has_access_token":   cfg.ChannelAccessToken != "",
			},
		})
	}
}
