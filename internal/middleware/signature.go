package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// signatureHeader carries the channel-secret HMAC of the request body.
const signatureHeader = "X-Line-Signature"

// VerifySignature creates a Gin middleware that authenticates webhook
// deliveries: the header must hold the base64 HMAC-SHA256 of the raw
// body under the channel secret. The body is restored for downstream
// binding.
func VerifySignature(channelSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.Warn("Failed to read webhook body", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		signature := c.GetHeader(signatureHeader)
		if signature == "" || !ValidSignature(channelSecret, body, signature) {
			logger.Warn("Rejected webhook with bad signature")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		c.Next()
	}
}

// ValidSignature reports whether signature is the base64 HMAC-SHA256
// of body under the channel secret.
func ValidSignature(channelSecret string, body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	expected := mac.Sum(nil)

	return subtle.ConstantTimeCompare(decoded, expected) == 1
}
