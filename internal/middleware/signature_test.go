package middleware_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jonaspay/jonaspay-bot/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChannelSecret = "test-channel-secret"

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestValidSignature(t *testing.T) {
	body := []byte(`{"events":[]}`)

	assert.True(t, middleware.ValidSignature(testChannelSecret, body, signBody(testChannelSecret, body)))
	assert.False(t, middleware.ValidSignature(testChannelSecret, body, signBody("other-secret", body)))
	assert.False(t, middleware.ValidSignature(testChannelSecret, []byte("tampered"), signBody(testChannelSecret, body)))
	assert.False(t, middleware.ValidSignature(testChannelSecret, body, "not-base64!!!"))
	assert.False(t, middleware.ValidSignature(testChannelSecret, body, ""))
}

func setupSignatureRouter(t *testing.T) (*gin.Engine, *[]byte) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenBody []byte
	router := gin.New()
	router.POST("/webhook", middleware.VerifySignature(testChannelSecret), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seenBody = body
		c.Status(http.StatusOK)
	})
	return router, &seenBody
}

func TestVerifySignatureAcceptsSignedBody(t *testing.T) {
	router, seenBody := setupSignatureRouter(t)
	body := []byte(`{"destination":"bot","events":[]}`)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("X-Line-Signature", signBody(testChannelSecret, body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	// The body must be readable again downstream.
	assert.Equal(t, body, *seenBody)
}

func TestVerifySignatureRejectsBadSignature(t *testing.T) {
	router, _ := setupSignatureRouter(t)
	body := []byte(`{"events":[]}`)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("X-Line-Signature", signBody("wrong-secret", body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid signature")
}

func TestVerifySignatureRejectsMissingHeader(t *testing.T) {
	router, _ := setupSignatureRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(`{"events":[]}`)))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
