package messaging_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonaspay/jonaspay-bot/internal/adapters/messaging"
	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplySendsTokenAndTypedMessages(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := messaging.NewLineClient(server.URL, "token-abc")
	err := client.Reply(context.Background(), "reply-token", domain.TextMessage{Text: "哈囉！"})
	require.NoError(t, err)

	assert.Equal(t, "/v2/bot/message/reply", gotPath)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "reply-token", gotBody["replyToken"])

	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 1)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "text", first["type"])
	assert.Equal(t, "哈囉！", first["text"])
}

func TestReplySerializesFlexBubble(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	flex := domain.FlexMessage{
		AltText: "未還款清單",
		Contents: &domain.FlexBubble{
			Body: &domain.FlexBox{
				Layout: "vertical",
				Contents: []domain.FlexComponent{
					domain.FlexText{Text: "💰 未還款清單", Weight: "bold"},
					domain.FlexSeparator{Margin: "md"},
					domain.FlexButton{Style: "primary", Action: domain.PostbackAction{Label: "發送提醒", Data: "action=send_reminder&debt_id=1"}},
				},
			},
		},
	}

	client := messaging.NewLineClient(server.URL, "token-abc")
	require.NoError(t, client.Reply(context.Background(), "reply-token", flex))

	msg := gotBody["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "flex", msg["type"])
	assert.Equal(t, "未還款清單", msg["altText"])

	bubble := msg["contents"].(map[string]any)
	assert.Equal(t, "bubble", bubble["type"])

	body := bubble["body"].(map[string]any)
	assert.Equal(t, "box", body["type"])

	contents := body["contents"].([]any)
	require.Len(t, contents, 3)
	assert.Equal(t, "text", contents[0].(map[string]any)["type"])
	assert.Equal(t, "separator", contents[1].(map[string]any)["type"])

	button := contents[2].(map[string]any)
	assert.Equal(t, "button", button["type"])
	action := button["action"].(map[string]any)
	assert.Equal(t, "postback", action["type"])
	assert.Equal(t, "action=send_reminder&debt_id=1", action["data"])
}

func TestPushAddressesUser(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := messaging.NewLineClient(server.URL, "token-abc")
	require.NoError(t, client.Push(context.Background(), "U1", domain.TextMessage{Text: "提醒"}))

	assert.Equal(t, "/v2/bot/message/push", gotPath)
	assert.Equal(t, "U1", gotBody["to"])
}

func TestReplyAPIErrorIncludesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid reply token"}`))
	}))
	defer server.Close()

	client := messaging.NewLineClient(server.URL, "token-abc")
	err := client.Reply(context.Background(), "stale-token", domain.TextMessage{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "Invalid reply token")
}

func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/profile/U1", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId":"U1","displayName":"Jonas"}`))
	}))
	defer server.Close()

	client := messaging.NewLineClient(server.URL, "token-abc")
	profile, err := client.GetProfile(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "U1", profile.UserID)
	assert.Equal(t, "Jonas", profile.DisplayName)
}

func TestGetProfileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer server.Close()

	client := messaging.NewLineClient(server.URL, "token-abc")
	profile, err := client.GetProfile(context.Background(), "U404")
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "404")
}
