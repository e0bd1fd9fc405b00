package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessenger(t *testing.T, handler http.HandlerFunc) *messenger {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &messenger{
		baseURL:    srv.URL,
		token:      "test-token",
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotReq sendMessageRequest

	m := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(apiResponse{OK: true})
	})

	err := m.SendMessage(context.Background(), 42, "*hello*")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, int64(42), gotReq.ChatID)
	assert.Equal(t, "*hello*", gotReq.Text)
	assert.Equal(t, "Markdown", gotReq.ParseMode)
	assert.False(t, gotReq.DisableWebPagePreview)
}

func TestSendMessageAPIError(t *testing.T) {
	m := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(apiResponse{OK: false, Description: "chat not found"})
	})

	err := m.SendMessage(context.Background(), 42, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSetWebhook(t *testing.T) {
	var gotPath string
	var gotReq setWebhookRequest

	m := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(apiResponse{OK: true})
	})

	err := m.SetWebhook(context.Background(), "https://bot.example.com/webhook")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/setWebhook", gotPath)
	assert.Equal(t, "https://bot.example.com/webhook", gotReq.URL)
}
