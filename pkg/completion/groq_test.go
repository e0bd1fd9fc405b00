package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroqClient(t *testing.T, handler http.HandlerFunc) *groqClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = srv.URL + "/openai/v1"

	return &groqClient{
		client: openai.NewClientWithConfig(config),
		model:  defaultGroqModel,
	}
}

func TestGroqComplete(t *testing.T) {
	var gotReq openai.ChatCompletionRequest

	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "Codemagen builds booking engines.",
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	reply, err := client.Complete(context.Background(), "what does codemagen do?")
	require.NoError(t, err)
	assert.Equal(t, "Codemagen builds booking engines.", reply)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, systemContext, gotReq.Messages[0].Content)
	assert.Equal(t, "what does codemagen do?", gotReq.Messages[1].Content)
	assert.Equal(t, maxReplyTokens, gotReq.MaxTokens)
	assert.InDelta(t, replyTemperature, gotReq.Temperature, 0.001)
}

func TestGroqCompleteServerError(t *testing.T) {
	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, "500", FailureDetail(err))
}

func TestFailureDetailPlainError(t *testing.T) {
	assert.Equal(t, "connection refused", FailureDetail(errors.New("connection refused")))
}
