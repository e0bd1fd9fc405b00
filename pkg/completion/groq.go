package completion

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel = "llama-3.3-70b-versatile"

	maxReplyTokens   = 1000
	replyTemperature = 0.7
	requestTimeout   = 30 * time.Second
)

type groqClient struct {
	client *openai.Client
	model  string
}

// NewGroq builds the default completion provider. Groq exposes an
// OpenAI-compatible chat completions API, so the go-openai client is
// pointed at its base URL.
func NewGroq() (ICompletion, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, errors.New("groq API key is required")
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultGroqModel
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	config.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &groqClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (g *groqClient) Complete(ctx context.Context, userMessage string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemContext,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage,
			},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from completion API")
	}

	return resp.Choices[0].Message.Content, nil
}
