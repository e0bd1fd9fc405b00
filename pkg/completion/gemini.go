package completion

import (
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGemini is the alternate completion provider, kept behind
// COMPLETION_PROVIDER=gemini.
func NewGemini() (ICompletion, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiClient) Complete(ctx context.Context, userMessage string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetMaxOutputTokens(maxReplyTokens)
	model.SetTemperature(replyTemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemContext)},
	}

	res, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}
