package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// IMessenger delivers outbound replies through the Telegram Bot API.
// Delivery is fire-and-forget: the bot does not retry or acknowledge.
type IMessenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SetWebhook(ctx context.Context, webhookURL string) error
}

type messenger struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New() (IMessenger, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, errors.New("telegram bot token is required")
	}

	return &messenger{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type setWebhookRequest struct {
	URL string `json:"url"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts a markdown-formatted reply with link previews enabled.
func (m *messenger) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: false,
	})
}

func (m *messenger) SetWebhook(ctx context.Context, webhookURL string) error {
	return m.call(ctx, "setWebhook", setWebhookRequest{URL: webhookURL})
}

func (m *messenger) call(ctx context.Context, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/%s", m.baseURL, m.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("telegram %s: decoding response: %w", method, err)
	}

	if !result.OK {
		return fmt.Errorf("telegram %s: %s", method, result.Description)
	}

	return nil
}
