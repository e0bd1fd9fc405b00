package bot

import (
	"time"

	"github.com/jeyachandranj/Flight-Bot/pkg/nlp"
)

// Update mirrors the subset of the Telegram update payload the bot reads.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type ClassifyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type ClassifyResponse struct {
	Input          string             `json:"input"`
	Classification nlp.Classification `json:"classification"`
	Entities       nlp.FlightQuery    `json:"entities"`
}

type MessageHistory struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
