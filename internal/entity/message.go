package entity

import "time"

// ChatMessage is one processed inbound Telegram message together with the
// reply that was produced for it.
type ChatMessage struct {
	ID        string    `db:"id"`
	ChatID    int64     `db:"chat_id"`
	Text      string    `db:"text"`
	Intent    string    `db:"intent"`
	Reply     string    `db:"reply"`
	CreatedAt time.Time `db:"created_at"`
}
