package botRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jeyachandranj/Flight-Bot/internal/api/bot"
	"github.com/jeyachandranj/Flight-Bot/internal/entity"
	contextPkg "github.com/jeyachandranj/Flight-Bot/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ChatMessageDB struct {
	ID        sql.NullString `db:"id"`
	ChatID    sql.NullInt64  `db:"chat_id"`
	Text      sql.NullString `db:"text"`
	Intent    sql.NullString `db:"intent"`
	Reply     sql.NullString `db:"reply"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *messageRepository) CreateMessage(ctx context.Context, msg entity.ChatMessage) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         msg.ID,
		"chat_id":    msg.ChatID,
		"text":       msg.Text,
		"intent":     msg.Intent,
		"reply":      msg.Reply,
		"created_at": msg.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMessage")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating chat message")
		return err
	}

	return nil
}

func (r *messageRepository) GetMessageByID(ctx context.Context, id string) (entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var msgDB ChatMessageDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetMessageByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessageByID named query preparation err")
		return entity.ChatMessage{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&msgDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"message_id": id,
			}).Warn("GetMessageByID no rows found")
			return entity.ChatMessage{}, bot.ErrMessageNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessageByID execution err")
		return entity.ChatMessage{}, err
	}

	return makeChatMessage(msgDB), nil
}

func (r *messageRepository) GetMessagesByChatID(ctx context.Context, chatID int64, limit, offset int) ([]entity.ChatMessage, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var messagesList []ChatMessageDB
	var total int

	countArgsKV := map[string]interface{}{
		"chat_id": chatID,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountMessagesByChatID, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByChatID count query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByChatID count execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"chat_id": chatID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetMessagesByChatID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByChatID named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &messagesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesByChatID execution err")
		return nil, 0, err
	}

	messages := make([]entity.ChatMessage, 0, len(messagesList))
	for _, msgDB := range messagesList {
		messages = append(messages, makeChatMessage(msgDB))
	}

	return messages, total, nil
}

func makeChatMessage(msgDB ChatMessageDB) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        msgDB.ID.String,
		ChatID:    msgDB.ChatID.Int64,
		Text:      msgDB.Text.String,
		Intent:    msgDB.Intent.String,
		Reply:     msgDB.Reply.String,
		CreatedAt: msgDB.CreatedAt,
	}
}
