package botService

import (
	"context"
	"os"
	"time"

	"github.com/jeyachandranj/Flight-Bot/internal/api/bot"
	"github.com/jeyachandranj/Flight-Bot/internal/entity"
	contextPkg "github.com/jeyachandranj/Flight-Bot/pkg/context"
	"github.com/sirupsen/logrus"
)

// Processed update IDs are remembered long enough to absorb Telegram's
// redelivery window.
const updateDedupeTTL = time.Hour

const welcomeMessage = `👋 Hello! I'm Codemagen's AI assistant.

I can help you with:
✈️ Flight searches and bookings
🏨 Hotel reservations
📋 Account management
💼 Travel-tech solutions

What would you like to know about our services?`

// ProcessUpdate runs one inbound Telegram update through the
// classify → extract → compose pipeline and delivers the reply. Every
// failure past classification is downgraded to a log entry so the user
// always gets an answer and Telegram never sees an error status.
func (s *botService) ProcessUpdate(ctx context.Context, update bot.Update) error {
	requestID := contextPkg.GetRequestID(ctx)

	if update.Message == nil || update.Message.Text == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"update_id":  update.UpdateID,
		}).Debug("Skipping update without message text")
		return nil
	}

	if s.alreadyProcessed(ctx, update.UpdateID) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"update_id":  update.UpdateID,
		}).Info("Skipping redelivered update")
		return nil
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text

	if text == "/start" {
		if err := s.messenger.SendMessage(ctx, chatID, welcomeMessage); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"chat_id":    chatID,
				"error":      err.Error(),
			}).Error("Failed to send welcome message")
		}
		s.markProcessed(ctx, update.UpdateID)
		return nil
	}

	classification := s.processor.Classify(text)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"chat_id":    chatID,
		"intent":     classification.Intent,
	}).Info("Message classified")

	reply := s.composeReply(ctx, classification, text)

	if err := s.messenger.SendMessage(ctx, chatID, reply); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"chat_id":    chatID,
			"error":      err.Error(),
		}).Error("Failed to deliver reply")
	}

	s.markProcessed(ctx, update.UpdateID)
	s.saveMessage(ctx, chatID, text, string(classification.Intent), reply)

	return nil
}

func (s *botService) RegisterWebhook(ctx context.Context) error {
	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		return bot.ErrWebhookNotConfigured
	}

	return s.messenger.SetWebhook(ctx, webhookURL+"/webhook")
}

func (s *botService) GetMessageHistory(ctx context.Context, chatID int64, page, limit int) ([]bot.MessageHistory, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.botRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, 0, err
	}

	offset := (page - 1) * limit
	messages, total, err := repo.Messages.GetMessagesByChatID(ctx, chatID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	history := make([]bot.MessageHistory, 0, len(messages))
	for _, msg := range messages {
		history = append(history, bot.MessageHistory{
			ID:        msg.ID,
			ChatID:    msg.ChatID,
			Text:      msg.Text,
			Intent:    msg.Intent,
			Reply:     msg.Reply,
			CreatedAt: msg.CreatedAt,
		})
	}

	return history, total, nil
}

func (s *botService) GetMessage(ctx context.Context, id string) (*bot.MessageHistory, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.botRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	msg, err := repo.Messages.GetMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &bot.MessageHistory{
		ID:        msg.ID,
		ChatID:    msg.ChatID,
		Text:      msg.Text,
		Intent:    msg.Intent,
		Reply:     msg.Reply,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (s *botService) TestClassification(ctx context.Context, req bot.ClassifyRequest) (*bot.ClassifyResponse, error) {
	if req.Text == "" {
		return nil, bot.ErrEmptyMessageText
	}

	return &bot.ClassifyResponse{
		Input:          req.Text,
		Classification: s.processor.Classify(req.Text),
		Entities:       s.processor.Extract(req.Text),
	}, nil
}

func (s *botService) alreadyProcessed(ctx context.Context, updateID int64) bool {
	if s.redis == nil {
		return false
	}

	seen, err := s.redis.IsUpdateProcessed(ctx, updateID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"update_id": updateID,
			"error":     err.Error(),
		}).Warn("Update dedupe check failed, processing anyway")
		return false
	}
	return seen
}

func (s *botService) markProcessed(ctx context.Context, updateID int64) {
	if s.redis == nil {
		return
	}

	if err := s.redis.MarkUpdateProcessed(ctx, updateID, updateDedupeTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"update_id": updateID,
			"error":     err.Error(),
		}).Warn("Failed to mark update as processed")
	}
}

func (s *botService) saveMessage(ctx context.Context, chatID int64, text, intent, reply string) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.botRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create repository client, message not saved")
		return
	}

	messageID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate message ID, message not saved")
		return
	}

	msg := entity.ChatMessage{
		ID:        messageID,
		ChatID:    chatID,
		Text:      text,
		Intent:    intent,
		Reply:     reply,
		CreatedAt: time.Now(),
	}

	if err := repo.Messages.CreateMessage(ctx, msg); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to save chat message")
	}
}
