package botService

import (
	"context"

	"github.com/jeyachandranj/Flight-Bot/internal/api/bot"
	botRepository "github.com/jeyachandranj/Flight-Bot/internal/api/bot/repository"
	"github.com/jeyachandranj/Flight-Bot/pkg/completion"
	"github.com/jeyachandranj/Flight-Bot/pkg/nlp"
	redisPkg "github.com/jeyachandranj/Flight-Bot/pkg/redis"
	"github.com/jeyachandranj/Flight-Bot/pkg/telegram"
	"github.com/jeyachandranj/Flight-Bot/pkg/utils"
	"github.com/sirupsen/logrus"
)

type IBotService interface {
	ProcessUpdate(ctx context.Context, update bot.Update) error
	RegisterWebhook(ctx context.Context) error

	GetMessageHistory(ctx context.Context, chatID int64, page, limit int) ([]bot.MessageHistory, int, error)
	GetMessage(ctx context.Context, id string) (*bot.MessageHistory, error)
	TestClassification(ctx context.Context, req bot.ClassifyRequest) (*bot.ClassifyResponse, error)
}

type botService struct {
	log        *logrus.Logger
	botRepo    botRepository.Repository
	redis      redisPkg.IRedis
	messenger  telegram.IMessenger
	completion completion.ICompletion
	processor  nlp.IProcessor
	utils      utils.IUtils
}

func NewBotService(
	log *logrus.Logger,
	botRepo botRepository.Repository,
	redis redisPkg.IRedis,
	messenger telegram.IMessenger,
	completionClient completion.ICompletion,
	processor nlp.IProcessor,
	utils utils.IUtils,
) IBotService {
	return &botService{
		log:        log,
		botRepo:    botRepo,
		redis:      redis,
		messenger:  messenger,
		completion: completionClient,
		processor:  processor,
		utils:      utils,
	}
}
