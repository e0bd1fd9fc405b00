package botHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	botService "github.com/jeyachandranj/Flight-Bot/internal/api/bot/service"
	"github.com/jeyachandranj/Flight-Bot/internal/middleware"
	"github.com/sirupsen/logrus"
)

type BotHandler struct {
	log        *logrus.Logger
	botService botService.IBotService
	validator  *validator.Validate
	middleware middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs botService.IBotService,
	validate *validator.Validate,
	middleware middleware.Middleware) *BotHandler {
	return &BotHandler{
		log:        log,
		botService: bs,
		validator:  validate,
		middleware: middleware,
	}
}

func (h *BotHandler) Start(srv fiber.Router) {
	srv.Post("/webhook", h.HandleWebhook)
	srv.Get("/set_webhook", h.HandleSetWebhook)

	bot := srv.Group("/bot")
	bot.Post("/nlp/test", h.middleware.NewRateLimiter, h.HandleClassifyTest)
	bot.Get("/history/:chat_id", h.middleware.NewRateLimiter, h.HandleMessageHistory)
	bot.Get("/message/:id", h.middleware.NewRateLimiter, h.HandleGetMessage)
}
