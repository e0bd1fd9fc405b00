package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jeyachandranj/Flight-Bot/database/postgres"
	botHandler "github.com/jeyachandranj/Flight-Bot/internal/api/bot/handler"
	botRepository "github.com/jeyachandranj/Flight-Bot/internal/api/bot/repository"
	botService "github.com/jeyachandranj/Flight-Bot/internal/api/bot/service"
	"github.com/jeyachandranj/Flight-Bot/internal/middleware"
	"github.com/jeyachandranj/Flight-Bot/pkg/completion"
	"github.com/jeyachandranj/Flight-Bot/pkg/nlp"
	redisPkg "github.com/jeyachandranj/Flight-Bot/pkg/redis"
	"github.com/jeyachandranj/Flight-Bot/pkg/telegram"
	"github.com/jeyachandranj/Flight-Bot/pkg/utils"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	db               *sqlx.DB
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	utils            utils.IUtils
	handlers         []handler
	redisServer      redisPkg.IRedis
	messenger        telegram.IMessenger
	completionClient completion.ICompletion
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redisPkg.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithTelegramClient() ServerOption {
	return func(s *Server) error {
		client, err := telegram.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Telegram client: %v", err)
			}
			return fmt.Errorf("failed to create Telegram client: %w", err)
		}
		s.messenger = client
		return nil
	}
}

func WithCompletionClient() ServerOption {
	return func(s *Server) error {
		client, err := completion.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create completion client: %v", err)
			}
			return fmt.Errorf("failed to create completion client: %w", err)
		}
		s.completionClient = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Bot Domain
	botRepo := botRepository.New(s.db, s.log)
	processor := nlp.NewProcessor()
	botServices := botService.NewBotService(s.log, botRepo, s.redisServer, s.messenger, s.completionClient, processor, s.utils)
	botHandlers := botHandler.New(s.log, botServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, botHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	// Webhook routes stay at the root so the URL registered with
	// Telegram is simply WEBHOOK_URL + "/webhook".
	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Bot is running!",
		})
	})

	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status": "healthy",
		})
	})
}
