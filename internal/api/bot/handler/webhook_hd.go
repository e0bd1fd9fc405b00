package botHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jeyachandranj/Flight-Bot/internal/api/bot"
	contextPkg "github.com/jeyachandranj/Flight-Bot/pkg/context"
	"github.com/jeyachandranj/Flight-Bot/pkg/handlerUtil"
	"github.com/jeyachandranj/Flight-Bot/pkg/log"
	"golang.org/x/net/context"
)

// HandleWebhook receives Telegram update callbacks. It always answers
// 200 with {"status":"ok"}: a non-200 status makes Telegram redeliver
// the same update, and failed updates are already logged and absorbed
// inside the service pipeline.
func (h *BotHandler) HandleWebhook(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	var update bot.Update
	if err := ctx.BodyParser(&update); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to parse webhook payload")
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	}

	if err := h.botService.ProcessUpdate(c, update); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"update_id":  update.UpdateID,
			"error":      err.Error(),
		}).Error("Failed to process update")
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (h *BotHandler) HandleSetWebhook(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.botService.RegisterWebhook(c); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_webhook")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"status": "webhook registered"})
	}
}
