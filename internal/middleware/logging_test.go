package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jeyachandranj/Flight-Bot/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerConfigPassesRequestThrough(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	log.NewLogger()

	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Use(LoggerConfig())
	app.Post("/echo", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"text":"hello","token":"abc"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestLoggerConfigKeepsIncomingRequestID(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	log.NewLogger()

	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Use(LoggerConfig())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

func TestSanitizeRequestBody(t *testing.T) {
	sanitized := sanitizeRequestBody(`{"text":"hi","token":"secret-token"}`)
	assert.Contains(t, sanitized, `"token":"[SECRET]"`)
	assert.Contains(t, sanitized, `"text":"hi"`)

	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("plain text"))
}
