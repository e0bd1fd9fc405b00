package bot

import (
	"net/http"

	"github.com/jeyachandranj/Flight-Bot/pkg/response"
)

var (
	ErrEmptyMessageText     = response.NewError(http.StatusBadRequest, "message text is required")
	ErrMessageNotFound      = response.NewError(http.StatusNotFound, "message not found")
	ErrDeliveryFailed       = response.NewError(http.StatusBadGateway, "failed to deliver telegram message")
	ErrWebhookNotConfigured = response.NewError(http.StatusInternalServerError, "webhook url is not configured")
)
