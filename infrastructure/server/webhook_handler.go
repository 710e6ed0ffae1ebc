package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

const (
	maxWebhookBodyBytes = 1 << 20
	webhookErrorBody    = "Error processing webhook"
)

// WebhookHandler adapts indexer webhook requests to the intake use case.
type WebhookHandler struct {
	intake interfaces.WebhookIntakeUseCase
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(intake interfaces.WebhookIntakeUseCase) *WebhookHandler {
	return &WebhookHandler{intake: intake}
}

// Handle returns a handler bound to eventType. It answers 200 with an empty body
// whether or not a job was produced, and 500 only when intake fails.
func (h *WebhookHandler) Handle(eventType entities.EventType) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
		if err != nil {
			if rejectErr := h.intake.Reject(c.Request.Context(), eventType, err); rejectErr != nil {
				err = rejectErr
			}
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, webhookErrorBody)
			return
		}

		if _, err := h.intake.Execute(c.Request.Context(), eventType, body); err != nil {
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, webhookErrorBody)
			return
		}

		c.Status(http.StatusOK)
	}
}
