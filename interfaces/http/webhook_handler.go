package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clipstream/domain/dto"
	"clipstream/infrastructure/logger"
	"clipstream/usecase"
)

type IWebhookHandler interface {
	HandleMuxWebhook(ctx *gin.Context)
}

type WebhookHandler struct {
	ingestionUsecase usecase.IIngestionUsecase
}

func NewWebhookHandler(ingestionUsecase usecase.IIngestionUsecase) IWebhookHandler {
	return &WebhookHandler{ingestionUsecase: ingestionUsecase}
}

// HandleMuxWebhook acknowledges every recognizable event with 200 so the
// provider does not keep retrying; only storage failures surface as 500.
func (h *WebhookHandler) HandleMuxWebhook(ctx *gin.Context) {
	var event dto.MuxWebhookEvent
	if err := ctx.ShouldBindJSON(&event); err != nil || event.Type == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid webhook payload."})
		return
	}

	if err := h.ingestionUsecase.HandleWebhookEvent(ctx.Request.Context(), event); err != nil {
		logger.GetLogger().WithField("type", event.Type).WithField("error", err).Error("Webhook handling error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Webhook handling error."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
