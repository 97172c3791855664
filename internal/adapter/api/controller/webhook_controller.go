package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmatech/atende-bot/internal/adapter/api/dto"
	"github.com/farmatech/atende-bot/internal/bot"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// WebhookController recebe as mensagens encaminhadas pelo gateway de WhatsApp
type WebhookController struct {
	dispatcher *bot.Dispatcher
	logger     logger.Logger
}

// NewWebhookController cria uma nova instância de WebhookController
func NewWebhookController(dispatcher *bot.Dispatcher, logger logger.Logger) *WebhookController {
	return &WebhookController{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ReceiveMessage processa uma mensagem recebida de um contato
// @Summary Recebe uma mensagem de WhatsApp
// @Description Processa uma mensagem encaminhada pelo gateway e avança a conversa do contato
// @Tags webhook
// @Accept json
// @Produce json
// @Param message body dto.IncomingMessageRequest true "Mensagem recebida"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /webhook/messages [post]
func (c *WebhookController) ReceiveMessage(ctx *gin.Context) {
	var request dto.IncomingMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Mensagens enviadas pelo próprio número ou por grupos não entram no fluxo
	if request.FromMe || request.IsGroup {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Mensagem ignorada", nil))
		return
	}

	if err := c.dispatcher.HandleMessage(ctx.Request.Context(), request.From, request.Body); err != nil {
		c.logger.Error("erro ao processar mensagem recebida", "contato", request.From, "erro", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar mensagem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Mensagem processada", nil))
}
