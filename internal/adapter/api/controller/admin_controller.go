package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmatech/atende-bot/internal/adapter/api/dto"
	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/internal/service/report"
	"github.com/farmatech/atende-bot/internal/service/statistics"
	"github.com/farmatech/atende-bot/pkg/formatter"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// AdminController expõe as consultas administrativas do bot
type AdminController struct {
	store   conversation.Store
	stats   *statistics.Service
	reports *report.Service
	logger  logger.Logger
}

// NewAdminController cria uma nova instância de AdminController
func NewAdminController(store conversation.Store, stats *statistics.Service, reports *report.Service, logger logger.Logger) *AdminController {
	return &AdminController{
		store:   store,
		stats:   stats,
		reports: reports,
		logger:  logger,
	}
}

// GetStats retorna as estatísticas de uso do bot
// @Summary Consulta as estatísticas de uso
// @Description Retorna os contadores acumulados de atendimentos e o tempo de atividade do bot
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	snapshot := c.stats.Snapshot()

	ctx.JSON(http.StatusOK, dto.StatsResponse{
		TotalChats:      snapshot.TotalChats,
		ActiveChats:     snapshot.ActiveChats,
		WaitingForHuman: snapshot.WaitingForHuman,
		WithHuman:       snapshot.WithHuman,
		CompletedChats:  snapshot.CompletedChats,
		OptionCounts:    snapshot.OptionCounts,
		StartTime:       snapshot.StartTime,
		Uptime:          formatter.FormatDuration(c.stats.Uptime()),
	})
}

// ListConversations lista as conversas ativas
// @Summary Lista as conversas ativas
// @Description Retorna todas as conversas em andamento, incluindo as transferidas para atendentes
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ConversationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/conversations [get]
func (c *AdminController) ListConversations(ctx *gin.Context) {
	list, err := c.store.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar conversas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConversationListResponse(list))
}

// GenerateReport gera um relatório de atendimento sob demanda
// @Summary Gera um relatório de atendimento
// @Description Gera, persiste e retorna um relatório com as estatísticas e as conversas atuais
// @Tags admin
// @Produce json
// @Success 200 {object} report.AttendanceReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/report [get]
func (c *AdminController) GenerateReport(ctx *gin.Context) {
	r, err := c.reports.Generate(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, r)
}

// ReleaseConversation devolve ao menu uma conversa em atendimento humano
// @Summary Encerra um atendimento humano
// @Description Devolve a conversa do contato ao controle do bot após o atendente concluir
// @Tags admin
// @Produce json
// @Param id path string true "ID do contato"
// @Success 200 {object} dto.ConversationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/conversations/{id}/release [post]
func (c *AdminController) ReleaseConversation(ctx *gin.Context) {
	contactID := ctx.Param("id")

	unlock := c.store.LockContact(contactID)
	defer unlock()

	conv, err := c.store.Find(ctx.Request.Context(), contactID)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Conversa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar conversa", err.Error()))
		return
	}

	if !conv.IsWithHuman() {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Conversa não está em atendimento humano", ""))
		return
	}

	conv.Release()
	if err := c.store.Save(ctx.Request.Context(), conv); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar conversa", err.Error()))
		return
	}

	c.stats.MarkHumanChatClosed()
	c.logger.Info("atendimento humano encerrado", "contato", formatter.ExtractPhoneFromWhatsAppID(contactID))

	ctx.JSON(http.StatusOK, dto.ToConversationResponse(conv))
}
