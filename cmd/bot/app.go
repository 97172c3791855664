package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmatech/atende-bot/internal/adapter/api/controller"
	"github.com/farmatech/atende-bot/internal/adapter/repository"
	"github.com/farmatech/atende-bot/internal/bot"
	"github.com/farmatech/atende-bot/internal/domain/report"
	"github.com/farmatech/atende-bot/internal/infrastructure/database"
	reportsvc "github.com/farmatech/atende-bot/internal/service/report"
	"github.com/farmatech/atende-bot/internal/service/statistics"
	"github.com/farmatech/atende-bot/internal/service/sweeper"
	"github.com/farmatech/atende-bot/internal/transport"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// statsSaveInterval define de quanto em quanto tempo as estatísticas são
// gravadas em disco
const statsSaveInterval = 5 * time.Minute

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	logger            logger.Logger
	db                *pgxpool.Pool
	store             *repository.MemoryConversationStore
	statistics        *statistics.Service
	reportService     *reportsvc.Service
	sweeper           *sweeper.Sweeper
	dispatcher        *bot.Dispatcher
	webhookController *controller.WebhookController
	adminController   *controller.AdminController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()
	cfg := bot.ConfigFromEnv()

	// Armazenamento de conversas em memória
	store := repository.NewMemoryConversationStore()

	// Transporte para o gateway de WhatsApp
	gateway := transport.NewHTTPGateway(transport.NewGatewayConfigFromEnv(), log)

	// Estatísticas de uso com persistência em arquivo
	stats := statistics.NewService(cfg.StatsFilePath, statsSaveInterval, log)

	// Repositórios de relatórios: sempre em arquivo, e em banco quando
	// houver configuração de PostgreSQL
	reportRepos := []report.Repository{repository.NewFileReportRepository(cfg.ReportDirPath)}

	var db *pgxpool.Pool
	if database.Configured() {
		pool, err := database.NewPostgresPool()
		if err != nil {
			return nil, err
		}
		db = pool
		reportRepos = append(reportRepos, repository.NewPostgresReportRepository(pool))
		log.Info("persistência de relatórios em PostgreSQL habilitada")
	}

	reportService := reportsvc.NewService(store, stats, log, reportRepos...)

	// Dispatcher com os fluxos de atendimento
	dispatcher := bot.NewDispatcher(store, gateway, stats, reportService, log, cfg)

	// Limpeza periódica de conversas inativas
	sw := sweeper.New(store, stats, reportService, log, cfg.CleanupInterval, cfg.InactiveTimeout)

	// Controllers
	webhookController := controller.NewWebhookController(dispatcher, log)
	adminController := controller.NewAdminController(store, stats, reportService, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	return &App{
		router:            router,
		logger:            log,
		db:                db,
		store:             store,
		statistics:        stats,
		reportService:     reportService,
		sweeper:           sw,
		dispatcher:        dispatcher,
		webhookController: webhookController,
		adminController:   adminController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	// Health check
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas do webhook de mensagens
	webhookRoutes := a.router.Group("/webhook")
	{
		webhookRoutes.POST("/messages", a.webhookController.ReceiveMessage)
	}

	// Rotas administrativas
	adminRoutes := a.router.Group("/admin")
	{
		adminRoutes.GET("/stats", a.adminController.GetStats)
		adminRoutes.GET("/conversations", a.adminController.ListConversations)
		adminRoutes.POST("/conversations/:id/release", a.adminController.ReleaseConversation)
		adminRoutes.GET("/report", a.adminController.GenerateReport)
	}
}

// StartBackground inicia as rotinas de fundo do bot
func (a *App) StartBackground(ctx context.Context) {
	a.statistics.Start(ctx)
	a.sweeper.Start(ctx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close gera o relatório final, grava as estatísticas e libera os recursos
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.reportService.GenerateAndPersist(ctx)
	a.statistics.Stop()

	if a.db != nil {
		a.db.Close()
	}
}
