package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"fatura-web/internal/config"
	"fatura-web/internal/handler"
	"fatura-web/internal/middleware"
	"fatura-web/internal/repository"
	"fatura-web/internal/service"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redis *redis.Client,
	cfg *config.Config,
) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewImportSessionRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	importService := service.NewImportService(
		repository.NewCustomerRepository(db),
		repository.NewProjectRepository(db),
		repository.NewAccountRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewPurchaseInvoiceRepository(db),
		repository.NewInvoiceRepository(db),
		cfg.ImportChunkSize,
	)

	// Asynq client (only when Redis is up)
	var asynqClient *asynq.Client
	if redis != nil {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.AsynqRedisAddr,
			Password: cfg.AsynqRedisPassword,
			DB:       cfg.AsynqRedisDB,
		})
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	importHandler := handler.NewImportHandler(sessionRepo, importService, asynqClient, redis, cfg)
	templateHandler := handler.NewTemplateHandler()

	// Public routes
	auth := router.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("", middleware.AuthMiddleware(cfg))
	protected.Get("/auth/me", authHandler.Me)

	protected.Get("/templates/:kind", templateHandler.Download)

	imports := protected.Group("/imports")
	imports.Post("/:kind", importHandler.UploadFile)
	imports.Get("/", importHandler.GetSessions)
	imports.Get("/export", importHandler.ExportSessions)
	imports.Get("/:code", importHandler.GetSessionDetail)
	imports.Get("/:code/progress", importHandler.GetProgress)
	imports.Get("/:code/report.csv", importHandler.DownloadReport)
	imports.Post("/:code/cancel", importHandler.CancelSession)
}
