package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"askmind_backend/internal/config"
	"askmind_backend/internal/database"
	"askmind_backend/internal/handlers"
	"askmind_backend/internal/logger"
	"askmind_backend/internal/middleware"
	"askmind_backend/internal/repositories"
	"askmind_backend/internal/routes"
	"askmind_backend/internal/services"
	"askmind_backend/internal/validator"
	"askmind_backend/internal/workers"
)

// Run boots the whole service: config, database, background worker,
// and the HTTP server.
func Run() {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}
	logger.Info("database connected")

	if cfg.Seed.Demo {
		if err := database.SeedDemoData(db); err != nil {
			logger.Fatal("failed to seed demo data", "error", err)
		}
	}

	container := BuildServices(cfg, db)

	worker := workers.NewSubscriptionWorker(
		container.SubscriptionService,
		cfg.Renewal.RenewalSchedule,
		cfg.Renewal.ExpirySchedule,
	)
	if err := worker.Start(); err != nil {
		logger.Fatal("failed to start subscription worker", "error", err)
	}
	defer worker.Stop()

	ginRouter := SetupRouter(cfg, db, container)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// ServiceContainer holds the constructed services.
type ServiceContainer struct {
	ChatService         services.ChatService
	SubscriptionService services.SubscriptionService
}

// BuildServices wires repositories and services over the database.
func BuildServices(cfg *config.Config, db *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	chatMessageRepo := repositories.NewChatMessageRepository(db)

	generator := services.NewSimulatedGenerator(cfg.AnswerDelay(), nil)
	decider := services.RandomPaymentDecider(cfg.Renewal.FailureRate, nil)

	chatService := services.NewChatService(
		chatMessageRepo,
		userRepo,
		subscriptionRepo,
		generator,
		cfg.GeneratorTimeout(),
		nil,
	)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, decider, nil)

	return &ServiceContainer{
		ChatService:         chatService,
		SubscriptionService: subscriptionService,
	}
}

// SetupRouter builds the gin engine with every route mounted.
func SetupRouter(cfg *config.Config, db *gorm.DB, container *ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	base := handlers.NewBaseHandler(validator.New())

	appHandlers := &routes.AppHandlers{
		ChatHandler:         handlers.NewChatHandler(base, container.ChatService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(base, container.SubscriptionService),
		HealthHandler:       handlers.NewHealthHandler(db),
	}

	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestID(), middleware.RequestLogging(), gin.Recovery())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}
