package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"askmind_backend/internal/handlers"
)

// AppHandlers groups everything the router mounts.
type AppHandlers struct {
	ChatHandler         *handlers.ChatHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	HealthHandler       *handlers.HealthHandler
}

// RegisterRoutes mounts all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ChatHandler.RegisterRoutes(api)
		appHandlers.SubscriptionHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/health", appHandlers.HealthHandler.Health)
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
