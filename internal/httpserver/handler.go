package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "storefront-assistant/internal/assistant/delivery/http"
	"storefront-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger stays off the public surface in production.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), srv.assistantHandler, srv.mw)
	srv.l.Infof(ctx, "Assistant routes registered under /api/v1/assistant")
}

// Run blocks serving HTTP until the listener fails.
func (srv HTTPServer) Run() error {
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
