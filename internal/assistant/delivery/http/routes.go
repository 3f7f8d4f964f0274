package http

import (
	"github.com/gin-gonic/gin"

	"storefront-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/message", mw.RequestID(), mw.RateLimit(), h.Message)
	rg.POST("/track", mw.RequestID(), mw.RateLimit(), h.Track)
}
