package http

import (
	"github.com/gin-gonic/gin"

	"storefront-assistant/internal/assistant"
	pkgLog "storefront-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Message(c *gin.Context)
	Track(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
