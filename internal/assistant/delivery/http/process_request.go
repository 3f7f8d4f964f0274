package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-assistant/internal/assistant"
)

type messageReq struct {
	Message string `json:"message" binding:"required"`
}

func (r messageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return assistant.ErrEmptyMessage
	}
	return nil
}

func (r messageReq) toInput() assistant.RouteInput {
	return assistant.RouteInput{Message: r.Message}
}

type trackReq struct {
	Mobile string `json:"mobile" binding:"required"`
}

func (r trackReq) validate() error {
	if strings.TrimSpace(r.Mobile) == "" {
		return assistant.ErrEmptyMobile
	}
	return nil
}

func (r trackReq) toInput() assistant.TrackInput {
	return assistant.TrackInput{Mobile: r.Mobile}
}

// processMessageReq binds and validates the message request body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, assistant.ErrEmptyMessage
	}
	return req, req.validate()
}

// processTrackReq binds and validates the track request body.
func (h *handler) processTrackReq(c *gin.Context) (trackReq, error) {
	var req trackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, assistant.ErrEmptyMobile
	}
	return req, req.validate()
}
