package http

import (
	"github.com/gin-gonic/gin"

	"storefront-assistant/pkg/response"
)

// Message godoc
// @Summary     Smart message routing
// @Description Accepts one free-text customer message and returns a single reply, with structured product data when relevant.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Customer message"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Route never fails: branch failures are masked into a failure reply.
	output := h.uc.Route(ctx, req.toInput())
	response.OK(c, newReplyResp(output))
}

// Track godoc
// @Summary     Direct order lookup
// @Description Looks up orders by phone number fragment, bypassing intent classification.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body trackReq true "Phone number or fragment"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/track [POST]
func (h *handler) Track(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.TrackOrder(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.TrackOrder: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newReplyResp(output))
}
