package http

import (
	"github.com/gin-gonic/gin"

	"fastbound-gateway/pkg/response"
)

// Submit godoc
// @Summary     Submit a transfer
// @Description Pushes a firearms-transfer record to FastBound. Resubmitting the same logical shipment replays the journaled outcome instead of pushing again.
// @Tags        Transfers
// @Accept      json
// @Produce     json
// @Param       body body transfer.SubmitInput true "Transfer submission"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "FastBound unreachable"
// @Router      /api/v1/transfers [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapSubmitError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Detail godoc
// @Summary     Get a submission
// @Description Returns the journaled outcome for one idempotency key.
// @Tags        Transfers
// @Accept      json
// @Produce     json
// @Param       key path string true "Idempotency key"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transfers/{key} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	key := c.Param("key")

	output, err := h.uc.Detail(ctx, key)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List submissions
// @Description Returns journaled submissions, newest first, with optional status filter.
// @Tags        Transfers
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (accepted/rejected/failed)"
// @Param       limit  query int    false "Page size (default: 20, max: 100)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/transfers [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
