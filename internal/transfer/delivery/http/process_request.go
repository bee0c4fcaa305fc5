package http

import (
	"github.com/gin-gonic/gin"

	"fastbound-gateway/internal/transfer"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// processSubmitReq binds the submission document. Semantic validation
// (serials, parties, date) lives in the use case so the CLI path shares it.
func (h *handler) processSubmitReq(c *gin.Context) (transfer.SubmitInput, error) {
	var input transfer.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		return input, err
	}
	return input, nil
}

// processListReq binds and normalizes the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	if req.Limit <= 0 {
		req.Limit = defaultListLimit
	}
	if req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	return req, req.validate()
}
