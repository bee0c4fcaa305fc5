package http

import (
	"github.com/gin-gonic/gin"

	"fastbound-gateway/internal/transfer"
	pkgLog "fastbound-gateway/pkg/log"
)

// Handler is the HTTP delivery interface for the transfer domain.
type Handler interface {
	Submit(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc transfer.UseCase
}

// New creates a new transfer HTTP handler.
func New(l pkgLog.Logger, uc transfer.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
