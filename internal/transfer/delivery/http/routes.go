package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the transfer domain routes on the given group.
func MapRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/transfers", h.Submit)
	r.GET("/transfers", h.List)
	r.GET("/transfers/:key", h.Detail)
}
