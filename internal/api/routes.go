package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/brandcards/internal/fetch"
)

func RegisterRoutes(r *gin.Engine, resolver *fetch.Resolver) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/card", cardHandler(resolver))
		api.GET("/qr", qrHandler)
	}
}
