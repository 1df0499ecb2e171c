package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/minyanfinder/backend/internal/http/api"
)

// SystemModule mounts the API info and health check endpoints.
func SystemModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/", apiRoot)
		c.GET("/health", health)
	})
}

// GET /
func apiRoot(_ *gin.Context) (any, *api.APIError) {
	return gin.H{
		"message": "Welcome to the Minyan Finder API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health": "/health",
			"broadcasts": gin.H{
				"create":      "POST /broadcasts",
				"find_nearby": "GET /broadcasts/nearby",
				"update":      "PUT /broadcasts/{id}",
				"delete":      "DELETE /broadcasts/{id}",
			},
		},
	}, nil
}

// GET /health
func health(_ *gin.Context) (any, *api.APIError) {
	return gin.H{"status": "healthy", "service": "minyan-finder-api"}, nil
}
