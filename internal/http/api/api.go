package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError carries an HTTP status code and a caller-facing message.
type APIError struct {
	Code    int
	Message string
}

// HandlerFunc is an endpoint handler. A nil result with a nil error renders
// 204 No Content.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin, rendering 200 on success.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return resolve(http.StatusOK, h)
}

// ResolveEndpointCreated is ResolveEndpoint with 201 on success; used for
// resource-creating routes.
func ResolveEndpointCreated(h HandlerFunc) gin.HandlerFunc {
	return resolve(http.StatusCreated, h)
}

func resolve(success int, h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		if result == nil {
			ctx.Status(http.StatusNoContent)
			return
		}
		ctx.JSON(success, result)
	}
}
