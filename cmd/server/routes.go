package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minyanfinder/backend/internal/db"
	"github.com/minyanfinder/backend/internal/http/api"
	broadcastapi "github.com/minyanfinder/backend/internal/http/api/broadcasts/endpoints"
	systemapi "github.com/minyanfinder/backend/internal/http/api/system/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, store db.Store) {
	// CORS is open for all origins, as the API carries no credentials
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{Prefix: "/"},
		systemapi.SystemModule(),
		broadcastapi.BroadcastModule(store),
	)
}
