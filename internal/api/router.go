// Package api assembles the proxy's gin router.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-clickup/internal/api/handlers"
	"github.com/roksva123/go-clickup/internal/api/middleware"
)

type RouterConfig struct {
	JWTSecret   string
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig, authHandler *handlers.AuthHandler, clickupHandler *handlers.ClickUpHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api := r.Group("/api/v1")

	// AUTH ROUTES
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// CLICKUP ROUTES
	clickup := api.Group("/clickup", middleware.Auth(cfg.JWTSecret))
	{
		clickup.GET("/teams", clickupHandler.GetTeams)
		clickup.GET("/teams/:team_id/spaces", clickupHandler.GetSpaces)
		clickup.GET("/teams/:team_id/goals", clickupHandler.GetGoals)
		clickup.GET("/teams/:team_id/time_entries", clickupHandler.GetTimeEntries)
		clickup.GET("/teams/:team_id/workload", clickupHandler.GetWorkload)
		clickup.GET("/hierarchy", clickupHandler.GetHierarchy)

		clickup.GET("/spaces/:space_id/folders", clickupHandler.GetFolders)
		clickup.GET("/folders/:folder_id/lists", clickupHandler.GetLists)
		clickup.GET("/lists/:list_id/tasks", clickupHandler.GetTasks)
		clickup.GET("/tasks/:task_id", clickupHandler.GetTask)
		clickup.GET("/tasks/:task_id/comments", clickupHandler.GetTaskComments)
	}

	return r
}

// corsConfig allows credentials only for explicit origins.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
