package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/roksva123/go-clickup/clickup"
	"github.com/roksva123/go-clickup/internal/api"
	"github.com/roksva123/go-clickup/internal/api/handlers"
	"github.com/roksva123/go-clickup/internal/config"
	"github.com/roksva123/go-clickup/internal/service"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config:", err)
	}
	if cfg.ClickUpToken == "" {
		log.Fatal("CLICKUP_TOKEN is required")
	}

	// ADMIN PASSWORD
	hash := cfg.AdminPasswordHash
	if hash == "" {
		if cfg.AdminPassword == "" {
			log.Fatal("set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
		}
		hash, err = service.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatal("failed hashing admin password:", err)
		}
		log.Println("admin password hashed at startup; prefer ADMIN_PASSWORD_HASH")
	}

	// CLIENT
	click := clickup.NewClient(cfg.ClickUpToken)
	click.BaseURL = cfg.ClickUpBaseURL
	click.HTTP.Timeout = cfg.ClickUpTimeout
	if cfg.AppEnv != "production" {
		click.Logger = log.New(os.Stderr, "[clickup] ", log.LstdFlags)
	}

	// SERVICES
	authService := service.NewAuthService(cfg.AdminUsername, hash, cfg.JWTSecret)
	workload := service.NewWorkloadService(click, service.Bands{
		Underload: cfg.WorkloadUnderload,
		NormalMin: cfg.WorkloadNormalMin,
		NormalMax: cfg.WorkloadNormalMax,
		Overload:  cfg.WorkloadOverload,
	})

	// HANDLERS
	authHandler := handlers.NewAuthHandler(authService)
	clickupHandler := handlers.NewClickUpHandler(click, workload, cfg.ClickUpTeamID)

	// ROUTER
	r := api.NewRouter(api.RouterConfig{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
	}, authHandler, clickupHandler)

	// START SERVER
	log.Println("Server running on port:", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
