package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/dcode-github/property_dashboard/config"
	"github.com/dcode-github/property_dashboard/routes"
	"github.com/dcode-github/property_dashboard/services"
	"github.com/dcode-github/property_dashboard/utils"
	"github.com/dcode-github/property_dashboard/views"
)

func setupRouter(svc services.DataService, autoPilot *views.AutoPilotStore) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, svc, autoPilot)
	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("property-dashboard", "info")
		utils.Logger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger("property-dashboard", cfg.LogLevel)

	client, err := config.ConnectDB(cfg.MongoURI)
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	config.InitCollections(client, cfg.DBName)
	if err := config.EnsureIndexes(context.Background()); err != nil {
		utils.Logger.Warnf("Index setup failed: %v", err)
	}

	var svc services.DataService = services.NewMongoStore(config.PropertyCollection, config.ConversationCollection)

	var redisClient *redis.Client
	if cfg.CacheEnabled() {
		redisClient, err = config.InitRedis(cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			utils.Logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		svc = services.NewCachedService(svc, redisClient, cfg.CacheTTL)
	} else {
		utils.Logger.Warn("REDIS_ADD not set, running without list cache")
	}

	if cfg.SeedData {
		if err := services.Seed(context.Background(), svc); err != nil {
			utils.Logger.Fatalf("Seeding failed: %v", err)
		}
	}

	router := setupRouter(svc, views.NewAutoPilotStore())

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: false,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		utils.Logger.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	utils.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Errorf("Error during server shutdown: %v", err)
		return
	}
	utils.Logger.Info("Server gracefully stopped")
}
