package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/config"
	"github.com/KoruApps/courseboard-go/internal/handlers"
	"github.com/KoruApps/courseboard-go/internal/middleware"
	"github.com/KoruApps/courseboard-go/internal/seed"
	"github.com/KoruApps/courseboard-go/internal/store"

	authsvc "github.com/KoruApps/courseboard-go/internal/auth"
)

var Version = "dev"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx := context.Background()

	var semesters store.SemesterStore
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		semesters = pg
		logger.Info("using postgres store")
	} else {
		mem := store.NewMemoryStore()
		for _, sem := range seed.Semesters() {
			if err := mem.Save(ctx, sem); err != nil {
				logger.Error("failed to seed semester", "semester", sem.ID, "error", err)
				os.Exit(1)
			}
		}
		semesters = mem
		logger.Info("using in-memory store with demo data")
	}

	demoUsers, err := seed.Users()
	if err != nil {
		logger.Error("failed to build demo accounts", "error", err)
		os.Exit(1)
	}
	users := handlers.NewStaticUserDirectory(demoUsers)

	jwtService := authsvc.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version": Version,
			"service": "courseboard-go",
		})
	})

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "CourseBoard Go API",
			"version": Version,
		})
	})

	handlers.SetupRoutes(r, jwtService, semesters, users)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Port, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
