package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"guild-games-go/internal/config"
	"guild-games-go/internal/database"
	"guild-games-go/internal/game/catalog"
	"guild-games-go/internal/handlers"
	"guild-games-go/internal/middleware"
	"guild-games-go/internal/models"
	"guild-games-go/internal/session"
	"guild-games-go/internal/tracing"
	"guild-games-go/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "guild-games-go"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, tracing.Config{ServiceName: serviceName, Environment: cfg.AppEnv})
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown error: %v", err)
		}
	}()

	db, err := database.OpenAndMigrate(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db open/migrate: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}()
	guilds := models.NewGuildStore(db)

	hubRef := websocket.NewHubRef(websocket.NewHub())
	go superviseHub(hubRef)

	factories := catalog.NewFactories()
	registry := session.NewRegistry(guilds, factories,
		session.WithNotifier(handlers.NewHubNotifier(hubRef.Get)),
		session.WithStoreTimeout(cfg.StoreTimeout),
	)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(otelgin.Middleware(serviceName))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(cfg))
	handlers.RegisterSessionRoutes(api, registry, factories)
	handlers.RegisterGuildRoutes(api, guilds, registry)

	r.GET("/ws", handlers.WebSocketHandler(hubRef.Get, cfg))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %v", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	if h, ok := hubRef.Get(); ok {
		h.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}

// superviseHub runs the current hub and swaps in a fresh one if it panics.
// A normal return (Stop) ends supervision.
func superviseHub(ref *websocket.HubRef) {
	for {
		hub, ok := ref.Get()
		if !ok {
			ref.Set(websocket.NewHub())
			continue
		}
		panicked := false
		func() {
			defer func() {
				if r := recover(); r != nil {
					panicked = true
					log.Printf("hub.Run panic: %v\n%s", r, debug.Stack())
				}
			}()
			hub.Run()
		}()
		if !panicked {
			return
		}
		hub.Stop()
		ref.Set(websocket.NewHub())
		time.Sleep(time.Second)
	}
}
