package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/kdduha/gemini-relay/internal/config"
	"github.com/kdduha/gemini-relay/internal/gemini"
	"github.com/kdduha/gemini-relay/internal/handler"
	"github.com/kdduha/gemini-relay/internal/metrics"
	"github.com/kdduha/gemini-relay/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/kdduha/gemini-relay/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Gemini Relay API
// @version 1.0
// @description Server-side relay to Google Gemini that keeps the API key off the client.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.Default()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("failed to load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Println("GEMINI_API_KEY is not set, relay requests will fail")
	}

	geminiClient := gemini.New(gemini.Options{
		BaseURL:    cfg.Gemini.BaseURL,
		APIVersion: cfg.Gemini.APIVersion,
	})
	proxyService := service.NewGeminiProxyService(logger, geminiClient, cfg.Gemini)
	p := handler.NewGeminiProxyHandler(logger, proxyService)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	}...)

	r.HandleFunc("/gemini-proxy", p.Proxy)
	r.Get("/health", handler.Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
