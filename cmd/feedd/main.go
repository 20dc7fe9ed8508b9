package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Osman-ordu/ceptecash-backend/internal/config"
	"github.com/Osman-ordu/ceptecash-backend/internal/service"
	"github.com/Osman-ordu/ceptecash-backend/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/feedd.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting feedd",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"upstream_url", cfg.Upstream.URL,
		"gateway_path", cfg.Gateway.Path,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Build and start the market pipeline
	svc := service.New(cfg, logger)
	svc.Start()
	defer svc.Shutdown()

	// HTTP server: status query, health, and the downstream WS endpoint
	mux := http.NewServeMux()
	mux.Handle(cfg.Gateway.Path, svc.Gateway())
	mux.Handle("/api/market/status", statusHandler(svc, logger))
	mux.Handle("/health", healthHandler(svc))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: mux,
	}

	go func() {
		logger.Info("starting http server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("feedd running",
		"status_url", fmt.Sprintf("http://localhost:%d/api/market/status", cfg.Server.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	svc.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	logger.Info("feedd stopped")
}

// statusHandler reports feed connectivity and store contents. Internal
// failures surface as a generic server error; ingestion is unaffected.
func statusHandler(svc *service.Service, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("status query failed", "panic", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		symbols := svc.Store().Symbols()

		status := struct {
			Connected    bool     `json:"connected"`
			PriceCount   int      `json:"priceCount"`
			Symbols      []string `json:"symbols"`
			SymbolsCount int      `json:"symbolsCount"`
		}{
			Connected:    svc.Upstream().IsConnected(),
			PriceCount:   svc.Store().Size(),
			Symbols:      symbols,
			SymbolsCount: len(symbols),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}

// healthHandler reports component health for orchestration probes.
func healthHandler(svc *service.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status     string         `json:"status"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]any),
		}

		if svc.Upstream().IsConnected() {
			health.Components["upstream"] = "connected"
		} else {
			health.Status = "degraded"
			health.Components["upstream"] = "disconnected"
		}

		health.Components["store"] = map[string]any{
			"prices": svc.Store().Size(),
		}
		health.Components["gateway"] = map[string]any{
			"subscribers": svc.Gateway().SubscriberCount(),
		}

		// Degraded still answers 200: the daemon is up and reconnecting.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})
}
