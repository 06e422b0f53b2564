package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/khawla-14/markyticket/internal/config"
	"github.com/khawla-14/markyticket/internal/database"
	markyHttp "github.com/khawla-14/markyticket/internal/http"
	"github.com/khawla-14/markyticket/internal/http/auth"
	importHandler "github.com/khawla-14/markyticket/internal/http/importcsv"
	"github.com/khawla-14/markyticket/internal/http/middleware"
	ticketHandler "github.com/khawla-14/markyticket/internal/http/ticket"
	walletHandler "github.com/khawla-14/markyticket/internal/http/wallet"
	"github.com/khawla-14/markyticket/internal/idempotency"
	"github.com/khawla-14/markyticket/internal/importer"
	"github.com/khawla-14/markyticket/internal/metrics"
	"github.com/khawla-14/markyticket/internal/onbus"
	"github.com/khawla-14/markyticket/internal/ticket"
	ticketStore "github.com/khawla-14/markyticket/internal/ticket/store"
	"github.com/khawla-14/markyticket/internal/wallet"
	walletStore "github.com/khawla-14/markyticket/internal/wallet/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	redisClient, err := idempotency.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(registry)

	var (
		ticketService = ticket.NewService(
			ticketStore.New(db),
			onbus.NewCodec(cfg.OnBus.Secret),
			ticket.WithObserver(collector),
			ticket.WithSettlement(cfg.OnBus.Settlement),
		)
		walletService = wallet.NewService(walletStore.New(db), collector)
		importService = importer.NewService()
	)

	var (
		ticketH = ticketHandler.NewHandler(ticketService)
		walletH = walletHandler.NewHandler(walletService)
		importH = importHandler.NewHandler(importService, walletService)
	)

	router := markyHttp.New(markyHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth:           auth.New(cfg.Auth.Secret),
		Idempotency:    middleware.Idempotency(idempotency.NewStore(redisClient, cfg.Redis.IdempotencyTTL)),
		Metrics:        collector,
		Gatherer:       registry,
	}, ticketH, walletH, importH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "port", server.Addr, "settlement", cfg.OnBus.Settlement)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
