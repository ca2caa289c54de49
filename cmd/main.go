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
	"time"

	httpadapter "dha-marketplace/internal/adapter/http"
	"dha-marketplace/internal/adapter/memory"
	natsadapter "dha-marketplace/internal/adapter/nats"
	"dha-marketplace/internal/adapter/postgres"
	redisadapter "dha-marketplace/internal/adapter/redis"
	"dha-marketplace/internal/adapter/upstream"
	"dha-marketplace/internal/adapter/usecase"
	"dha-marketplace/internal/config"
	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
	"dha-marketplace/internal/db"
)

// launchTick is how often the launch countdown is re-evaluated in the
// background.
const launchTick = time.Second

// main is the entry point of the marketplace service. It loads
// configuration, wires storage, messaging and the backend client, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var campaigns port.CampaignRepository
	if cfg.Psql.Enabled {
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		campaigns = postgres.NewCampaignRepository(pool)
	} else {
		logger.Warn("postgres disabled, campaigns are kept in memory")
		campaigns = memory.NewCampaignRepository()
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, campaigns); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	var drafts port.DraftStore
	if cfg.Redis.Addr != "" {
		store, err := redisadapter.NewDraftStore(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer store.Close()
		drafts = store
	} else {
		logger.Warn("redis not configured, wizard drafts are kept in memory")
		drafts = memory.NewDraftStore()
	}

	var events port.CampaignEvents
	if cfg.NATS.URL != "" {
		pub, err := natsadapter.Connect(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			logger.Error("nats connection error", slog.Any("error", err))
			return
		}
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Warn("nats drain error", slog.Any("error", err))
			}
		}()
		events = pub
	}

	backend := upstream.NewClient(cfg.Upstream, nil)
	clock := domain.SystemClock{}

	launch := usecase.NewLaunchUseCase(cfg.Launch.At, clock, logger, nil)
	go func() {
		if err := launch.Watch(ctx, launchTick); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("launch countdown error", slog.Any("error", err))
		}
	}()

	limiter := httpadapter.NewClientLimiter(cfg.RateLimit)

	handler := httpadapter.NewHandler(httpadapter.Services{
		Wizard:    usecase.NewWizardUseCase(drafts, campaigns, events, clock, logger),
		Campaigns: usecase.NewCampaignUseCase(campaigns),
		Bookings:  usecase.NewBookingUseCase(backend, clock),
		Plots:     usecase.NewPlotUseCase(backend),
		Launch:    launch,
		Backend:   backend,
	}, logger, httpadapter.Options{
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
		RateLimit:      limiter,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-srvErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
