package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordforge-backend/internal/adapter/redis"
	"github.com/heartmarshall/wordforge-backend/internal/config"
	"github.com/heartmarshall/wordforge-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordforge-backend/internal/transport/rest"
)

// Run is the application entry point. It wires the container, starts the
// scheduler and serves HTTP until ctx is cancelled, then shuts down within
// server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.Scheduler.Enabled {
		if err := c.Scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer c.Scheduler.Stop()
	}

	handler, closeStore, err := newHTTPHandler(ctx, cfg, logger, c)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// newHTTPHandler builds the router and global middleware. The returned func
// releases the rate-limit store.
func newHTTPHandler(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	c *Container,
) (http.Handler, func(), error) {
	var (
		store      middleware.Store
		closeStore = func() {}
	)
	if cfg.RateLimit.Enabled {
		var err error
		store, closeStore, err = newRateLimitStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(Version, c.Pool, healthChecks(store)...),
		Words:    rest.NewWordHandler(c.Vocabulary, c.Progress, logger),
		Quiz:     rest.NewQuizHandler(c.Quiz, logger),
		Daily:    rest.NewDailyHandler(c.Daily, logger),
		Content:  rest.NewContentHandler(c.Content, logger),
		Progress: rest.NewProgressHandler(c.Progress, logger),
		Auth:     rest.NewAuthHandler(c.Auth, c.User, logger),
		Admin:    rest.NewAdminHandler(c.Scheduler, c.User, logger),
		Version:  Version,
	})

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if store != nil {
		mws = append(mws, middleware.RateLimit(store, cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window, logger))
	}

	mws = append(mws, middleware.Auth(c.JWT, cfg.Auth.IsAdminEmail))

	return middleware.Chain(mws...)(router), closeStore, nil
}

// healthChecks adds the rate-limit store to the health probes when it lives
// outside the process.
func healthChecks(store middleware.Store) []rest.HealthCheck {
	if rs, ok := store.(*redis.RateLimitStore); ok {
		return []rest.HealthCheck{{Name: "redis", Pinger: rs}}
	}
	return nil
}

func newRateLimitStore(ctx context.Context, cfg *config.Config) (middleware.Store, func(), error) {
	switch cfg.RateLimit.Backend {
	case "redis":
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("rate limit store: %w", err)
		}
		return redis.NewRateLimitStore(client, ""), func() { client.Close() }, nil
	default:
		store := middleware.NewMemoryStore(cfg.RateLimit.CleanupInterval)
		return store, store.Stop, nil
	}
}
