// Command cleanup deletes daily quotes and facts older than
// cleanup.daily_content_retention_days and anonymous quiz results older than
// cleanup.anonymous_quiz_retention_days. It runs the same job as the weekly
// scheduled cleanup and is meant for an external cron when the in-process
// scheduler is disabled.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/app"
	"github.com/heartmarshall/wordforge-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("build container", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	res, err := c.Scheduler.Cleanup(ctx)
	if err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int("quotes", res.Quotes),
		slog.Int("facts", res.Facts),
		slog.Int("anonymous_results", res.AnonymousResults),
	)
}
