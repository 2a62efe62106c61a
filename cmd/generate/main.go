// Command generate runs one generation pass for a content type and exits.
// It takes the same per-type lock as the scheduler, so it waits for a
// concurrent run of the same type inside this process only.
//
// Usage:
//
//	generate --type=words [--count=15]
//	generate --type=daily
//	generate --type=idioms [--count=10]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/app"
	"github.com/heartmarshall/wordforge-backend/internal/config"
)

func main() {
	kind := flag.String("type", "", "content type to generate: words, daily or idioms")
	count := flag.Int("count", 0, "number of items to request (0 = default)")
	flag.Parse()

	if *kind == "" {
		fmt.Fprintln(os.Stderr, "Usage: generate --type=words|daily|idioms [--count=N]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("build container", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	switch *kind {
	case "words":
		res, err := c.Scheduler.GenerateWords(ctx, *count)
		if err != nil {
			fail(logger, err)
		}
		logger.Info("words generated",
			slog.String("category", res.Category),
			slog.Int("generated", res.Generated),
			slog.Int("created", res.Created),
			slog.Int("skipped", res.Skipped),
			slog.Int("failed", res.Failed),
			slog.Int("dropped", res.Dropped),
		)
	case "daily":
		res, err := c.Scheduler.GenerateDailyContent(ctx)
		if err != nil {
			fail(logger, err)
		}
		logger.Info("daily content generated",
			slog.String("quote_id", res.Quote.ID.String()),
			slog.String("fact_id", res.Fact.ID.String()),
		)
	case "idioms":
		res, err := c.Scheduler.GenerateIdioms(ctx, *count)
		if err != nil {
			fail(logger, err)
		}
		logger.Info("idioms generated",
			slog.Int("generated", res.Generated),
			slog.Int("created", res.Created),
			slog.Int("skipped", res.Skipped),
			slog.Int("failed", res.Failed),
		)
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q: want words, daily or idioms\n", *kind)
		os.Exit(1)
	}
}

func fail(logger *slog.Logger, err error) {
	logger.Error("generation failed", slog.String("error", err.Error()))
	os.Exit(1)
}
