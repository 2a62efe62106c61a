package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordforge-backend/internal/adapter/postgres"
	contentrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/content"
	dailyrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/daily"
	idiomrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/idiom"
	progressrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/progress"
	quizrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/quiz"
	userrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/user"
	wordrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordforge-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/wordforge-backend/internal/auth"
	"github.com/heartmarshall/wordforge-backend/internal/config"
	"github.com/heartmarshall/wordforge-backend/internal/scheduler"
	authsvc "github.com/heartmarshall/wordforge-backend/internal/service/auth"
	"github.com/heartmarshall/wordforge-backend/internal/service/content"
	"github.com/heartmarshall/wordforge-backend/internal/service/daily"
	"github.com/heartmarshall/wordforge-backend/internal/service/generation"
	"github.com/heartmarshall/wordforge-backend/internal/service/progress"
	"github.com/heartmarshall/wordforge-backend/internal/service/quiz"
	"github.com/heartmarshall/wordforge-backend/internal/service/user"
	"github.com/heartmarshall/wordforge-backend/internal/service/vocabulary"
)

// Container holds the database pool and every service built on it. The API
// server and the one-shot commands share it.
type Container struct {
	Pool *pgxpool.Pool
	JWT  *auth.JWTManager

	completion *completion.Client

	Vocabulary *vocabulary.Service
	Quiz       *quiz.Service
	Daily      *daily.Service
	Content    *content.Service
	Progress   *progress.Service
	Auth       *authsvc.Service
	User       *user.Service
	Scheduler  *scheduler.Scheduler
}

// NewContainer connects to the database, applies migrations when
// database.auto_migrate is set, and wires repositories into services.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	// Repositories.
	words := wordrepo.New(pool)
	quizzes := quizrepo.New(pool)
	dailies := dailyrepo.New(pool)
	contents := contentrepo.New(pool)
	idioms := idiomrepo.New(pool)
	users := userrepo.New(pool)
	progresses := progressrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Generation.
	client := completion.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.RequestTimeout, UserAgent(), logger)
	gen := generation.NewService(logger, client, cfg.LLM, generation.RandomPicker{})
	locks := generation.NewLocks()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	c := &Container{
		Pool:       pool,
		JWT:        jwt,
		completion: client,
		Vocabulary: vocabulary.NewService(logger, words, progresses, gen, tx),
		Quiz:       quiz.NewService(logger, quizzes, words, gen),
		Daily:      daily.NewService(logger, dailies, gen, locks),
		Content:    content.NewService(logger, contents, idioms, gen, tx),
		Progress:   progress.NewService(logger, progresses, tx),
		Auth:       authsvc.NewService(logger, users, jwt, cfg.Auth),
		User:       user.NewService(logger, users, progresses, quizzes, words),
	}

	sched, err := scheduler.New(logger, cfg.Scheduler, cfg.Cleanup, scheduler.Deps{
		Words:   c.Vocabulary,
		Daily:   c.Daily,
		Idioms:  c.Content,
		DailyDB: dailies,
		QuizDB:  quizzes,
		Locks:   locks,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	c.Scheduler = sched

	return c, nil
}

// Close releases the completion client and the database pool.
func (c *Container) Close() {
	c.completion.Close() //nolint:errcheck
	c.Pool.Close()
}
