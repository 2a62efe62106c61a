// Package scheduler runs the periodic generation and cleanup jobs and the
// matching admin triggers. Every run holds the lock of its content type.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/wordforge-backend/internal/config"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/content"
	"github.com/heartmarshall/wordforge-backend/internal/service/vocabulary"
)

// jobTimeout bounds one scheduled run.
const jobTimeout = 10 * time.Minute

type wordGenerator interface {
	GenerateWords(ctx context.Context, count int) (vocabulary.GenerateResult, error)
}

type dailyGenerator interface {
	GenerateQuote(ctx context.Context) (domain.DailyQuote, error)
	GenerateFact(ctx context.Context) (domain.Fact, error)
}

type idiomGenerator interface {
	GenerateIdioms(ctx context.Context, count int) (content.IdiomResult, error)
}

type dailyCleaner interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (quotes int, facts int, err error)
}

type quizCleaner interface {
	DeleteAnonymousResultsBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type locker interface {
	Do(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) error
	TryDo(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) (bool, error)
}

// Deps are the collaborators of the scheduler.
type Deps struct {
	Words   wordGenerator
	Daily   dailyGenerator
	Idioms  idiomGenerator
	DailyDB dailyCleaner
	QuizDB  quizCleaner
	Locks   locker
}

// Scheduler owns the cron loop.
type Scheduler struct {
	log     *slog.Logger
	cfg     config.SchedulerConfig
	cleanup config.CleanupConfig
	deps    Deps
	cron    *gocron.Scheduler
	now     func() time.Time

	cancel context.CancelFunc
}

// New creates a scheduler. Jobs are registered by Start.
func New(logger *slog.Logger, cfg config.SchedulerConfig, cleanup config.CleanupConfig, deps Deps) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler: load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		log:     logger.With("component", "scheduler"),
		cfg:     cfg,
		cleanup: cleanup,
		deps:    deps,
		cron:    gocron.NewScheduler(loc),
		now:     time.Now,
	}, nil
}

// Start registers the cron jobs and runs them in the background until Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	jobs := []struct {
		ct   domain.ContentType
		expr string
		run  func(ctx context.Context) error
	}{
		{domain.ContentTypeWords, s.cfg.WordsCron, func(ctx context.Context) error {
			_, err := s.deps.Words.GenerateWords(ctx, s.cfg.WordsPerRun)
			return err
		}},
		{domain.ContentTypeQuote, s.cfg.QuoteCron, func(ctx context.Context) error {
			_, err := s.deps.Daily.GenerateQuote(ctx)
			return err
		}},
		{domain.ContentTypeFact, s.cfg.FactCron, func(ctx context.Context) error {
			_, err := s.deps.Daily.GenerateFact(ctx)
			return err
		}},
		{domain.ContentTypeCleanup, s.cfg.CleanupCron, func(ctx context.Context) error {
			_, err := s.runCleanup(ctx)
			return err
		}},
	}

	s.cron.WaitForScheduleAll()
	s.cron.SingletonModeAll()

	for _, j := range jobs {
		_, err := s.cron.Cron(j.expr).Tag(j.ct.String()).Do(s.scheduled(ctx, j.ct, j.run))
		if err != nil {
			s.cancel()
			return fmt.Errorf("scheduler: register %s job %q: %w", j.ct, j.expr, err)
		}
	}

	s.cron.StartAsync()
	s.log.Info("scheduler started", slog.Int("jobs", s.cron.Len()))
	return nil
}

// Stop halts the cron loop and cancels running jobs.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	if s.cancel != nil {
		s.cancel()
	}
	s.log.Info("scheduler stopped")
}

// scheduled wraps a job so that it skips when a run of the same type is in
// progress and never panics the cron goroutine.
func (s *Scheduler) scheduled(ctx context.Context, ct domain.ContentType, run func(ctx context.Context) error) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("scheduled job panicked", slog.String("job", ct.String()), slog.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		start := s.now()
		ran, err := s.deps.Locks.TryDo(ctx, ct, run)
		switch {
		case !ran:
			s.log.Warn("scheduled job skipped, previous run in progress", slog.String("job", ct.String()))
		case err != nil:
			s.log.Error("scheduled job failed",
				slog.String("job", ct.String()),
				slog.String("error", err.Error()),
			)
		default:
			s.log.Info("scheduled job finished",
				slog.String("job", ct.String()),
				slog.Duration("took", s.now().Sub(start)),
			)
		}
	}
}
