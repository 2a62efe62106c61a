package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/content"
	"github.com/heartmarshall/wordforge-backend/internal/service/vocabulary"
)

// DailyResult is the content produced by one daily run.
type DailyResult struct {
	Quote domain.DailyQuote
	Fact  domain.Fact
}

// CleanupResult counts the rows removed by one cleanup run.
type CleanupResult struct {
	Quotes           int
	Facts            int
	AnonymousResults int
}

// GenerateWords runs word generation now, waiting for a scheduled run of the
// same type to finish first.
func (s *Scheduler) GenerateWords(ctx context.Context, count int) (vocabulary.GenerateResult, error) {
	if count <= 0 {
		count = s.cfg.WordsPerRun
	}

	var res vocabulary.GenerateResult
	err := s.deps.Locks.Do(ctx, domain.ContentTypeWords, func(ctx context.Context) error {
		var err error
		res, err = s.deps.Words.GenerateWords(ctx, count)
		return err
	})
	if err != nil {
		return vocabulary.GenerateResult{}, fmt.Errorf("scheduler.GenerateWords: %w", err)
	}
	return res, nil
}

// GenerateDailyContent generates a new quote and a new fact.
func (s *Scheduler) GenerateDailyContent(ctx context.Context) (DailyResult, error) {
	var out DailyResult

	err := s.deps.Locks.Do(ctx, domain.ContentTypeQuote, func(ctx context.Context) error {
		var err error
		out.Quote, err = s.deps.Daily.GenerateQuote(ctx)
		return err
	})
	if err != nil {
		return DailyResult{}, fmt.Errorf("scheduler.GenerateDailyContent: quote: %w", err)
	}

	err = s.deps.Locks.Do(ctx, domain.ContentTypeFact, func(ctx context.Context) error {
		var err error
		out.Fact, err = s.deps.Daily.GenerateFact(ctx)
		return err
	})
	if err != nil {
		return DailyResult{}, fmt.Errorf("scheduler.GenerateDailyContent: fact: %w", err)
	}
	return out, nil
}

// GenerateIdioms runs idiom generation now.
func (s *Scheduler) GenerateIdioms(ctx context.Context, count int) (content.IdiomResult, error) {
	var res content.IdiomResult
	err := s.deps.Locks.Do(ctx, domain.ContentTypeIdioms, func(ctx context.Context) error {
		var err error
		res, err = s.deps.Idioms.GenerateIdioms(ctx, count)
		return err
	})
	if err != nil {
		return content.IdiomResult{}, fmt.Errorf("scheduler.GenerateIdioms: %w", err)
	}
	return res, nil
}

// Cleanup removes daily content and anonymous quiz results past retention.
func (s *Scheduler) Cleanup(ctx context.Context) (CleanupResult, error) {
	var res CleanupResult
	err := s.deps.Locks.Do(ctx, domain.ContentTypeCleanup, func(ctx context.Context) error {
		var err error
		res, err = s.runCleanup(ctx)
		return err
	})
	if err != nil {
		return CleanupResult{}, fmt.Errorf("scheduler.Cleanup: %w", err)
	}
	return res, nil
}

// runCleanup expects the cleanup lock to be held.
func (s *Scheduler) runCleanup(ctx context.Context) (CleanupResult, error) {
	now := s.now().UTC()
	dailyCutoff := now.AddDate(0, 0, -s.cleanup.DailyContentRetentionDays)
	quizCutoff := now.AddDate(0, 0, -s.cleanup.AnonymousQuizRetentionDays)

	var res CleanupResult
	var err error

	res.Quotes, res.Facts, err = s.deps.DailyDB.DeleteBefore(ctx, dailyCutoff)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("delete daily content: %w", err)
	}

	res.AnonymousResults, err = s.deps.QuizDB.DeleteAnonymousResultsBefore(ctx, quizCutoff)
	if err != nil {
		return CleanupResult{}, fmt.Errorf("delete anonymous quiz results: %w", err)
	}

	s.log.InfoContext(ctx, "cleanup finished",
		slog.Int("quotes", res.Quotes),
		slog.Int("facts", res.Facts),
		slog.Int("anonymous_results", res.AnonymousResults),
	)
	return res, nil
}
