// Package daily serves the quote and fact of the day, generating them on
// first request when the scheduled run has not produced one yet.
package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

type dailyRepo interface {
	CreateQuote(ctx context.Context, q *domain.DailyQuote) error
	LatestQuoteSince(ctx context.Context, since time.Time) (domain.DailyQuote, error)
	CreateFact(ctx context.Context, f *domain.Fact) error
	LatestFactSince(ctx context.Context, since time.Time) (domain.Fact, error)
}

type contentGenerator interface {
	Quote(ctx context.Context) (domain.DailyQuote, error)
	Fact(ctx context.Context) (domain.Fact, error)
}

type locker interface {
	Do(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) error
}

// Service implements the daily content operations.
type Service struct {
	log   *slog.Logger
	daily dailyRepo
	gen   contentGenerator
	locks locker
	now   func() time.Time
}

// NewService creates a daily content service.
func NewService(logger *slog.Logger, daily dailyRepo, gen contentGenerator, locks locker) *Service {
	return &Service{
		log:   logger.With("service", "daily"),
		daily: daily,
		gen:   gen,
		locks: locks,
		now:   time.Now,
	}
}

// Quote returns today's quote, generating one if none exists.
func (s *Service) Quote(ctx context.Context) (domain.DailyQuote, error) {
	q, err := todayOrGenerate(ctx, s, domain.ContentTypeQuote, s.daily.LatestQuoteSince, s.GenerateQuote)
	if err != nil {
		return domain.DailyQuote{}, fmt.Errorf("daily.Quote: %w", err)
	}
	return q, nil
}

// Fact returns today's fact, generating one if none exists.
func (s *Service) Fact(ctx context.Context) (domain.Fact, error) {
	f, err := todayOrGenerate(ctx, s, domain.ContentTypeFact, s.daily.LatestFactSince, s.GenerateFact)
	if err != nil {
		return domain.Fact{}, fmt.Errorf("daily.Fact: %w", err)
	}
	return f, nil
}

// GenerateQuote generates and stores a new quote. The caller holds the
// quote lock.
func (s *Service) GenerateQuote(ctx context.Context) (domain.DailyQuote, error) {
	q, err := s.gen.Quote(ctx)
	if err != nil {
		return domain.DailyQuote{}, err
	}
	q.CreatedAt = s.now().UTC()
	if err := s.daily.CreateQuote(ctx, &q); err != nil {
		return domain.DailyQuote{}, err
	}
	s.log.InfoContext(ctx, "daily quote generated", slog.String("quote_id", q.ID.String()))
	return q, nil
}

// GenerateFact generates and stores a new fact. The caller holds the fact lock.
func (s *Service) GenerateFact(ctx context.Context) (domain.Fact, error) {
	f, err := s.gen.Fact(ctx)
	if err != nil {
		return domain.Fact{}, err
	}
	f.CreatedAt = s.now().UTC()
	if err := s.daily.CreateFact(ctx, &f); err != nil {
		return domain.Fact{}, err
	}
	s.log.InfoContext(ctx, "daily fact generated", slog.String("fact_id", f.ID.String()))
	return f, nil
}

// todayOrGenerate reads the newest row since UTC midnight. On a miss it takes
// the content-type lock, reads again, and generates only if still missing.
func todayOrGenerate[T any](
	ctx context.Context,
	s *Service,
	ct domain.ContentType,
	read func(ctx context.Context, since time.Time) (T, error),
	generate func(ctx context.Context) (T, error),
) (T, error) {
	since := domain.DayStart(s.now())

	v, err := read(ctx, since)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return v, err
	}

	err = s.locks.Do(ctx, ct, func(ctx context.Context) error {
		v, err = read(ctx, since)
		if err == nil || !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.log.InfoContext(ctx, "no content for today, generating", slog.String("type", ct.String()))
		v, err = generate(ctx)
		return err
	})
	return v, err
}
