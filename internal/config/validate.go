package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}
	c.Auth.AdminEmails = ParseEmailList(c.Auth.AdminEmailsRaw)

	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key must be set")
	}
	if c.LLM.RequestTimeout <= 0 {
		return fmt.Errorf("llm.request_timeout must be > 0 (got %s)", c.LLM.RequestTimeout)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if c.Cleanup.DailyContentRetentionDays <= 0 {
		return fmt.Errorf("cleanup.daily_content_retention_days must be > 0 (got %d)", c.Cleanup.DailyContentRetentionDays)
	}
	if c.Cleanup.AnonymousQuizRetentionDays <= 0 {
		return fmt.Errorf("cleanup.anonymous_quiz_retention_days must be > 0 (got %d)", c.Cleanup.AnonymousQuizRetentionDays)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	if s.WordsPerRun <= 0 || s.WordsPerRun > 50 {
		return fmt.Errorf("words_per_run must be between 1 and 50 (got %d)", s.WordsPerRun)
	}
	for name, expr := range map[string]string{
		"words_cron":   s.WordsCron,
		"quote_cron":   s.QuoteCron,
		"fact_cron":    s.FactCron,
		"cleanup_cron": s.CleanupCron,
	} {
		if len(strings.Fields(expr)) != 5 {
			return fmt.Errorf("%s must have 5 fields (got %q)", name, expr)
		}
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerWindow <= 0 {
		return fmt.Errorf("requests_per_window must be > 0 (got %d)", r.RequestsPerWindow)
	}
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", r.Window)
	}
	switch r.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("backend must be memory or redis (got %q)", r.Backend)
	}
	return nil
}

// ParseEmailList parses a comma-separated list of emails, lowercasing and
// trimming each one. An empty string returns a nil slice.
func ParseEmailList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		emails = append(emails, p)
	}
	return emails
}
