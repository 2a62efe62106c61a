package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	LLM       LLMConfig       `yaml:"llm"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"Retry-After,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// AuthConfig holds password and token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wordforge"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12"`
	AdminEmailsRaw string        `yaml:"admin_emails"     env:"ADMIN_EMAILS"`

	// AdminEmails is parsed from AdminEmailsRaw during validation.
	AdminEmails []string `yaml:"-" env:"-"`
}

// IsAdminEmail reports whether email is listed in admin_emails.
func (c AuthConfig) IsAdminEmail(email string) bool {
	return slices.Contains(c.AdminEmails, strings.ToLower(strings.TrimSpace(email)))
}

// LLMConfig holds completion API settings. The defaults target Groq's
// OpenAI-compatible endpoint.
type LLMConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"LLM_BASE_URL"        env-default:"https://api.groq.com/openai/v1"`
	APIKey         string        `yaml:"api_key"         env:"GROQ_API_KEY"        env-required:"true"`
	MainModel      string        `yaml:"main_model"      env:"LLM_MAIN_MODEL"      env-default:"llama-3.1-8b-instant"`
	CreativeModel  string        `yaml:"creative_model"  env:"LLM_CREATIVE_MODEL"  env-default:"llama-3.1-70b-versatile"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LLM_REQUEST_TIMEOUT" env-default:"60s"`
}

// SchedulerConfig holds cron expressions for the background jobs.
type SchedulerConfig struct {
	Enabled     bool   `yaml:"enabled"       env:"SCHEDULER_ENABLED"       env-default:"true"`
	Timezone    string `yaml:"timezone"      env:"SCHEDULER_TIMEZONE"      env-default:"UTC"`
	WordsCron   string `yaml:"words_cron"    env:"SCHEDULER_WORDS_CRON"    env-default:"0 0 * * *"`
	QuoteCron   string `yaml:"quote_cron"    env:"SCHEDULER_QUOTE_CRON"    env-default:"5 0 * * *"`
	FactCron    string `yaml:"fact_cron"     env:"SCHEDULER_FACT_CRON"     env-default:"10 0 * * *"`
	CleanupCron string `yaml:"cleanup_cron"  env:"SCHEDULER_CLEANUP_CRON"  env-default:"0 3 * * 0"`
	WordsPerRun int    `yaml:"words_per_run" env:"SCHEDULER_WORDS_PER_RUN" env-default:"15"`
}

// CleanupConfig holds retention periods for generated content.
type CleanupConfig struct {
	DailyContentRetentionDays  int `yaml:"daily_content_retention_days"  env:"CLEANUP_DAILY_CONTENT_RETENTION_DAYS"  env-default:"30"`
	AnonymousQuizRetentionDays int `yaml:"anonymous_quiz_retention_days" env:"CLEANUP_ANONYMOUS_QUIZ_RETENTION_DAYS" env-default:"7"`
}

// RateLimitConfig holds fixed-window rate limiter settings.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerWindow int           `yaml:"requests_per_window" env:"RATE_LIMIT_REQUESTS"         env-default:"100"`
	Window            time.Duration `yaml:"window"              env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
	Backend           string        `yaml:"backend"             env:"RATE_LIMIT_BACKEND"          env-default:"memory"`
}

// RedisConfig holds the connection used by the redis rate-limit backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
