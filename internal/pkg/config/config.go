package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type PostgresConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	DB       string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required"`
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns int32  `validate:"min=1"`
	MinConns int32  `validate:"min=0,ltefield=MaxConns"`
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type ObservabilityConfig struct {
	ServiceName  string `validate:"required"`
	OTLPEndpoint string
	MetricsPort  string `validate:"required,numeric"`
	PprofPort    string `validate:"omitempty,numeric"`
}

type AuthConfig struct {
	JWTSecret       string        `validate:"required,min=32"`
	TokenExpiration time.Duration `validate:"gt=0"`
	// DevTokens exposes POST /api/auth/token for local development.
	DevTokens bool
}

type RecommendationConfig struct {
	Limit              int           `validate:"min=1,max=50"`
	StatisticsCacheTTL time.Duration `validate:"gte=0"`
}

type Config struct {
	Repositories   RepositoriesConfig
	Observability  ObservabilityConfig
	Auth           AuthConfig
	Recommendation RecommendationConfig
	ServerPort     string `validate:"required,numeric"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	// ShutdownTimeout bounds draining requests, flushing telemetry and
	// closing the pool on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	maxConns, err := getEnvInt("POSTGRES_MAX_CONNS", 30)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("POSTGRES_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	limit, err := getEnvInt("RECOMMENDATION_LIMIT", 4)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("STATISTICS_CACHE_TTL", time.Minute)
	if err != nil {
		return nil, err
	}
	tokenTTL, err := getEnvDuration("JWT_EXPIRATION", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "passadia"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: int32(maxConns),
				MinConns: int32(minConns),
			},
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "passadia"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			MetricsPort:  getEnvOrDefault("METRICS_PORT", "9090"),
			PprofPort:    os.Getenv("PPROF_PORT"),
		},
		Auth: AuthConfig{
			JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
			TokenExpiration: tokenTTL,
			DevTokens:       getEnvOrDefault("AUTH_DEV_TOKENS", "false") == "true",
		},
		Recommendation: RecommendationConfig{
			Limit:              limit,
			StatisticsCacheTTL: cacheTTL,
		},
		ServerPort:      getEnvOrDefault("SERVER_PORT", "8091"),
		LogLevel:        strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}
