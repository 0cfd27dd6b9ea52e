package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"maricheck/pkg/platform/strings"

	"github.com/joho/godotenv"
)

// Server captures process level configuration.
type Server struct {
	Addr           string
	Environment    string
	RequestTimeout time.Duration

	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Session   SessionConfig
	Uploads   UploadConfig
	RateLimit RateLimitConfig

	// AdminBootstrapPassword seeds the default "admin" account on an empty admins table.
	AdminBootstrapPassword string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	devSessionSecret    = "dev-session-secret-change-in-production"
	devBootstrapPasswd  = "admin123"
	defaultMaxUploadLen = 16 << 20
)

// IsProduction reports whether dev conveniences must be disabled.
func (s Server) IsProduction() bool {
	return s.Environment == EnvProduction
}

// FromEnv builds a Server config from environment variables, after loading an
// optional .env file so main stays lean.
func FromEnv() (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Server{
		Addr:           getEnv("MARICHECK_ADDR", ":8080"),
		Environment:    getEnv("ENVIRONMENT", EnvDevelopment),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		},
		Redis: RedisConfig{
			URL:          getEnv("REDIS_URL", ""),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    strings.SplitList(getEnv("KAFKA_BROKERS", "")),
			AuditTopic: getEnv("AUDIT_TOPIC", "maricheck.audit"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
			TTL:    getDuration("SESSION_TTL", 12*time.Hour),
		},
		Uploads: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: int64(getInt("MAX_UPLOAD_BYTES", defaultMaxUploadLen)),
		},
		RateLimit: RateLimitConfig{
			Requests: getInt("RATE_LIMIT_REQUESTS", 30),
			Window:   getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		AdminBootstrapPassword: getEnv("ADMIN_BOOTSTRAP_PASSWORD", ""),
	}

	if cfg.Session.Secret == "" {
		if cfg.IsProduction() {
			return Server{}, errors.New("SESSION_SECRET is required in production")
		}
		cfg.Session.Secret = devSessionSecret
	}
	if cfg.AdminBootstrapPassword == "" && !cfg.IsProduction() {
		cfg.AdminBootstrapPassword = devBootstrapPasswd
	}
	if cfg.Uploads.MaxBytes <= 0 {
		return Server{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.Uploads.MaxBytes)
	}
	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		return Server{}, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
