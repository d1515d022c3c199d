package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Directory   DirectoryConfig
	Scheduler   SchedulerConfig
}

type HTTPConfig struct {
	Addr               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	URL        string
	SessionTTL time.Duration
}

type AuthConfig struct {
	JWTSecret   string
	ResetSecret string
	TokenTTL    time.Duration
}

// DirectoryConfig - доступ к API каталога студентов (42 intra)
type DirectoryConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	CampusID     string
	Timeout      time.Duration
}

type SchedulerConfig struct {
	ResetCron string
}

// ErrMissingJWTSecret - JWT_SECRET обязателен вне development
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set outside development")

const devJWTSecret = "dev-secret"

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Addr:               getEnv("HTTP_ADDR", ":8080"),
			CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "football"),
			Password: getEnv("DB_PASSWORD", "football"),
			DBName:   getEnv("DB_NAME", "football_registration"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
			SessionTTL: getEnvDuration("TEAM_SESSION_TTL", 24*time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			ResetSecret: getEnv("RESET_SECRET", ""),
			TokenTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Directory: DirectoryConfig{
			BaseURL:      getEnv("DIRECTORY_BASE_URL", "https://api.intra.42.fr"),
			TokenURL:     getEnv("DIRECTORY_TOKEN_URL", "https://api.intra.42.fr/oauth/token"),
			ClientID:     getEnv("DIRECTORY_CLIENT_ID", ""),
			ClientSecret: getEnv("DIRECTORY_CLIENT_SECRET", ""),
			CampusID:     getEnv("DIRECTORY_CAMPUS_ID", "43"),
			Timeout:      getEnvDuration("DIRECTORY_TIMEOUT", 5*time.Second),
		},
		Scheduler: SchedulerConfig{
			// по времени кампуса: вторник и пятница 00:00, после игровых дней
			ResetCron: getEnv("RESET_CRON", "0 0 * * 2,5"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, ErrMissingJWTSecret
		}
		cfg.Auth.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// допускаем значение в секундах
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
