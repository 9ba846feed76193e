package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"booking_backend/pkg/utils"

	"github.com/joho/godotenv"
)

// devSessionSecret is only accepted when APP_ENV=development.
const devSessionSecret = "dev-only-session-secret-change-me"

type Config struct {
	Env       string // development, production
	Port      string
	LogLevel  string
	LogFormat string

	DatabaseURL string // takes precedence over the DB_* parts below
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string
	TrustedProxies     []string // empty: client IP is the socket peer, forwarding headers ignored

	LoginRateLimitRPS   float64
	LoginRateLimitBurst int

	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	DashboardCacheTTL time.Duration

	TelegramBotToken string
	TelegramChatID   int64

	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                 utils.Getenv("APP_ENV", "development"),
		Port:                utils.Getenv("PORT", "8080"),
		LogLevel:            utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:           utils.Getenv("LOG_FORMAT", "console"),
		DatabaseURL:         utils.Getenv("DATABASE_URL", ""),
		DBHost:              utils.Getenv("DB_HOST", "localhost"),
		DBPort:              utils.Getenv("DB_PORT", "5432"),
		DBUser:              utils.Getenv("DB_USER", "booking_user"),
		DBPassword:          utils.Getenv("DB_PASSWORD", "booking_password"),
		DBName:              utils.Getenv("DB_NAME", "appointments"),
		DBSSLMode:           utils.Getenv("DB_SSLMODE", "disable"),
		SessionSecret:       utils.Getenv("SESSION_SECRET", ""),
		SessionTTL:          utils.GetenvDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:        utils.GetenvBool("COOKIE_SECURE", false),
		AdminUsername:       utils.Getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:       utils.Getenv("ADMIN_PASSWORD", "admin123"),
		LoginRateLimitRPS:   utils.GetenvFloat("LOGIN_RATE_LIMIT_RPS", 1),
		LoginRateLimitBurst: utils.GetenvInt("LOGIN_RATE_LIMIT_BURST", 5),
		RedisAddr:           utils.Getenv("REDIS_ADDR", ""),
		RedisPassword:       utils.Getenv("REDIS_PASSWORD", ""),
		RedisDB:             utils.GetenvInt("REDIS_DB", 0),
		DashboardCacheTTL:   utils.GetenvDuration("DASHBOARD_CACHE_TTL", time.Minute),
		TelegramBotToken:    utils.Getenv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      int64(utils.GetenvInt("TELEGRAM_CHAT_ID", 0)),
		ShutdownTimeout:     utils.GetenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	cfg.CORSAllowedOrigins = splitList(utils.Getenv("CORS_ALLOWED_ORIGINS", ""))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}
	cfg.TrustedProxies = splitList(utils.Getenv("TRUSTED_PROXIES", ""))

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = devSessionSecret
		utils.LogWarn("SESSION_SECRET not set, using development secret")
	}

	if cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD must not be empty")
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// DSN returns the lib/pq connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// splitList splits a comma-separated setting, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
