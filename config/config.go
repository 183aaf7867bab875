package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the API server settings.
type Config struct {
	Port     string `env:"PORT" envDefault:"4000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DB_DRIVER selects the GORM dialector: postgres or mysql.
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"db"`
	// DB_PORT defaults to the driver's port (5432 postgres, 3306 mysql).
	DBPort      int    `env:"DB_PORT"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`
	DBTimeZone  string `env:"DB_TIMEZONE" envDefault:"America/Sao_Paulo"`

	JWTSecret       string        `env:"JWT_SECRET_KEY"`
	LegacyJWTSecret string        `env:"JWT_SECRET"`
	JWTTTL          time.Duration `env:"JWT_TTL" envDefault:"24h"`

	AllowedOrigins  string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
	BodyLimitMB     int           `env:"BODY_LIMIT_MB" envDefault:"4"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"60"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`

	// Cron spec for flipping past-due pending bills to overdue. Empty disables the job.
	OverdueSchedule string `env:"OVERDUE_SCHEDULE" envDefault:"@hourly"`
}

// BackofficeConfig holds the settings of the back office web surface.
type BackofficeConfig struct {
	Port       string        `env:"BACKOFFICE_PORT" envDefault:"3000"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
	APIURL     string        `env:"API_URL" envDefault:"http://localhost:4000/"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	RedisURL        string        `env:"REDIS_URL"`
	SessionCacheTTL time.Duration `env:"SESSION_CACHE_TTL" envDefault:"1m"`
	LoginPath       string        `env:"LOGIN_PATH" envDefault:"/login"`
}

// Load reads an optional .env file and parses the API configuration.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		cfg.JWTSecret = cfg.LegacyJWTSecret
	}
	if cfg.DBPort == 0 {
		cfg.DBPort = defaultDBPort(cfg.DBDriver)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.DBDriver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT secret not configured (set JWT_SECRET_KEY or JWT_SECRET)")
	}
	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB must be positive")
	}
	return nil
}

func defaultDBPort(driver string) int {
	if driver == "mysql" {
		return 3306
	}
	return 5432
}

// DSN builds the connection string for the configured driver.
// DATABASE_URL wins when set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBDriver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone)
}

// LoadBackoffice reads an optional .env file and parses the back office configuration.
func LoadBackoffice() (BackofficeConfig, error) {
	_ = godotenv.Load()

	var cfg BackofficeConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if !strings.HasSuffix(cfg.APIURL, "/") {
		cfg.APIURL += "/"
	}
	return cfg, nil
}
