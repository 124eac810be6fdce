package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	GymCacheTTL   time.Duration `env:"GYM_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Check-in Config
	CheckInMaxDistanceKm    float64        `env:"CHECKIN_MAX_DISTANCE_KM" envDefault:"0.1"`
	CheckInValidationWindow time.Duration  `env:"CHECKIN_VALIDATION_WINDOW" envDefault:"20m"`
	CheckInLocation         *time.Location `env:"CHECKIN_TIMEZONE" envDefault:"UTC"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"6"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// Default возвращает конфигурацию со значениями по умолчанию для бизнес-правил
func Default() *Config {
	return &Config{
		HTTPPort:                "8080",
		LogLevel:                "info",
		DBMaxConns:              10,
		RedisAddr:               "localhost:6379",
		RedisPoolSize:           10,
		GymCacheTTL:             5 * time.Minute,
		WebhookTimeout:          5 * time.Second,
		WebhookMaxRetries:       3,
		WebhookBaseDelay:        time.Second,
		CheckInMaxDistanceKm:    0.1,
		CheckInValidationWindow: 20 * time.Minute,
		CheckInLocation:         time.UTC,
		BcryptCost:              6,
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	location, err := time.LoadLocation(getEnv("CHECKIN_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKIN_TIMEZONE: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		DBMaxConns:              getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:           getEnvAsInt("REDIS_POOL_SIZE", 10),
		GymCacheTTL:             getEnvAsDuration("GYM_CACHE_TTL", 5*time.Minute),
		WebhookURL:              os.Getenv("WEBHOOK_URL"),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:          getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:       getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:        getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		CheckInMaxDistanceKm:    getEnvAsFloat("CHECKIN_MAX_DISTANCE_KM", 0.1),
		CheckInValidationWindow: getEnvAsDuration("CHECKIN_VALIDATION_WINDOW", 20*time.Minute),
		CheckInLocation:         location,
		BcryptCost:              getEnvAsInt("BCRYPT_COST", 6),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.CheckInMaxDistanceKm <= 0 {
		return nil, fmt.Errorf("CHECKIN_MAX_DISTANCE_KM must be positive, got %v", cfg.CheckInMaxDistanceKm)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
