package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const devProfileSecret = "secret"

var ErrMissingProfileSecret = errors.New("PROFILE_SECRET must be set in production")

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string
	LogFile  string

	CartStorage string
	BoltPath    string

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	RedisChannel  string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	BackendURL     string
	BackendTimeout time.Duration

	ProfileSecret string
	ProfileTTL    time.Duration
	ProfileCookie string

	WhatsAppOrderPhone   string
	WhatsAppContactPhone string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AdminEmail string

	OriginURL       string
	CatalogCacheTTL time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	AppConfig = Load()
}

// Load reads the configuration from the environment without touching .env files.
func Load() *Config {
	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		CartStorage: getEnv("CART_STORAGE", "bolt"),
		BoltPath:    getEnv("BOLT_PATH", "./poppyandteal.db"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisChannel:  getEnv("REDIS_CHANNEL", "cart_storage_changes"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "poppyandteal"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		BackendURL:     getEnv("BACKEND_URL", ""),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),

		ProfileSecret: getEnv("PROFILE_SECRET", ""),
		ProfileTTL:    getEnvDuration("PROFILE_TTL", 365*24*time.Hour),
		ProfileCookie: getEnv("PROFILE_COOKIE", "pt_profile"),

		WhatsAppOrderPhone:   getEnv("WHATSAPP_ORDER_PHONE", "919381340487"),
		WhatsAppContactPhone: getEnv("WHATSAPP_CONTACT_PHONE", "919080961400"),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnvInt("SMTP_PORT", 587),
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),

		OriginURL:       getEnv("ORIGIN_URL", ""),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects settings the server must not start with. Outside production an unset
// PROFILE_SECRET falls back to a fixed development value.
func (c *Config) Validate() error {
	if c.ProfileSecret == "" {
		if c.IsProduction() {
			return ErrMissingProfileSecret
		}
		c.ProfileSecret = devProfileSecret
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
