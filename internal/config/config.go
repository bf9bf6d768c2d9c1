package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	DB      DatabaseConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Storage StorageConfig
	Push    PushConfig
	Store   StoreConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SMTPConfig contains credentials for transactional email delivery.
type SMTPConfig struct {
	Host       string
	Port       string
	Username   string
	Password   string
	From       string
	OwnerEmail string
}

// StorageConfig contains object storage (S3-compatible) configuration.
// Product and banner images go to separate buckets.
type StorageConfig struct {
	Region          string
	ProductBucket   string
	BannerBucket    string
	AccessKeyID     string
	SecretAccessKey string
}

// PushConfig contains the push-delivery endpoint for order notifications.
type PushConfig struct {
	Endpoint string
}

// StoreConfig contains storefront parameters: the WhatsApp number that
// receives order handoffs and the allow-list of local delivery pincodes.
type StoreConfig struct {
	Name          string
	WhatsAppPhone string
	LocalPincodes []string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// SMTP
	cfg.SMTP = SMTPConfig{
		Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:       getEnv("SMTP_PORT", "587"),
		Username:   getEnv("SMTP_USERNAME", ""),
		Password:   getEnv("SMTP_PASSWORD", ""),
		From:       getEnv("SMTP_FROM", ""),
		OwnerEmail: getEnv("STORE_OWNER_EMAIL", ""),
	}

	// Object storage (ap-south-1 = Mumbai)
	cfg.Storage = StorageConfig{
		Region:          getEnv("S3_REGION", "ap-south-1"),
		ProductBucket:   getEnv("S3_PRODUCT_BUCKET", "brightstore-products"),
		BannerBucket:    getEnv("S3_BANNER_BUCKET", "brightstore-banners"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}

	// Push delivery
	cfg.Push = PushConfig{
		Endpoint: getEnv("PUSH_ENDPOINT", "https://exp.host/--/api/v2/push/send"),
	}

	// Storefront
	cfg.Store = StoreConfig{
		Name:          getEnv("STORE_NAME", "Bright Store"),
		WhatsAppPhone: getEnv("STORE_WHATSAPP_PHONE", ""),
		LocalPincodes: getEnvList("STORE_LOCAL_PINCODES", "600001,600002,600003,600004,600005"),
	}

	// Basic validation for DB parameters.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	// Validate JWT_SECRET
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	if cfg.Store.WhatsAppPhone == "" {
		return nil, errors.New("STORE_WHATSAPP_PHONE must be set for checkout handoff")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getEnvList parses a comma-separated environment variable into a slice,
// trimming whitespace and dropping empty entries.
func getEnvList(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
