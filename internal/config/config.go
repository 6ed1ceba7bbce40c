package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	ServerPort string

	AdminPassword string
	PublicBaseURL string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	NotifyTimeout     time.Duration

	LogLevel string
	LogFile  string

	RedisURL          string
	RateLimitRequests int
	RateLimitWindow   time.Duration

	ArchiveBucket      string
	ArchiveRegion      string
	ArchiveEndpoint    string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load reads the process environment, after merging an optional .env file.
func Load() *Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	return &Config{
		DBUrl:      getEnv("DATABASE_URL", ""),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		NotifyTimeout:     getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		RedisURL:          getEnv("REDIS_URL", ""),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),

		ArchiveBucket:      getEnv("ARCHIVE_S3_BUCKET", ""),
		ArchiveRegion:      getEnv("ARCHIVE_S3_REGION", "eu-central-1"),
		ArchiveEndpoint:    getEnv("ARCHIVE_S3_ENDPOINT", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvAsDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// UsesDatabase reports whether a Postgres DSN was configured.
func (c *Config) UsesDatabase() bool {
	return c.DBUrl != ""
}

func (c *Config) SMSConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}

func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveBucket != ""
}
