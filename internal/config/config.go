package config

import (
	"os"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime settings of the server.
type Config struct {
	Port          string
	StorageDriver string // "mongo" or "postgres"
	MongoURI      string
	MongoDB       string
	PostgresDSN   string
	JWTSecret     string
	TokenExpiry   time.Duration
	CORSOrigins   []string
	AppBaseURL    string
	LogLevel      string
	Location      *time.Location // display zone for dates in notification messages
	SMTP          SMTPConfig
}

const defaultJWTSecret = "change-me"

type SMTPConfig struct {
	Host     string
	Port     string
	Sender   string
	Password string
}

// Enabled reports whether outgoing mail is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// LoadConfig reads the .env file (if any) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	expiry, err := time.ParseDuration(getEnv("TOKEN_EXPIRY", "72h"))
	if err != nil {
		logrus.WithError(err).Warn("Invalid TOKEN_EXPIRY, falling back to 72h")
		expiry = 72 * time.Hour
	}

	secret := getEnv("JWT_SECRET", defaultJWTSecret)
	if secret == defaultJWTSecret {
		logrus.Warn("JWT_SECRET not set, using the insecure default secret")
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		logrus.WithError(err).Warn("Invalid TIMEZONE, falling back to UTC")
		loc = time.UTC
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "mongo")),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "study_tasks"),
		PostgresDSN:   getEnv("POSTGRES_DSN", "host=localhost port=5432 user=tasks password=tasks dbname=study_tasks sslmode=disable"),
		JWTSecret:     secret,
		TokenExpiry:   expiry,
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		AppBaseURL:    strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Location:      loc,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnv("SMTP_PORT", "587"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
