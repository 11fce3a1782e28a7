package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	SMTPHost     string
	SMTPPort     string
	SMTPEmail    string // sender identity and SMTP username
	SMTPPassword string

	SheetsID        string // spreadsheet key of the ledger
	CredentialsPath string // path to a service-account JSON file
	CredentialsJSON string // inline service-account JSON, used when no path is set

	SessionSecret  string
	SessionIdleTTL time.Duration
	GatewayTimeout time.Duration

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  getEnv("APP_ENV", "development"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.qq.com"),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPEmail:    getEnv("SMTP_EMAIL", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SheetsID:        getEnv("GOOGLE_SHEETS_ID", ""),
		CredentialsPath: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		CredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),

		SessionSecret:  getEnv("SESSION_SECRET", "your-default-secret-key"),
		SessionIdleTTL: time.Duration(getEnvInt("SESSION_IDLE_HOURS", 24)) * time.Hour,
		GatewayTimeout: time.Duration(getEnvInt("GATEWAY_TIMEOUT_SECONDS", 10)) * time.Second,

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// RequiredVars names the env vars the service needs to be fully functional.
// Missing values degrade the affected gateway but never abort startup.
var RequiredVars = []string{"SMTP_EMAIL", "SMTP_PASSWORD", "GOOGLE_SHEETS_ID", "GOOGLE_CREDENTIALS_JSON"}

// CheckStartup logs which required env vars are missing and whether the
// inline Google credentials parse as JSON. Diagnostic only.
func (c *Config) CheckStartup() {
	var missing []string
	for _, v := range RequiredVars {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		log.Printf("WARN: missing env vars: %s (functionality will be limited)", strings.Join(missing, ", "))
	} else {
		log.Println("All required environment variables are configured")
	}

	if c.CredentialsJSON != "" {
		if !json.Valid([]byte(c.CredentialsJSON)) {
			log.Println("WARN: GOOGLE_CREDENTIALS_JSON is not valid JSON")
		}
	} else if c.CredentialsPath == "" {
		log.Println("WARN: no Google service-account credentials configured")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
