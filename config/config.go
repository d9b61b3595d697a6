package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string
	// CORS / origin allowlist
	AllowedOrigins []string
	// Mail transport selection: "smtp" or "resend"
	MailProvider string
	// SMTP Configuration (Brevo)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Resend Configuration
	ResendAPIKey string
	// Mail identities
	FromEmail      string // Verified sender address
	ContactEmailTo string // Where contact submissions are delivered
	AutoReply      bool   // Send an acknowledgement back to the submitter
	// Rate Limiting Configuration
	RateLimitWindowMinutes int
	RateLimitMax           int
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Timezone used for the timestamp in notification emails
	RenderTimezone string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),
		// Trailing slashes are stripped so origin comparison stays exact-match
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
			"https://groenv8.com,https://www.groenv8.com,http://localhost:3000")),
		MailProvider: getEnv("MAIL_PROVIDER", "smtp"),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Resend Configuration
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		// Mail identities
		FromEmail:      getEnv("MAIL_FROM_EMAIL", "noreply@groenv8.com"), // Must be a verified sender
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@groenv8.com"),
		AutoReply:      getEnvBool("AUTO_REPLY_ENABLED", true),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowMinutes: getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15), // 15 minute window
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 5),             // 5 submissions per window
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		RenderTimezone:       getEnv("RENDER_TIMEZONE", "UTC"),
	}

	// Surface misconfiguration at startup, not on the first submission
	if cfg.MailProvider == "resend" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: MAIL_PROVIDER=resend but RESEND_API_KEY is missing. Contact form will be unavailable.")
	}
	if cfg.MailProvider == "smtp" && (cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
		log.Println("WARNING: SMTP credentials are missing. Contact form will be unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
// Error details are elided from API responses when true.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
