package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Mail routing
	FromEmail string // Verified sender address
	ToEmail   string // Business inbox receiving notifications
	// Send a thank-you email back to the submitter
	SendConfirmation bool
	// Cloudflare Turnstile (CAPTCHA); empty disables verification
	TurnstileSecretKey string
	// SMTP backend (highest precedence when host, user and pass are all set)
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPSecure bool
	// Transactional API backends, in precedence order after SMTP
	ResendAPIKey   string
	SendGridAPIKey string
	// Rate limiting
	RateLimitCooldownSeconds int
	RateLimitTTLSeconds      int
	// Timeout applied to captcha verification and API mail calls
	HTTPTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (local only; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		FrontendURL:        getEnv("FRONTEND_URL", ""),
		FromEmail:          getEnv("FROM_EMAIL", "noreply@mybexa.com"),
		ToEmail:            getEnv("TO_EMAIL", "info@mybexa.com"),
		SendConfirmation:   getEnvBool("SEND_CONFIRMATION", false),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUser:           getEnv("SMTP_USER", ""),
		SMTPPass:           getEnv("SMTP_PASS", ""),
		SMTPSecure:         getEnvBool("SMTP_SECURE", false),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		// One submission per minute per (email, IP), entries kept one hour
		RateLimitCooldownSeconds: getEnvInt("RATE_LIMIT_COOLDOWN_SECONDS", 60),
		RateLimitTTLSeconds:      getEnvInt("RATE_LIMIT_TTL_SECONDS", 3600),
		HTTPTimeoutSeconds:       getEnvInt("HTTP_TIMEOUT_SECONDS", 10),
	}

	return cfg, nil
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
