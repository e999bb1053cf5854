package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/pricing"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port string

	APIBaseURL string
	APITimeout time.Duration
	UseMock    bool

	FreeDeliveryThreshold decimal.Decimal
	SubmitTimeout         time.Duration
	PaymentStatusDelay    time.Duration

	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string

	JWTSecret       string
	ResendAPIKey    string
	ResendFromEmail string

	// PromoCodes overrides the built-in promotion registry when set.
	PromoCodes string

	MetricsEnabled bool
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "3000"),

		APIBaseURL: getenv("API_BASE_URL", "https://api.platypusliquor.co.ke/v1"),
		APITimeout: parseDuration(getenv("API_TIMEOUT", "10s"), 10*time.Second),
		UseMock:    parseBool(getenv("USE_MOCK_DATA", "false"), false),

		FreeDeliveryThreshold: parsePositiveDecimal(getenv("FREE_DELIVERY_THRESHOLD", "3000"), pricing.DefaultFreeDeliveryThreshold),
		SubmitTimeout:         parseDuration(getenv("SUBMIT_TIMEOUT", "30s"), 30*time.Second),
		PaymentStatusDelay:    parseDuration(getenv("PAYMENT_STATUS_DELAY", "2s"), 2*time.Second),

		RedisAddr:   getenv("REDIS_ADDR", ""),
		KafkaBroker: getenv("KAFKA_BROKER", ""),
		KafkaTopic:  getenv("KAFKA_TOPIC", "order.events"),

		JWTSecret:       getenv("JWT_SECRET", ""),
		ResendAPIKey:    strings.Trim(getenv("RESEND_API_KEY", ""), "\""),
		ResendFromEmail: strings.Trim(getenv("RESEND_FROM_EMAIL", ""), "\""),

		PromoCodes: getenv("PROMO_CODES", ""),

		MetricsEnabled: parseBool(getenv("PROMETHEUS_ENABLED", "true"), true),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func parseBool(v string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// parsePositiveDecimal falls back to def unless v is a number above zero.
func parsePositiveDecimal(v string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || !d.IsPositive() {
		return def
	}
	return d
}
