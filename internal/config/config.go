package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the engine's tunable parameters. Every fee, threshold and
// limit that product may tune lives here rather than inline in the
// calculation code.
type Config struct {
	Env string

	// Disclosed fees (informational, never amortized into the installment).
	OriginationFeeRate decimal.Decimal
	ProcessingFee      decimal.Decimal
	InsuranceFeeRate   decimal.Decimal

	// Late fee applied when an overdue installment is settled and the
	// entry itself carries no explicit fee. Zero disables it.
	DefaultLateFee decimal.Decimal

	// Loan limits enforced on request-level quoting.
	MinPrincipal  decimal.Decimal
	MaxPrincipal  decimal.Decimal
	MaxTermMonths int

	// Withdrawal admission thresholds. LiquidityQueueThreshold is the
	// fraction of pool liquidity consumed above which every withdrawal
	// queues; LargeWithdrawalRatio is the amount-to-balance ratio above
	// which a single withdrawal queues.
	LiquidityQueueThreshold float64
	LargeWithdrawalRatio    decimal.Decimal

	// Seed drain interval for liquidity queue completion estimates,
	// refined at runtime from observed dequeue spacing.
	QueueDrainInterval time.Duration

	// Optional per-deployment risk subscore weights, e.g.
	// "credit_history:0.3,debt_to_income:0.3". Empty means equal weighting.
	RiskWeights map[string]float64

	// Quote cache.
	RedisAddr     string
	QuoteCacheTTL time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env: getEnv("SHIFTBOX_ENV", "development"),

		OriginationFeeRate: getEnvDecimal("ORIGINATION_FEE_RATE", "0.02"),
		ProcessingFee:      getEnvDecimal("PROCESSING_FEE", "150"),
		InsuranceFeeRate:   getEnvDecimal("INSURANCE_FEE_RATE", "0.005"),
		DefaultLateFee:     getEnvDecimal("DEFAULT_LATE_FEE", "0"),

		MinPrincipal:  getEnvDecimal("MIN_PRINCIPAL", "1000"),
		MaxPrincipal:  getEnvDecimal("MAX_PRINCIPAL", "100000"),
		MaxTermMonths: getEnvInt("MAX_TERM_MONTHS", 60),

		LiquidityQueueThreshold: getEnvFloat("LIQUIDITY_QUEUE_THRESHOLD", 0.80),
		LargeWithdrawalRatio:    getEnvDecimal("LARGE_WITHDRAWAL_RATIO", "0.10"),
		QueueDrainInterval:      getEnvDuration("QUEUE_DRAIN_INTERVAL", 30*time.Minute),

		RiskWeights: parseWeights(getEnv("RISK_WEIGHTS", "")),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		QuoteCacheTTL: getEnvDuration("QUOTE_CACHE_TTL", 15*time.Minute),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	raw := getEnv(key, defaultValue)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, falling back to %s\n", key, raw, defaultValue)
		d = decimal.RequireFromString(defaultValue)
	}
	return d
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, falling back to %v\n", key, raw, defaultValue)
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// parseWeights parses "name:weight,name:weight" pairs. Malformed pairs are
// skipped with a warning so a typo cannot silently zero out the whole map.
func parseWeights(raw string) map[string]float64 {
	if raw == "" {
		return nil
	}
	weights := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			log.Printf("Warning: skipping malformed risk weight %q\n", pair)
			continue
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w < 0 {
			log.Printf("Warning: skipping invalid risk weight %q\n", pair)
			continue
		}
		weights[name] = w
	}
	if len(weights) == 0 {
		return nil
	}
	return weights
}
