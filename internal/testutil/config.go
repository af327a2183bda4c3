package testutil

import (
	"time"

	"shiftbox/internal/config"
)

// TestConfig returns an engine configuration with production defaults,
// built directly so tests never touch the environment.
func TestConfig() *config.Config {
	return &config.Config{
		Env:                     "test",
		OriginationFeeRate:      D("0.02"),
		ProcessingFee:           D("150"),
		InsuranceFeeRate:        D("0.005"),
		DefaultLateFee:          D("0"),
		MinPrincipal:            D("1000"),
		MaxPrincipal:            D("100000"),
		MaxTermMonths:           60,
		LiquidityQueueThreshold: 0.80,
		LargeWithdrawalRatio:    D("0.10"),
		QueueDrainInterval:      30 * time.Minute,
		QuoteCacheTTL:           time.Minute,
	}
}
