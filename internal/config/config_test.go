package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.OriginationFeeRate.Equal(mustDecimal(t, "0.02")) {
		t.Errorf("expected origination fee rate 0.02, got %s", cfg.OriginationFeeRate)
	}
	if !cfg.ProcessingFee.Equal(mustDecimal(t, "150")) {
		t.Errorf("expected processing fee 150, got %s", cfg.ProcessingFee)
	}
	if cfg.LiquidityQueueThreshold != 0.80 {
		t.Errorf("expected liquidity threshold 0.80, got %v", cfg.LiquidityQueueThreshold)
	}
	if cfg.MaxTermMonths != 60 {
		t.Errorf("expected max term 60, got %d", cfg.MaxTermMonths)
	}
	if cfg.QueueDrainInterval != 30*time.Minute {
		t.Errorf("expected drain interval 30m, got %s", cfg.QueueDrainInterval)
	}
	if cfg.RiskWeights != nil {
		t.Errorf("expected no default risk weights, got %v", cfg.RiskWeights)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEFAULT_LATE_FEE", "25.50")
	t.Setenv("MAX_TERM_MONTHS", "120")
	t.Setenv("RISK_WEIGHTS", "credit_history:0.4,debt_to_income:0.6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.DefaultLateFee.Equal(mustDecimal(t, "25.50")) {
		t.Errorf("expected late fee 25.50, got %s", cfg.DefaultLateFee)
	}
	if cfg.MaxTermMonths != 120 {
		t.Errorf("expected max term 120, got %d", cfg.MaxTermMonths)
	}
	if w := cfg.RiskWeights["debt_to_income"]; w != 0.6 {
		t.Errorf("expected debt_to_income weight 0.6, got %v", w)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PROCESSING_FEE", "abc")
	t.Setenv("MAX_TERM_MONTHS", "many")
	t.Setenv("QUEUE_DRAIN_INTERVAL", "soon")
	t.Setenv("RISK_WEIGHTS", "credit_history:oops,debt_to_income:-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.ProcessingFee.Equal(mustDecimal(t, "150")) {
		t.Errorf("expected fallback processing fee, got %s", cfg.ProcessingFee)
	}
	if cfg.MaxTermMonths != 60 {
		t.Errorf("expected fallback max term, got %d", cfg.MaxTermMonths)
	}
	if cfg.QueueDrainInterval != 30*time.Minute {
		t.Errorf("expected fallback drain interval, got %s", cfg.QueueDrainInterval)
	}
	if cfg.RiskWeights != nil {
		t.Errorf("expected malformed weights dropped, got %v", cfg.RiskWeights)
	}
}

func TestParseWeights(t *testing.T) {
	weights := parseWeights("income_verification:0.2, credit_history:0.3")
	if len(weights) != 2 || weights["credit_history"] != 0.3 {
		t.Errorf("unexpected weights %v", weights)
	}

	if parseWeights("") != nil {
		t.Error("expected nil for empty input")
	}
}
