package models

// RiskTier is a coarse creditworthiness bucket, ordered by decreasing
// creditworthiness. Derived from a numeric score in [0,1000]; the engine
// consumes the tier and, for decision support, optionally the raw score.
type RiskTier string

const (
	TierExcellent RiskTier = "excellent"
	TierGood      RiskTier = "good"
	TierFair      RiskTier = "fair"
	TierPoor      RiskTier = "poor"
	TierVeryPoor  RiskTier = "very_poor"
)

// RiskLevel classifies an aggregated risk score for the approval workflow.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Canonical subscore names for risk aggregation.
const (
	FactorIncomeVerification  = "income_verification"
	FactorCreditHistory       = "credit_history"
	FactorDebtToIncome        = "debt_to_income"
	FactorEmploymentStability = "employment_stability"
	FactorCollateralValue     = "collateral_value"
)

// RiskFactors is the input to risk aggregation. Subscores are named values
// in [0,1]. Weights are optional; when absent every present subscore weighs
// equally. Positive and negative are display labels passed through untouched.
type RiskFactors struct {
	Subscores map[string]float64 `json:"subscores"`
	Weights   map[string]float64 `json:"weights,omitempty"`
	Positive  []string           `json:"positive"`
	Negative  []string           `json:"negative"`
}

// RiskAnalysis is the aggregated output consumed by the external approval
// workflow. The engine scores; it never decides approval.
type RiskAnalysis struct {
	Score           float64   `json:"score"`
	Level           RiskLevel `json:"risk_level"`
	Positive        []string  `json:"positive"`
	Negative        []string  `json:"negative"`
	Recommendations []string  `json:"recommendations"`
}
