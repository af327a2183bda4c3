package services

import (
	"github.com/shopspring/decimal"

	"shiftbox/internal/models"
)

// Base monthly rates in percent, per loan purpose. This is the product rate
// table, not a tunable: changing it is a pricing decision, not a deployment
// setting.
var purposeBaseRates = map[models.LoanPurpose]decimal.Decimal{
	models.PurposeCapitalGiro:  decimal.RequireFromString("2.5"),
	models.PurposeExpansao:     decimal.RequireFromString("2.8"),
	models.PurposeEquipamentos: decimal.RequireFromString("2.3"),
	models.PurposeMarketing:    decimal.RequireFromString("3.2"),
	models.PurposeReforma:      decimal.RequireFromString("2.7"),
	models.PurposeOutros:       decimal.RequireFromString("3.5"),
}

// Unknown purposes price as "outros". The fallback is deliberate: a new
// purpose rolled out ahead of this table must not quote for free.
var fallbackBaseRate = purposeBaseRates[models.PurposeOutros]

var tierMultipliers = map[models.RiskTier]decimal.Decimal{
	models.TierExcellent: decimal.RequireFromString("0.80"),
	models.TierGood:      decimal.RequireFromString("0.90"),
	models.TierFair:      decimal.RequireFromString("1.00"),
	models.TierPoor:      decimal.RequireFromString("1.20"),
	models.TierVeryPoor:  decimal.RequireFromString("1.50"),
}

// Approval probabilities in percent, shown alongside a simulation.
var approvalProbabilities = map[models.RiskTier]int{
	models.TierExcellent: 95,
	models.TierGood:      85,
	models.TierFair:      70,
	models.TierPoor:      45,
	models.TierVeryPoor:  20,
}

const (
	// Probability shown to borrowers without a credit score.
	noScoreApprovalProbability = 75
	// Probability for a tier outside the known set.
	unknownTierApprovalProbability = 50
)

// rateService resolves risk-adjusted monthly rates.
type rateService struct{}

// NewRateService creates a new RateServicer.
func NewRateService() RateServicer {
	return &rateService{}
}

// ResolveRate returns the monthly rate in percent for the given purpose,
// adjusted by the borrower's risk tier when one is known.
func (s *rateService) ResolveRate(purpose models.LoanPurpose, tier *models.RiskTier) decimal.Decimal {
	base, ok := purposeBaseRates[purpose]
	if !ok {
		base = fallbackBaseRate
	}

	if tier == nil {
		return base
	}

	multiplier, ok := tierMultipliers[*tier]
	if !ok {
		return base
	}
	return base.Mul(multiplier)
}

// ApprovalProbability returns the indicative approval probability in percent
// for the given tier.
func (s *rateService) ApprovalProbability(tier *models.RiskTier) int {
	if tier == nil {
		return noScoreApprovalProbability
	}
	if p, ok := approvalProbabilities[*tier]; ok {
		return p
	}
	return unknownTierApprovalProbability
}

// TierFromScore buckets a raw credit score in [0,1000] into a risk tier.
func (s *rateService) TierFromScore(score int) models.RiskTier {
	switch {
	case score >= 800:
		return models.TierExcellent
	case score >= 700:
		return models.TierGood
	case score >= 600:
		return models.TierFair
	case score >= 400:
		return models.TierPoor
	default:
		return models.TierVeryPoor
	}
}
