package services

import (
	"fmt"

	"shiftbox/internal/config"
	apperrors "shiftbox/internal/errors"
	"shiftbox/internal/models"
)

// Risk level bands over the aggregated score.
const (
	lowRiskThreshold    = 0.7
	mediumRiskThreshold = 0.5
)

// Reviewer checklist shown with every analysis, plus conditional items.
var baseRecommendations = []string{
	"Verificar documentação completa",
	"Confirmar dados bancários",
	"Validar renda declarada",
}

// riskService aggregates risk factors for the approval workflow. It scores;
// approval itself is decided elsewhere.
type riskService struct {
	cfg *config.Config
}

// NewRiskService creates a new RiskServicer.
func NewRiskService(cfg *config.Config) RiskServicer {
	return &riskService{cfg: cfg}
}

// AggregateRisk folds named subscores into a single score in [0,1] and a
// risk level. Explicit weights (per call, then per deployment) take
// precedence; otherwise every present subscore weighs equally. Positive and
// negative factor labels pass through untouched.
func (s *riskService) AggregateRisk(factors models.RiskFactors) (*models.RiskAnalysis, error) {
	if len(factors.Subscores) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one subscore is required")
	}
	for name, value := range factors.Subscores {
		if value < 0 || value > 1 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("subscore %s must be between 0 and 1", name))
		}
	}

	weights := factors.Weights
	if len(weights) == 0 {
		weights = s.cfg.RiskWeights
	}

	score, err := weightedScore(factors.Subscores, weights)
	if err != nil {
		return nil, err
	}

	analysis := &models.RiskAnalysis{
		Score:    score,
		Level:    levelFor(score),
		Positive: factors.Positive,
		Negative: factors.Negative,
	}
	analysis.Recommendations = recommendationsFor(analysis, factors)
	return analysis, nil
}

// weightedScore normalizes by the total weight of present subscores, so
// weights need not sum to one.
func weightedScore(subscores, weights map[string]float64) (float64, error) {
	if len(weights) == 0 {
		var sum float64
		for _, value := range subscores {
			sum += value
		}
		return clampUnit(sum / float64(len(subscores))), nil
	}

	var sum, weightSum float64
	for name, value := range subscores {
		w, ok := weights[name]
		if !ok {
			continue
		}
		if w < 0 {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("weight for %s cannot be negative", name))
		}
		sum += w * value
		weightSum += w
	}
	if weightSum == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "weights do not cover any provided subscore")
	}
	return clampUnit(sum / weightSum), nil
}

func levelFor(score float64) models.RiskLevel {
	switch {
	case score >= lowRiskThreshold:
		return models.RiskLevelLow
	case score >= mediumRiskThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelHigh
	}
}

func recommendationsFor(analysis *models.RiskAnalysis, factors models.RiskFactors) []string {
	recs := make([]string, len(baseRecommendations))
	copy(recs, baseRecommendations)

	if analysis.Level == models.RiskLevelHigh {
		recs = append(recs, "Solicitar garantias adicionais")
	}
	if collateral, ok := factors.Subscores[models.FactorCollateralValue]; ok && collateral < 0.5 {
		recs = append(recs, "Reavaliar valor da garantia oferecida")
	}
	return recs
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
