package services

import (
	"math"
	"slices"
	"testing"

	"shiftbox/internal/models"
	"shiftbox/internal/testutil"
)

func TestAggregateRisk(t *testing.T) {
	svc := NewRiskService(testutil.TestConfig())

	t.Run("equal_weighting_by_default", func(t *testing.T) {
		analysis, err := svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{
				models.FactorIncomeVerification: 0.8,
				models.FactorCreditHistory:      0.6,
			},
		})
		testutil.AssertNoError(t, err)

		if math.Abs(analysis.Score-0.7) > 1e-9 {
			t.Errorf("expected score 0.7, got %v", analysis.Score)
		}
		if analysis.Level != models.RiskLevelLow {
			t.Errorf("expected low at the 0.7 boundary, got %s", analysis.Level)
		}
	})

	t.Run("explicit_weights", func(t *testing.T) {
		analysis, err := svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{
				models.FactorCreditHistory: 0.9,
				models.FactorDebtToIncome:  0.3,
			},
			Weights: map[string]float64{
				models.FactorCreditHistory: 3,
				models.FactorDebtToIncome:  1,
			},
		})
		testutil.AssertNoError(t, err)

		// (3*0.9 + 1*0.3) / 4
		if math.Abs(analysis.Score-0.75) > 1e-9 {
			t.Errorf("expected score 0.75, got %v", analysis.Score)
		}
	})

	t.Run("deployment_weights_from_config", func(t *testing.T) {
		cfg := testutil.TestConfig()
		cfg.RiskWeights = map[string]float64{models.FactorCreditHistory: 1}
		weighted := NewRiskService(cfg)

		analysis, err := weighted.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{
				models.FactorCreditHistory: 0.4,
				models.FactorDebtToIncome:  1.0,
			},
		})
		testutil.AssertNoError(t, err)

		if math.Abs(analysis.Score-0.4) > 1e-9 {
			t.Errorf("expected config weights to apply, got score %v", analysis.Score)
		}
	})

	t.Run("level_bands", func(t *testing.T) {
		cases := []struct {
			score float64
			want  models.RiskLevel
		}{
			{0.95, models.RiskLevelLow},
			{0.70, models.RiskLevelLow},
			{0.69, models.RiskLevelMedium},
			{0.50, models.RiskLevelMedium},
			{0.49, models.RiskLevelHigh},
			{0.10, models.RiskLevelHigh},
		}
		for _, tc := range cases {
			analysis, err := svc.AggregateRisk(models.RiskFactors{
				Subscores: map[string]float64{models.FactorCreditHistory: tc.score},
			})
			testutil.AssertNoError(t, err)
			if analysis.Level != tc.want {
				t.Errorf("score %v: expected %s, got %s", tc.score, tc.want, analysis.Level)
			}
		}
	})

	t.Run("factor_labels_pass_through", func(t *testing.T) {
		positive := []string{"Valores dentro do limite", "Perfil compatível"}
		negative := []string{"Primeiro empréstimo"}

		analysis, err := svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{models.FactorEmploymentStability: 0.8},
			Positive:  positive,
			Negative:  negative,
		})
		testutil.AssertNoError(t, err)

		if !slices.Equal(analysis.Positive, positive) || !slices.Equal(analysis.Negative, negative) {
			t.Errorf("expected factor labels unchanged, got %+v / %+v", analysis.Positive, analysis.Negative)
		}
	})

	t.Run("recommendations", func(t *testing.T) {
		low, err := svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{models.FactorCreditHistory: 0.9},
		})
		testutil.AssertNoError(t, err)
		if len(low.Recommendations) != 3 {
			t.Errorf("expected base checklist only, got %v", low.Recommendations)
		}

		high, err := svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{
				models.FactorCreditHistory:   0.2,
				models.FactorCollateralValue: 0.3,
			},
		})
		testutil.AssertNoError(t, err)
		if !slices.Contains(high.Recommendations, "Solicitar garantias adicionais") {
			t.Errorf("expected high risk recommendation, got %v", high.Recommendations)
		}
		if !slices.Contains(high.Recommendations, "Reavaliar valor da garantia oferecida") {
			t.Errorf("expected collateral recommendation, got %v", high.Recommendations)
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		_, err := svc.AggregateRisk(models.RiskFactors{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{models.FactorCreditHistory: 1.2},
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{models.FactorCreditHistory: 0.8},
			Weights:   map[string]float64{models.FactorDebtToIncome: 1},
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.AggregateRisk(models.RiskFactors{
			Subscores: map[string]float64{models.FactorCreditHistory: 0.8},
			Weights:   map[string]float64{models.FactorCreditHistory: -1},
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
