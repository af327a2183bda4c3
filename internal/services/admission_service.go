package services

import (
	"shiftbox/internal/config"
	apperrors "shiftbox/internal/errors"
	"shiftbox/internal/models"
)

// admissionService decides whether withdrawals are serviced immediately or
// deferred into the liquidity queue.
type admissionService struct {
	cfg *config.Config
}

// NewAdmissionService creates a new AdmissionServicer.
func NewAdmissionService(cfg *config.Config) AdmissionServicer {
	return &admissionService{cfg: cfg}
}

// Admit evaluates a withdrawal request. Invalid requests are rejected
// before any liquidity evaluation. A withdrawal queues when the pool is
// running low or when the amount is large relative to the balance; if both
// hold, low liquidity is the reported reason.
func (s *admissionService) Admit(req models.WithdrawalRequest) (*models.AdmissionDecision, error) {
	if req.Amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRequest, "withdrawal amount must be greater than zero")
	}
	if req.AvailableBalance.Sign() < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRequest, "available balance cannot be negative")
	}
	if req.PoolLiquidityRatio < 0 || req.PoolLiquidityRatio > 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRequest, "pool liquidity ratio must be between 0 and 1")
	}
	if req.Amount.GreaterThan(req.AvailableBalance) {
		return nil, apperrors.ErrInsufficientFunds
	}

	isPoolLow := req.PoolLiquidityRatio > s.cfg.LiquidityQueueThreshold
	isLargeRelativeToBalance := req.Amount.GreaterThan(req.AvailableBalance.Mul(s.cfg.LargeWithdrawalRatio))

	switch {
	case isPoolLow:
		return &models.AdmissionDecision{Outcome: models.AdmissionQueued, Reason: models.ReasonLowLiquidity}, nil
	case isLargeRelativeToBalance:
		return &models.AdmissionDecision{Outcome: models.AdmissionQueued, Reason: models.ReasonLargeRelativeAmount}, nil
	default:
		return &models.AdmissionDecision{Outcome: models.AdmissionImmediate}, nil
	}
}
