package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdmissionOutcome says whether a withdrawal is serviced now or deferred.
type AdmissionOutcome string

const (
	AdmissionImmediate AdmissionOutcome = "immediate"
	AdmissionQueued    AdmissionOutcome = "queued"
)

// QueueReason explains why a withdrawal was queued. When both causes hold,
// low liquidity is reported: it is the systemic one.
type QueueReason string

const (
	ReasonLowLiquidity        QueueReason = "low_liquidity"
	ReasonLargeRelativeAmount QueueReason = "large_relative_amount"
)

// WithdrawalRequest is the transient input to admission control.
// PoolLiquidityRatio expresses the fraction of pool liquidity already
// consumed, not the fraction available.
type WithdrawalRequest struct {
	Amount             decimal.Decimal `json:"amount"`
	AvailableBalance   decimal.Decimal `json:"available_balance"`
	PoolLiquidityRatio float64         `json:"pool_liquidity_ratio"`
}

// AdmissionDecision is the pure admission output; it has no identity.
// Reason is empty for immediate outcomes.
type AdmissionDecision struct {
	Outcome AdmissionOutcome `json:"outcome"`
	Reason  QueueReason      `json:"reason,omitempty"`
}

// QueuedWithdrawal is a withdrawal placed in the liquidity queue.
// Positions are assigned monotonically on enqueue.
type QueuedWithdrawal struct {
	Position            int64           `json:"position"`
	Amount              decimal.Decimal `json:"amount"`
	EnqueuedAt          time.Time       `json:"enqueued_at"`
	EstimatedCompletion time.Time       `json:"estimated_completion"`
}
