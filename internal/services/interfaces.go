package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"shiftbox/internal/models"
	"shiftbox/internal/pagination"
)

// RateServicer defines the contract for risk-adjusted rate resolution.
type RateServicer interface {
	ResolveRate(purpose models.LoanPurpose, tier *models.RiskTier) decimal.Decimal
	ApprovalProbability(tier *models.RiskTier) int
	TierFromScore(score int) models.RiskTier
}

// QuoteServicer defines the contract for loan simulation and amortization.
// Quote is the pure calculator; QuoteLoan is the request-level entry point
// that resolves the rate, enforces loan limits and consults the quote cache.
type QuoteServicer interface {
	Quote(principal decimal.Decimal, termMonths int, monthlyRatePercent decimal.Decimal, issuedAt time.Time) (*models.LoanQuote, error)
	QuoteLoan(ctx context.Context, req models.LoanRequest, issuedAt time.Time) (*models.LoanQuote, error)
}

// ScheduleServicer defines the contract for the payment schedule lifecycle.
// It owns every mutation of PaymentScheduleEntry state; the collection
// itself is supplied and stored by the caller.
type ScheduleServicer interface {
	IssueSchedule(quote *models.LoanQuote) ([]models.PaymentScheduleEntry, error)
	EffectiveStatus(entry *models.PaymentScheduleEntry, asOf time.Time) models.PaymentStatus
	RecordPayment(entry *models.PaymentScheduleEntry, paidAmount decimal.Decimal, paidDate time.Time, method, transactionRef string) error
	Summarize(entries []models.PaymentScheduleEntry, asOf time.Time) *models.ScheduleSummary
	Page(entries []models.PaymentScheduleEntry, req pagination.PageRequest) pagination.PageResponse[models.PaymentScheduleEntry]
}

// AdmissionServicer defines the contract for withdrawal admission control.
type AdmissionServicer interface {
	Admit(req models.WithdrawalRequest) (*models.AdmissionDecision, error)
}

// RiskServicer defines the contract for loan decision support.
type RiskServicer interface {
	AggregateRisk(factors models.RiskFactors) (*models.RiskAnalysis, error)
}
