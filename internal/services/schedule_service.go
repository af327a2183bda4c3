package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shiftbox/internal/config"
	apperrors "shiftbox/internal/errors"
	"shiftbox/internal/models"
	"shiftbox/internal/pagination"
)

// scheduleService governs the payment lifecycle of issued loans.
// It holds no schedule state of its own: entries live with the caller, and
// concurrency control over them belongs to the layer that persists them.
type scheduleService struct {
	cfg *config.Config
}

// NewScheduleService creates a new ScheduleServicer.
func NewScheduleService(cfg *config.Config) ScheduleServicer {
	return &scheduleService{cfg: cfg}
}

// IssueSchedule materializes mutable payment entries from a quote's
// projected installments. Every entry starts pending with a fresh UUIDv7.
func (s *scheduleService) IssueSchedule(quote *models.LoanQuote) ([]models.PaymentScheduleEntry, error) {
	if quote == nil || len(quote.Schedule) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quote has no installment schedule")
	}

	entries := make([]models.PaymentScheduleEntry, 0, len(quote.Schedule))
	for _, plan := range quote.Schedule {
		entries = append(entries, models.PaymentScheduleEntry{
			ID:                newEntryID(),
			InstallmentNumber: plan.Month,
			DueDate:           plan.DueDate,
			PrincipalAmount:   plan.PrincipalPortion,
			InterestAmount:    plan.InterestPortion,
			TotalAmount:       plan.Total,
			Status:            models.PaymentStatusPending,
		})
	}
	return entries, nil
}

// EffectiveStatus returns the entry's status as of the given date. Overdue
// is recomputed from the due date on every call; a stored "overdue" whose
// due date has been pushed into the future reads as pending again.
func (s *scheduleService) EffectiveStatus(entry *models.PaymentScheduleEntry, asOf time.Time) models.PaymentStatus {
	switch entry.Status {
	case models.PaymentStatusPaid:
		return models.PaymentStatusPaid
	case models.PaymentStatusPartiallyPaid:
		return models.PaymentStatusPartiallyPaid
	default:
		if truncateToDay(entry.DueDate).Before(truncateToDay(asOf)) {
			return models.PaymentStatusOverdue
		}
		return models.PaymentStatusPending
	}
}

// RecordPayment applies a payment to an installment. A payment covering the
// total amount (plus late fee when the entry is overdue) settles it; a
// smaller one marks it partially paid. Payments on partially paid entries
// accumulate toward the required amount.
func (s *scheduleService) RecordPayment(entry *models.PaymentScheduleEntry, paidAmount decimal.Decimal, paidDate time.Time, method, transactionRef string) error {
	if entry == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "payment entry is required")
	}
	if entry.Status == models.PaymentStatusPaid {
		return apperrors.ErrAlreadySettled
	}
	if paidAmount.Sign() <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "paid amount must be greater than zero")
	}

	required := entry.TotalAmount
	if entry.LateFee != nil {
		required = required.Add(*entry.LateFee)
	} else if s.EffectiveStatus(entry, paidDate) == models.PaymentStatusOverdue {
		if fee := s.cfg.DefaultLateFee; fee.Sign() > 0 {
			required = required.Add(fee)
			entry.LateFee = &fee
		}
	}

	cumulative := paidAmount
	if entry.PaidAmount != nil {
		cumulative = cumulative.Add(*entry.PaidAmount)
	}

	if cumulative.GreaterThanOrEqual(required) {
		entry.Status = models.PaymentStatusPaid
	} else {
		entry.Status = models.PaymentStatusPartiallyPaid
	}
	entry.PaidAmount = &cumulative
	entry.PaidDate = &paidDate
	entry.PaymentMethod = method
	entry.TransactionRef = transactionRef
	return nil
}

// Summarize aggregates a schedule as of the given date. It never mutates
// the entries: overdue is evaluated against asOf, not written back.
func (s *scheduleService) Summarize(entries []models.PaymentScheduleEntry, asOf time.Time) *models.ScheduleSummary {
	today := truncateToDay(asOf)

	summary := &models.ScheduleSummary{
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
	}
	var nextDue time.Time

	for i := range entries {
		entry := &entries[i]

		if entry.Status == models.PaymentStatusPaid {
			if entry.PaidAmount != nil {
				summary.TotalPaid = summary.TotalPaid.Add(*entry.PaidAmount)
			} else {
				summary.TotalPaid = summary.TotalPaid.Add(entry.TotalAmount)
			}
			continue
		}

		pending := entry.TotalAmount
		if entry.LateFee != nil {
			pending = pending.Add(*entry.LateFee)
		}
		summary.TotalPending = summary.TotalPending.Add(pending)

		due := truncateToDay(entry.DueDate)
		if due.Before(today) {
			summary.OverdueCount++
			continue
		}

		// Earliest upcoming installment; ties go to the lowest number.
		if summary.NextPayment == nil || due.Before(nextDue) ||
			(due.Equal(nextDue) && entry.InstallmentNumber < summary.NextPayment.InstallmentNumber) {
			summary.NextPayment = entry
			nextDue = due
		}
	}

	return summary
}

// Page returns one page of schedule entries for display. Schedules run up
// to 600 months, so listings are always paged.
func (s *scheduleService) Page(entries []models.PaymentScheduleEntry, req pagination.PageRequest) pagination.PageResponse[models.PaymentScheduleEntry] {
	return pagination.PageSlice(entries, req)
}

// newEntryID returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the system entropy source fails.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// truncateToDay drops the time-of-day component; due dates compare at
// calendar-day granularity.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
