// Package testutil provides assertion helpers and schedule fixtures for
// engine tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"shiftbox/internal/models"
)

// counter provides unique entry ids across fixtures within a test run.
var counter atomic.Int64

func nextID() string {
	return fmt.Sprintf("entry-%04d", counter.Add(1))
}

// D parses a decimal literal, panicking on malformed input. Test-only.
func D(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// DPtr returns a pointer to the parsed decimal.
func DPtr(value string) *decimal.Decimal {
	d := D(value)
	return &d
}

// TierPtr returns a pointer to the given risk tier.
func TierPtr(tier models.RiskTier) *models.RiskTier {
	return &tier
}

// PendingEntry builds a pending installment due on the given date.
func PendingEntry(number int, due time.Time, total string) models.PaymentScheduleEntry {
	totalD := D(total)
	interest := totalD.Mul(D("0.2")).Round(2)
	return models.PaymentScheduleEntry{
		ID:                nextID(),
		InstallmentNumber: number,
		DueDate:           due,
		PrincipalAmount:   totalD.Sub(interest),
		InterestAmount:    interest,
		TotalAmount:       totalD,
		Status:            models.PaymentStatusPending,
	}
}

// PaidEntry builds a settled installment.
func PaidEntry(number int, due time.Time, total, paid string, paidDate time.Time) models.PaymentScheduleEntry {
	entry := PendingEntry(number, due, total)
	entry.Status = models.PaymentStatusPaid
	entry.PaidAmount = DPtr(paid)
	entry.PaidDate = &paidDate
	return entry
}

// OverdueEntry builds an installment stored as overdue with a late fee.
func OverdueEntry(number int, due time.Time, total, lateFee string) models.PaymentScheduleEntry {
	entry := PendingEntry(number, due, total)
	entry.Status = models.PaymentStatusOverdue
	entry.LateFee = DPtr(lateFee)
	return entry
}
