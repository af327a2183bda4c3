package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents an installment's lifecycle state.
// Overdue is derived from the due date on every read, never stored as
// stale truth; paid is the only terminal state.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusOverdue       PaymentStatus = "overdue"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
)

// PaymentScheduleEntry is one post-issuance installment, owned by the loan
// contract and mutated only through the schedule service.
type PaymentScheduleEntry struct {
	ID                string           `json:"id"`
	InstallmentNumber int              `json:"installment_number"`
	DueDate           time.Time        `json:"due_date"`
	PrincipalAmount   decimal.Decimal  `json:"principal_amount"`
	InterestAmount    decimal.Decimal  `json:"interest_amount"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	Status            PaymentStatus    `json:"status"`
	PaidAmount        *decimal.Decimal `json:"paid_amount,omitempty"`
	PaidDate          *time.Time       `json:"paid_date,omitempty"`
	LateFee           *decimal.Decimal `json:"late_fee,omitempty"`
	PaymentMethod     string           `json:"payment_method,omitempty"`
	TransactionRef    string           `json:"transaction_ref,omitempty"`
}

// ScheduleSummary aggregates a payment schedule as of a given date.
// NextPayment is the earliest non-paid, non-overdue entry, nil if none.
type ScheduleSummary struct {
	TotalPaid    decimal.Decimal       `json:"total_paid"`
	TotalPending decimal.Decimal       `json:"total_pending"`
	OverdueCount int                   `json:"overdue_count"`
	NextPayment  *PaymentScheduleEntry `json:"next_payment,omitempty"`
}
