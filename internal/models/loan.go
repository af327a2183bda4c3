package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanPurpose identifies what the borrower intends to fund. Each purpose
// carries its own base monthly rate.
type LoanPurpose string

const (
	PurposeCapitalGiro  LoanPurpose = "capital_giro"
	PurposeExpansao     LoanPurpose = "expansao"
	PurposeEquipamentos LoanPurpose = "equipamentos"
	PurposeMarketing    LoanPurpose = "marketing"
	PurposeReforma      LoanPurpose = "reforma"
	PurposeOutros       LoanPurpose = "outros"
)

// LoanRequest is the immutable input to request-level quoting.
// RiskTier is optional; without it the purpose's base rate applies.
type LoanRequest struct {
	Principal  decimal.Decimal `json:"principal"`
	TermMonths int             `json:"term_months" validate:"required,min=1"`
	Purpose    LoanPurpose     `json:"purpose" validate:"required,loan_purpose"`
	RiskTier   *RiskTier       `json:"risk_tier,omitempty" validate:"omitempty,risk_tier"`
}

// FeeBreakdown discloses the charges collected alongside a loan. Fees are
// informational: they are never folded into TotalAmount or MonthlyPayment.
type FeeBreakdown struct {
	OriginationFee decimal.Decimal `json:"origination_fee"`
	ProcessingFee  decimal.Decimal `json:"processing_fee"`
	InsuranceFee   decimal.Decimal `json:"insurance_fee"`
	TotalFees      decimal.Decimal `json:"total_fees"`
}

// InstallmentPlan is one row of the pre-issuance projection.
type InstallmentPlan struct {
	Month            int             `json:"month"`
	DueDate          time.Time       `json:"due_date"`
	PrincipalPortion decimal.Decimal `json:"principal"`
	InterestPortion  decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// LoanQuote is the output of the amortization calculator.
// TotalAmount equals MonthlyPayment times the term; TotalInterest equals
// TotalAmount minus the principal. The schedule's principal portions sum
// exactly to the principal, the final installment absorbing rounding drift.
type LoanQuote struct {
	Principal      decimal.Decimal   `json:"principal"`
	TermMonths     int               `json:"term_months"`
	MonthlyRate    decimal.Decimal   `json:"monthly_rate"`
	MonthlyPayment decimal.Decimal   `json:"monthly_payment"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	TotalInterest  decimal.Decimal   `json:"total_interest"`
	Fees           FeeBreakdown      `json:"fees"`
	Schedule       []InstallmentPlan `json:"schedule"`
}
