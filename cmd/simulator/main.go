// Command simulator quotes a loan from the command line and prints the
// resulting schedule summary. It is a developer harness for the engine,
// not a user interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"shiftbox/internal/cache"
	"shiftbox/internal/config"
	"shiftbox/internal/logger"
	"shiftbox/internal/models"
	"shiftbox/internal/services"
)

func main() {
	logger.Init(os.Getenv("SHIFTBOX_ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Simulation error: %v", err)
	}
}

func run() error {
	principalFlag := flag.String("principal", "10000", "loan principal in BRL")
	termFlag := flag.Int("term", 12, "term in months")
	purposeFlag := flag.String("purpose", "capital_giro", "loan purpose")
	tierFlag := flag.String("tier", "", "risk tier (optional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	principal, err := decimal.NewFromString(*principalFlag)
	if err != nil {
		return fmt.Errorf("invalid principal %q: %w", *principalFlag, err)
	}

	req := models.LoanRequest{
		Principal:  principal,
		TermMonths: *termFlag,
		Purpose:    models.LoanPurpose(*purposeFlag),
	}
	if *tierFlag != "" {
		tier := models.RiskTier(*tierFlag)
		req.RiskTier = &tier
	}

	rates := services.NewRateService()
	quotes := services.NewQuoteService(cfg, rates, cache.NewMemoryCache())
	schedules := services.NewScheduleService(cfg)

	now := time.Now()
	quote, err := quotes.QuoteLoan(context.Background(), req, now)
	if err != nil {
		return err
	}

	log := logger.Get()
	log.Infow("loan quoted",
		"principal", quote.Principal.String(),
		"term_months", quote.TermMonths,
		"monthly_rate_pct", quote.MonthlyRate.String(),
		"monthly_payment", quote.MonthlyPayment.String(),
		"total_amount", quote.TotalAmount.String(),
		"total_interest", quote.TotalInterest.String(),
		"total_fees", quote.Fees.TotalFees.String(),
		"approval_probability_pct", rates.ApprovalProbability(req.RiskTier),
	)

	entries, err := schedules.IssueSchedule(quote)
	if err != nil {
		return err
	}

	summary := schedules.Summarize(entries, now)
	log.Infow("schedule issued",
		"installments", len(entries),
		"total_pending", summary.TotalPending.String(),
		"overdue", summary.OverdueCount,
	)
	if summary.NextPayment != nil {
		log.Infow("next payment",
			"installment", summary.NextPayment.InstallmentNumber,
			"due_date", summary.NextPayment.DueDate.Format("2006-01-02"),
			"amount", summary.NextPayment.TotalAmount.String(),
		)
	}
	return nil
}
