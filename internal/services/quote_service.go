package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"shiftbox/internal/cache"
	"shiftbox/internal/config"
	apperrors "shiftbox/internal/errors"
	"shiftbox/internal/logger"
	"shiftbox/internal/models"
	"shiftbox/internal/validator"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// quoteService computes loan quotes and amortization schedules.
type quoteService struct {
	cfg   *config.Config
	rates RateServicer
	cache cache.QuoteCache
}

// NewQuoteService creates a new QuoteServicer. The cache may be nil, in
// which case every quote is computed fresh.
func NewQuoteService(cfg *config.Config, rates RateServicer, quoteCache cache.QuoteCache) QuoteServicer {
	return &quoteService{cfg: cfg, rates: rates, cache: quoteCache}
}

// Quote computes the fixed installment, totals, fee breakdown and full
// payment schedule for the given principal, term and monthly rate (percent).
// All monetary outputs are rounded half-up to cents; the final installment
// absorbs rounding drift so principal portions sum exactly to the principal.
func (s *quoteService) Quote(principal decimal.Decimal, termMonths int, monthlyRatePercent decimal.Decimal, issuedAt time.Time) (*models.LoanQuote, error) {
	if principal.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal must be greater than zero")
	}
	if termMonths < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "term must be at least one month")
	}
	if monthlyRatePercent.Sign() < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly rate cannot be negative")
	}

	term := decimal.NewFromInt(int64(termMonths))
	rate := monthlyRatePercent.Div(hundred)

	var payment decimal.Decimal
	if rate.IsZero() {
		// Straight-line repayment; the annuity formula divides by zero here.
		payment = principal.Div(term).Round(2)
	} else {
		// PMT = P * r * (1+r)^n / ((1+r)^n - 1)
		factor := one.Add(rate).Pow(term)
		payment = principal.Mul(rate).Mul(factor).Div(factor.Sub(one)).Round(2)
	}

	totalAmount := payment.Mul(term)
	totalInterest := totalAmount.Sub(principal)

	schedule := make([]models.InstallmentPlan, 0, termMonths)
	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := balance.Mul(rate).Round(2)

		var principalPortion decimal.Decimal
		if month == termMonths {
			// Residual cents from rounding land on the last installment.
			principalPortion = balance
		} else {
			principalPortion = payment.Sub(interest)
			if principalPortion.GreaterThan(balance) {
				principalPortion = balance
			}
		}

		balance = balance.Sub(principalPortion)
		if balance.Sign() < 0 {
			balance = decimal.Zero
		}

		schedule = append(schedule, models.InstallmentPlan{
			Month:            month,
			DueDate:          issuedAt.AddDate(0, month, 0),
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			Total:            principalPortion.Add(interest),
			RemainingBalance: balance,
		})
	}

	return &models.LoanQuote{
		Principal:      principal,
		TermMonths:     termMonths,
		MonthlyRate:    monthlyRatePercent,
		MonthlyPayment: payment,
		TotalAmount:    totalAmount,
		TotalInterest:  totalInterest,
		Fees:           s.feeBreakdown(principal),
		Schedule:       schedule,
	}, nil
}

// QuoteLoan validates the request against configured loan limits, resolves
// the risk-adjusted rate and returns a quote, served from cache when an
// identical request was quoted recently.
func (s *quoteService) QuoteLoan(ctx context.Context, req models.LoanRequest, issuedAt time.Time) (*models.LoanQuote, error) {
	if req.Principal.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal must be greater than zero")
	}
	if err := validator.Get().Struct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	if req.Principal.LessThan(s.cfg.MinPrincipal) || req.Principal.GreaterThan(s.cfg.MaxPrincipal) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("principal must be between %s and %s", s.cfg.MinPrincipal, s.cfg.MaxPrincipal))
	}
	if req.TermMonths > s.cfg.MaxTermMonths {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("term cannot exceed %d months", s.cfg.MaxTermMonths))
	}

	rate := s.rates.ResolveRate(req.Purpose, req.RiskTier)

	key := quoteCacheKey(req, rate, issuedAt)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached models.LoanQuote
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			logger.Get().Warnw("discarding undecodable cached quote", "key", key)
		}
	}

	quote, err := s.Quote(req.Principal, req.TermMonths, rate, issuedAt)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cfg.QuoteCacheTTL); err != nil {
				// Cache failures never fail the quote.
				logger.Get().Warnw("failed to cache quote", "key", key, "error", err)
			}
		}
	}

	return quote, nil
}

func (s *quoteService) feeBreakdown(principal decimal.Decimal) models.FeeBreakdown {
	origination := principal.Mul(s.cfg.OriginationFeeRate).Round(2)
	processing := s.cfg.ProcessingFee.Round(2)
	insurance := principal.Mul(s.cfg.InsuranceFeeRate).Round(2)

	return models.FeeBreakdown{
		OriginationFee: origination,
		ProcessingFee:  processing,
		InsuranceFee:   insurance,
		TotalFees:      origination.Add(processing).Add(insurance),
	}
}

// quoteCacheKey builds a deterministic key for a quote request. The issue
// date participates because it anchors the schedule's due dates.
func quoteCacheKey(req models.LoanRequest, rate decimal.Decimal, issuedAt time.Time) string {
	tier := "none"
	if req.RiskTier != nil {
		tier = string(*req.RiskTier)
	}
	return fmt.Sprintf("quote:%s:%d:%s:%s:%s:%s",
		req.Principal, req.TermMonths, req.Purpose, tier, rate, issuedAt.Format("2006-01-02"))
}
