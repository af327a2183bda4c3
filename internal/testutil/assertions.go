package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "shiftbox/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDecimalEqual fails unless got equals the decimal encoded in want.
func AssertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// AssertDecimalWithinCents fails unless got is within the given number of
// cents of want. Used for totals that carry accumulated rounding.
func AssertDecimalWithinCents(t *testing.T, want string, got decimal.Decimal, cents int64) {
	t.Helper()

	tolerance := decimal.New(cents, -2)
	diff := got.Sub(decimal.RequireFromString(want)).Abs()
	if diff.GreaterThan(tolerance) {
		t.Errorf("expected %s within %d cents, got %s (off by %s)", want, cents, got, diff)
	}
}
