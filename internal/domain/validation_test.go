package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	t.Run("valid title", func(t *testing.T) {
		if err := ValidateTitle("Groceries"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		if !errors.Is(ValidateTitle(""), ErrEmptyTitle) {
			t.Fatal("expected ErrEmptyTitle for empty title")
		}
	})

	t.Run("whitespace-only title rejected", func(t *testing.T) {
		if !errors.Is(ValidateTitle("   "), ErrEmptyTitle) {
			t.Fatal("expected ErrEmptyTitle for whitespace title")
		}
	})

	t.Run("title too long", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxTitleLength+1)
		if !errors.Is(ValidateTitle(tooLong), ErrEmptyTitle) {
			t.Fatal("expected error for oversized title")
		}
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        decimal.Decimal
		expectError bool
	}{
		{name: "integer", raw: "150", want: decimal.NewFromInt(150)},
		{name: "fractional", raw: "12.50", want: decimal.NewFromFloat(12.5)},
		{name: "padded", raw: " 42 ", want: decimal.NewFromInt(42)},
		{name: "zero rejected", raw: "0", expectError: true},
		{name: "negative rejected", raw: "-5", expectError: true},
		{name: "not a number", raw: "abc", expectError: true},
		{name: "empty", raw: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromFloat(0.01)); err != nil {
		t.Fatalf("expected no error for positive amount, got %v", err)
	}

	if !errors.Is(ValidateAmount(decimal.Zero), ErrInvalidAmount) {
		t.Fatal("expected ErrInvalidAmount for zero amount")
	}

	if !errors.Is(ValidateAmount(decimal.NewFromInt(-10)), ErrInvalidAmount) {
		t.Fatal("expected ErrInvalidAmount for negative amount")
	}
}
