package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxTitleLength bounds expense titles.
const MaxTitleLength = 255

// ValidateTitle validates an expense title.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return ErrEmptyTitle
	}

	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrEmptyTitle, MaxTitleLength)
	}

	return nil
}

// ParseAmount is the single coercion point for user-supplied amounts. It
// accepts plain decimal text and rejects anything unparsable or non-positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// ValidateAmount validates an income or expense amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}
