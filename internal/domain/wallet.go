package domain

import (
	"github.com/shopspring/decimal"
)

// Wallet holds the single running balance of the tracker.
type Wallet struct {
	Balance decimal.Decimal
}

// ValidateDebit checks whether a new expense of amount fits in the wallet.
// Spending the exact remaining balance is allowed; only amounts strictly
// greater than the balance are rejected.
func (w *Wallet) ValidateDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(w.Balance) {
		return ErrInsufficientBalance
	}
	return nil
}

// ApplyDebit returns the balance after subtracting amount.
func (w *Wallet) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Sub(amount)
}

// ApplyCredit returns the balance after adding amount.
func (w *Wallet) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Add(amount)
}
