package domain

import "errors"

var (
	// Wallet errors
	ErrInsufficientBalance = errors.New("expense price exceeds wallet balance")

	// Validation errors
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrEmptyTitle    = errors.New("expense title cannot be empty")
)
