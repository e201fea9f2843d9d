package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/usecase"
)

// AddIncomeRequest represents a request to credit the wallet. Amount accepts
// both a JSON number and a quoted numeric string.
type AddIncomeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseRequest represents a request to create or update an expense.
type ExpenseRequest struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *ExpenseRequest) ToUseCaseInput() usecase.AddExpenseInput {
	return usecase.AddExpenseInput{
		ID:       r.ID,
		Title:    r.Title,
		Price:    r.Price,
		Category: r.Category,
		Date:     r.Date,
	}
}
