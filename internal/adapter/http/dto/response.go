package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// BalanceResponse represents the wallet balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ExpenseResponse represents an expense.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		Title:    e.Title,
		Price:    e.Price,
		Category: e.Category,
		Date:     e.Date,
	}
}

// ExpensesFromDomain converts a list of domain expenses.
func ExpensesFromDomain(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ExpenseFromDomain(e)
	}
	return out
}

// ListExpensesResponse represents the expense list, newest first, with the
// summed total.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
	Count    int               `json:"count"`
}

// CreateExpenseResponse carries the stored expense plus the balance after
// the debit.
type CreateExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// StateResponse represents the full ledger state.
type StateResponse struct {
	Balance  decimal.Decimal   `json:"balance"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// StateFromUseCase converts a ledger state to a response.
func StateFromUseCase(s usecase.State) StateResponse {
	return StateResponse{
		Balance:  s.Balance,
		Expenses: ExpensesFromDomain(s.Expenses),
	}
}

// CategorySummaryResponse represents one report bucket.
type CategorySummaryResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Color    string          `json:"color"`
}

// CategoryReportResponse represents the grouped category report. The same
// aggregate backs both the breakdown chart and the top-expenses view.
type CategoryReportResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
}

// ReportFromDomain converts category summaries to a response.
func ReportFromDomain(summaries []domain.CategorySummary) CategoryReportResponse {
	out := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = CategorySummaryResponse{
			Category: s.Category,
			Total:    s.Total,
			Color:    s.Color,
		}
	}
	return CategoryReportResponse{Categories: out}
}
