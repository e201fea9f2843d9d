package domain

import (
	"github.com/shopspring/decimal"
)

// Category names recognized by the reporting views. Free-text categories are
// tolerated on stored expenses; reporting buckets a missing category as Other.
const (
	CategoryFood          = "Food"
	CategoryEntertainment = "Entertainment"
	CategoryTravel        = "Travel"
	CategoryOther         = "Other"
)

// Expense represents one recorded outflow from the wallet. Expenses are
// replaced wholesale on edit; the ID is assigned once and never changes.
type Expense struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// TotalExpenses sums the price of every expense currently recorded.
func TotalExpenses(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Price)
	}
	return total
}
