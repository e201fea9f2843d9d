package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/usecase"
)

func TestExpenseRequest_ToUseCaseInput(t *testing.T) {
	req := &ExpenseRequest{
		ID:       "exp-1",
		Title:    "Lunch",
		Price:    decimal.NewFromInt(50),
		Category: "Food",
		Date:     "2024-03-01",
	}

	got := req.ToUseCaseInput()
	want := usecase.AddExpenseInput{
		ID:       "exp-1",
		Title:    "Lunch",
		Price:    decimal.NewFromInt(50),
		Category: "Food",
		Date:     "2024-03-01",
	}

	if got.ID != want.ID || got.Title != want.Title || !got.Price.Equal(want.Price) ||
		got.Category != want.Category || got.Date != want.Date {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestAddIncomeRequest_AcceptsNumberAndString(t *testing.T) {
	tests := []struct {
		name string
		body string
		want decimal.Decimal
	}{
		{name: "quoted string", body: `{"amount":"99.5"}`, want: decimal.RequireFromString("99.5")},
		{name: "bare number", body: `{"amount":99.5}`, want: decimal.RequireFromString("99.5")},
		{name: "integer", body: `{"amount":100}`, want: decimal.NewFromInt(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AddIncomeRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !req.Amount.Equal(tt.want) {
				t.Fatalf("expected amount %s, got %s", tt.want, req.Amount)
			}
		})
	}
}
