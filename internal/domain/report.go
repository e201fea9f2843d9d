package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// categoryOrder is the fixed display preference for report buckets.
var categoryOrder = []string{
	CategoryEntertainment,
	CategoryFood,
	CategoryTravel,
	CategoryOther,
}

// palette holds the chart colors rotated over report rows.
var palette = []string{"#8e44ad", "#f39c12", "#f1c40f", "#2ecc71", "#3498db"}

// CategorySummary is one report bucket: a category, the summed price of its
// expenses, and the display color for charts.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Color    string          `json:"color"`
}

// ReportByCategory groups expenses by category and sums their prices.
// Expenses without a category fall into the Other bucket; a non-empty
// unrecognized category keeps its own bucket. Buckets are ordered by rank in
// categoryOrder, where a category outside the list ranks -1 and therefore
// sorts ahead of every listed one. Colors rotate through the palette by row
// position. The same aggregate backs both the breakdown and top-expenses
// views; there is no separate top-N computation.
func ReportByCategory(expenses []Expense) []CategorySummary {
	totals := make(map[string]decimal.Decimal)
	// First-seen bucket order keeps the stable sort deterministic.
	var buckets []string

	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = CategoryOther
		}
		if _, ok := totals[cat]; !ok {
			buckets = append(buckets, cat)
		}
		totals[cat] = totals[cat].Add(e.Price)
	}

	slices.SortStableFunc(buckets, func(a, b string) int {
		return categoryRank(a) - categoryRank(b)
	})

	out := make([]CategorySummary, len(buckets))
	for i, cat := range buckets {
		out[i] = CategorySummary{
			Category: cat,
			Total:    totals[cat],
			Color:    palette[i%len(palette)],
		}
	}

	return out
}

// categoryRank mirrors an index lookup into categoryOrder: -1 when absent.
func categoryRank(cat string) int {
	return slices.Index(categoryOrder, cat)
}
