package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestReportByCategory_Grouping(t *testing.T) {
	expenses := []Expense{
		{ID: "1", Category: CategoryFood, Price: decimal.NewFromInt(10)},
		{ID: "2", Category: CategoryFood, Price: decimal.NewFromInt(5)},
		{ID: "3", Category: "", Price: decimal.NewFromInt(3)},
	}

	report := ReportByCategory(expenses)

	if len(report) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(report))
	}

	if report[0].Category != CategoryFood {
		t.Errorf("expected Food first, got %s", report[0].Category)
	}
	if !report[0].Total.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected Food total 15, got %s", report[0].Total)
	}

	if report[1].Category != CategoryOther {
		t.Errorf("expected Other second, got %s", report[1].Category)
	}
	if !report[1].Total.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected Other total 3, got %s", report[1].Total)
	}
}

func TestReportByCategory_PreferenceOrder(t *testing.T) {
	expenses := []Expense{
		{ID: "1", Category: CategoryOther, Price: decimal.NewFromInt(1)},
		{ID: "2", Category: CategoryTravel, Price: decimal.NewFromInt(2)},
		{ID: "3", Category: CategoryFood, Price: decimal.NewFromInt(3)},
		{ID: "4", Category: CategoryEntertainment, Price: decimal.NewFromInt(4)},
	}

	report := ReportByCategory(expenses)

	want := []string{CategoryEntertainment, CategoryFood, CategoryTravel, CategoryOther}
	for i, cat := range want {
		if report[i].Category != cat {
			t.Errorf("position %d: expected %s, got %s", i, cat, report[i].Category)
		}
	}
}

func TestReportByCategory_UnknownCategorySortsFirst(t *testing.T) {
	// A category outside the preference list ranks -1 in the comparator and
	// lands ahead of every listed category, including Entertainment.
	expenses := []Expense{
		{ID: "1", Category: CategoryEntertainment, Price: decimal.NewFromInt(10)},
		{ID: "2", Category: "Groceries", Price: decimal.NewFromInt(7)},
	}

	report := ReportByCategory(expenses)

	if len(report) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(report))
	}
	if report[0].Category != "Groceries" {
		t.Errorf("expected unknown category first, got %s", report[0].Category)
	}
	if report[1].Category != CategoryEntertainment {
		t.Errorf("expected Entertainment second, got %s", report[1].Category)
	}
}

func TestReportByCategory_ColorsRotate(t *testing.T) {
	expenses := []Expense{
		{ID: "1", Category: CategoryEntertainment, Price: decimal.NewFromInt(1)},
		{ID: "2", Category: CategoryFood, Price: decimal.NewFromInt(1)},
		{ID: "3", Category: CategoryTravel, Price: decimal.NewFromInt(1)},
		{ID: "4", Category: CategoryOther, Price: decimal.NewFromInt(1)},
	}

	report := ReportByCategory(expenses)

	for i, row := range report {
		if row.Color != palette[i%len(palette)] {
			t.Errorf("position %d: expected color %s, got %s", i, palette[i%len(palette)], row.Color)
		}
	}
}

func TestReportByCategory_Empty(t *testing.T) {
	if got := ReportByCategory(nil); len(got) != 0 {
		t.Errorf("expected empty report, got %d buckets", len(got))
	}
}
