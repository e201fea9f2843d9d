package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
)

type reportServiceStub struct {
	reportFn func() []domain.CategorySummary
}

func (s *reportServiceStub) Report() []domain.CategorySummary {
	return s.reportFn()
}

func TestReportHandler_Categories(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		reportFn: func() []domain.CategorySummary {
			return []domain.CategorySummary{
				{Category: domain.CategoryEntertainment, Total: decimal.NewFromInt(150), Color: "#8e44ad"},
				{Category: domain.CategoryFood, Total: decimal.NewFromInt(50), Color: "#f39c12"},
			}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/categories", nil)
	rec := httptest.NewRecorder()

	handler.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CategoryReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].Category != domain.CategoryEntertainment {
		t.Fatalf("expected Entertainment first, got %s", resp.Categories[0].Category)
	}
	if resp.Categories[0].Color != "#8e44ad" {
		t.Fatalf("expected color preserved, got %s", resp.Categories[0].Color)
	}
}

func TestReportHandler_Categories_Empty(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		reportFn: func() []domain.CategorySummary { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/categories", nil)
	rec := httptest.NewRecorder()

	handler.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.CategoryReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Categories) != 0 {
		t.Fatalf("expected empty report, got %d categories", len(resp.Categories))
	}
}
