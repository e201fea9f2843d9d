package handler

import (
	"net/http"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Report() []domain.CategorySummary
}

// ReportHandler handles report-related HTTP requests.
type ReportHandler struct {
	ledger ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ledger ReportService) *ReportHandler {
	return &ReportHandler{ledger: ledger}
}

// Categories returns the expense totals grouped by category. Both the
// breakdown chart and the top-expenses view render from this one aggregate.
func (h *ReportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ReportFromDomain(h.ledger.Report()))
}
