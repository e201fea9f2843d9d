package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/usecase"
)

// WalletService defines the behavior needed by WalletHandler.
type WalletService interface {
	State() usecase.State
	AddIncome(ctx context.Context, amount decimal.Decimal) usecase.State
}

// WalletHandler handles wallet-related HTTP requests.
type WalletHandler struct {
	ledger WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger WalletService) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// Get returns the current wallet balance.
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	state := h.ledger.State()
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: state.Balance})
}

// AddIncome credits the wallet. A non-positive amount is not an error: the
// ledger ignores it and the unchanged balance is returned, so stale or empty
// form submissions stay harmless.
func (h *WalletHandler) AddIncome(w http.ResponseWriter, r *http.Request) {
	var req dto.AddIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	state := h.ledger.AddIncome(r.Context(), req.Amount)
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: state.Balance})
}
