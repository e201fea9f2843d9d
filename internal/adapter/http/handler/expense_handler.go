package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// ExpenseService defines the behavior needed by ExpenseHandler.
type ExpenseService interface {
	State() usecase.State
	AddExpense(ctx context.Context, in usecase.AddExpenseInput) (domain.Expense, error)
	EditExpense(ctx context.Context, updated domain.Expense) usecase.State
	DeleteExpense(ctx context.Context, id string) usecase.State
}

// ExpenseHandler handles expense-related HTTP requests.
type ExpenseHandler struct {
	ledger ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(ledger ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// List returns all expenses, newest first.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	state := h.ledger.State()
	writeJSON(w, http.StatusOK, dto.ListExpensesResponse{
		Expenses: dto.ExpensesFromDomain(state.Expenses),
		Total:    domain.TotalExpenses(state.Expenses),
		Count:    len(state.Expenses),
	})
}

// Create records a new expense. Field validation happens here at the
// boundary; the ledger itself only enforces the balance check. A price
// exceeding the balance is reported as a failure so the client can keep its
// form state.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validateExpenseRequest(&req); err != nil {
		writeError(w, mapDomainError(err), "invalid expense", err.Error())
		return
	}

	expense, err := h.ledger.AddExpense(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateExpenseResponse{
		Expense: dto.ExpenseFromDomain(expense),
		Balance: h.ledger.State().Balance,
	})
}

// Update replaces the expense with the ID from the URL. An unknown ID leaves
// the ledger untouched and still answers 200; the client may hold a stale
// list and that is not its fault.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	var req dto.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validateExpenseRequest(&req); err != nil {
		writeError(w, mapDomainError(err), "invalid expense", err.Error())
		return
	}

	state := h.ledger.EditExpense(r.Context(), domain.Expense{
		ID:       id,
		Title:    req.Title,
		Price:    req.Price,
		Category: req.Category,
		Date:     req.Date,
	})

	writeJSON(w, http.StatusOK, dto.StateFromUseCase(state))
}

// Delete removes the expense with the ID from the URL, refunding its price.
// Unknown IDs are a no-op.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	state := h.ledger.DeleteExpense(r.Context(), id)
	writeJSON(w, http.StatusOK, dto.StateFromUseCase(state))
}

func validateExpenseRequest(req *dto.ExpenseRequest) error {
	if err := domain.ValidateTitle(req.Title); err != nil {
		return err
	}
	return domain.ValidateAmount(req.Price)
}
