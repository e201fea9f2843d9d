package usecase

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// State is a point-in-time copy of the ledger: the wallet balance and the
// expense list, newest first.
type State struct {
	Balance  decimal.Decimal  `json:"balance"`
	Expenses []domain.Expense `json:"expenses"`
}

// LedgerUseCase owns the wallet balance and the expense collection. Every
// mutation keeps the running balance consistent with the recorded expenses
// and snapshots the new state to the store, best-effort.
type LedgerUseCase struct {
	mu       sync.Mutex
	wallet   domain.Wallet
	expenses []domain.Expense

	store   SnapshotStore
	idGen   IDGenerator
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewLedgerUseCase creates a LedgerUseCase, restoring state from the store.
// A missing or unreadable snapshot falls back to defaultBalance and an empty
// expense list.
func NewLedgerUseCase(
	ctx context.Context,
	store SnapshotStore,
	idGen IDGenerator,
	logger zerolog.Logger,
	m *metrics.Metrics,
	defaultBalance decimal.Decimal,
) *LedgerUseCase {
	uc := &LedgerUseCase{
		store:   store,
		idGen:   idGen,
		logger:  logger,
		metrics: m,
	}
	uc.restore(ctx, defaultBalance)
	return uc
}

// restore loads the persisted snapshot. Corrupt values are treated the same
// as absent ones: the defaults win and the session proceeds.
func (uc *LedgerUseCase) restore(ctx context.Context, defaultBalance decimal.Decimal) {
	uc.wallet.Balance = defaultBalance

	if raw, err := uc.store.Load(ctx, SnapshotKeyBalance); err != nil {
		uc.logger.Warn().Err(err).Str("key", SnapshotKeyBalance).Msg("failed to load balance snapshot")
	} else if raw != nil {
		var balance decimal.Decimal
		if err := json.Unmarshal(raw, &balance); err != nil {
			uc.logger.Warn().Err(err).Str("key", SnapshotKeyBalance).Msg("discarding unreadable balance snapshot")
		} else {
			uc.wallet.Balance = balance
		}
	}

	if raw, err := uc.store.Load(ctx, SnapshotKeyExpenses); err != nil {
		uc.logger.Warn().Err(err).Str("key", SnapshotKeyExpenses).Msg("failed to load expenses snapshot")
	} else if raw != nil {
		var expenses []domain.Expense
		if err := json.Unmarshal(raw, &expenses); err != nil {
			uc.logger.Warn().Err(err).Str("key", SnapshotKeyExpenses).Msg("discarding unreadable expenses snapshot")
		} else {
			uc.expenses = expenses
		}
	}

	uc.observe("restore", "ok")
}

// AddIncome credits the wallet. Non-positive amounts are ignored without an
// error; the income form treats them as nothing-to-do rather than a failure.
func (uc *LedgerUseCase) AddIncome(ctx context.Context, amount decimal.Decimal) State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if amount.LessThanOrEqual(decimal.Zero) {
		uc.observe("add_income", "ignored")
		return uc.stateLocked()
	}

	uc.wallet.Balance = uc.wallet.ApplyCredit(amount)
	uc.observe("add_income", "ok")
	uc.snapshotLocked(ctx)

	return uc.stateLocked()
}

// AddExpenseInput carries a candidate expense. ID may be empty, in which
// case one is generated; a caller-supplied ID is kept as-is.
type AddExpenseInput struct {
	ID       string
	Title    string
	Price    decimal.Decimal
	Category string
	Date     string
}

// AddExpense records a new expense at the front of the list and debits the
// wallet. It fails with domain.ErrInsufficientBalance when the price exceeds
// the current balance, leaving state untouched so the caller can keep its
// form input.
func (uc *LedgerUseCase) AddExpense(ctx context.Context, in AddExpenseInput) (domain.Expense, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.wallet.ValidateDebit(in.Price); err != nil {
		uc.observe("add_expense", "insufficient_balance")
		return domain.Expense{}, err
	}

	expense := domain.Expense{
		ID:       in.ID,
		Title:    in.Title,
		Price:    in.Price,
		Category: in.Category,
		Date:     in.Date,
	}
	if expense.ID == "" {
		expense.ID = uc.idGen.Generate()
	}

	// Newest first, regardless of the expense date.
	uc.expenses = append([]domain.Expense{expense}, uc.expenses...)
	uc.wallet.Balance = uc.wallet.ApplyDebit(in.Price)

	if uc.metrics != nil {
		uc.metrics.ExpenseAmount.Observe(in.Price.InexactFloat64())
	}
	uc.observe("add_expense", "ok")
	uc.snapshotLocked(ctx)

	return expense, nil
}

// EditExpense replaces the stored expense matching updated.ID and adjusts
// the balance by the price difference, both in one step. The delta is taken
// from the previously stored price, applied exactly once. An unknown ID is a
// silent no-op. Unlike AddExpense, no balance bound is checked: an edit may
// drive the balance negative.
func (uc *LedgerUseCase) EditExpense(ctx context.Context, updated domain.Expense) State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := slices.IndexFunc(uc.expenses, func(e domain.Expense) bool { return e.ID == updated.ID })
	if i < 0 {
		uc.observe("edit_expense", "not_found")
		return uc.stateLocked()
	}

	old := uc.expenses[i]
	uc.expenses[i] = updated
	uc.wallet.Balance = uc.wallet.Balance.Add(old.Price).Sub(updated.Price)

	uc.observe("edit_expense", "ok")
	uc.snapshotLocked(ctx)

	return uc.stateLocked()
}

// DeleteExpense removes the expense with the given ID and refunds its full
// price to the wallet. An unknown ID is a silent no-op; the order of the
// remaining expenses is preserved.
func (uc *LedgerUseCase) DeleteExpense(ctx context.Context, id string) State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := slices.IndexFunc(uc.expenses, func(e domain.Expense) bool { return e.ID == id })
	if i < 0 {
		uc.observe("delete_expense", "not_found")
		return uc.stateLocked()
	}

	uc.wallet.Balance = uc.wallet.ApplyCredit(uc.expenses[i].Price)
	uc.expenses = slices.Delete(uc.expenses, i, i+1)

	uc.observe("delete_expense", "ok")
	uc.snapshotLocked(ctx)

	return uc.stateLocked()
}

// State returns a copy of the current ledger state.
func (uc *LedgerUseCase) State() State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stateLocked()
}

// Report aggregates the current expenses by category.
func (uc *LedgerUseCase) Report() []domain.CategorySummary {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return domain.ReportByCategory(uc.expenses)
}

func (uc *LedgerUseCase) stateLocked() State {
	return State{
		Balance:  uc.wallet.Balance,
		Expenses: slices.Clone(uc.expenses),
	}
}

// snapshotLocked writes both snapshot keys. Failures are logged and dropped;
// the in-memory state stays authoritative for the session.
func (uc *LedgerUseCase) snapshotLocked(ctx context.Context) {
	uc.saveKey(ctx, SnapshotKeyBalance, uc.wallet.Balance)
	uc.saveKey(ctx, SnapshotKeyExpenses, uc.expenses)
}

func (uc *LedgerUseCase) saveKey(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("failed to encode snapshot")
		uc.countSnapshot("encode_error")
		return
	}

	if err := uc.store.Save(ctx, key, raw); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("snapshot save failed")
		uc.countSnapshot("error")
		if uc.metrics != nil {
			uc.metrics.SnapshotFailures.Inc()
		}
		return
	}

	uc.countSnapshot("ok")
}

func (uc *LedgerUseCase) countSnapshot(status string) {
	if uc.metrics != nil {
		uc.metrics.SnapshotSaves.WithLabelValues(status).Inc()
	}
}

func (uc *LedgerUseCase) observe(operation, outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.LedgerOperations.WithLabelValues(operation, outcome).Inc()
	uc.metrics.WalletBalance.Set(uc.wallet.Balance.InexactFloat64())
	uc.metrics.ExpensesTracked.Set(float64(len(uc.expenses)))
}
