package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/redwood-labs/expense-tracker/internal/storage"
	"github.com/redwood-labs/expense-tracker/internal/storage/expensetable"
)

// ErrNothingToUpdate is returned when an expense patch touches no fields.
var ErrNothingToUpdate = errors.New("nothing to update")

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// CreateExpense stores a new expense under the user's partition and returns
// the full stored record. The ID, month and creation timestamp are generated
// here, never taken from the caller.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, create ExpenseCreate) (*Expense, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	expense := Expense{
		ExpenseID: id.String(),
		Category:  create.Category,
		Amount:    create.Amount,
		Date:      create.Date,
		Month:     MonthOf(create.Date),
		Note:      create.Note,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	item := &expensetable.ExpenseItem{
		UserID:    userID,
		ExpenseID: expense.ExpenseID,
		Category:  expense.Category,
		Amount:    expensetable.Decimal{Decimal: expense.Amount},
		Date:      expense.Date,
		Month:     expense.Month,
		Note:      expense.Note,
		CreatedAt: expense.CreatedAt,
	}

	if err := s.storage.Items.PutExpense(ctx, item); err != nil {
		return nil, err
	}

	return &expense, nil
}

// ListExpenses returns all of the user's expenses, newest date first with
// creation time as the tie-breaker. The storage scan order is not guaranteed,
// so ordering is fixed here.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID string) ([]Expense, error) {
	items, err := s.storage.Items.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, len(items))
	for i, item := range items {
		expenses[i] = Expense{
			ExpenseID: item.ExpenseID,
			Category:  item.Category,
			Amount:    item.Amount.Decimal,
			Date:      item.Date,
			Month:     item.Month,
			Note:      item.Note,
			CreatedAt: item.CreatedAt,
		}
	}

	// Both fields are fixed-width strings, so lexicographic order is
	// chronological order.
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date != expenses[j].Date {
			return expenses[i].Date > expenses[j].Date
		}
		return expenses[i].CreatedAt > expenses[j].CreatedAt
	})

	return expenses, nil
}

// UpdateExpense applies a partial update to an expense. When the date
// changes, the month is re-derived and written in the same storage call.
// There is no existence check: patching a missing record is accepted as a
// storage-level no-op.
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID string, expenseID string, patch ExpensePatch) error {
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}

	update := &expensetable.ExpenseUpdate{
		Category: patch.Category,
		Amount:   patch.Amount,
		Note:     patch.Note,
	}
	if patch.Date != nil {
		month := MonthOf(*patch.Date)
		update.Date = patch.Date
		update.Month = &month
	}

	return s.storage.Items.UpdateExpense(ctx, userID, expenseID, update)
}

// DeleteExpense removes an expense. Deleting an ID that does not exist
// succeeds; the operation is idempotent.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	return s.storage.Items.DeleteExpense(ctx, userID, expenseID)
}
