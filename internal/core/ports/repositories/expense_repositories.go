package repositories

import (
	"context"
	"time"

	"github.com/velstra/spendboard/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense with its line items.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenses retrieves a paginated list of expenses with line items
	// using token-based pagination ordered by date then creation time.
	FindExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)

	// FindAllExpenses retrieves the full expense history with line items.
	// The allocation engine treats this as an immutable log to replay.
	FindAllExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense together with its line items.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// SaveExpenses persists a batch of expenses in one transaction; used by
	// the legacy-document import.
	SaveExpenses(ctx context.Context, expenses []domain.Expense) error

	// UpdateExpense replaces an expense's fields and line items.
	UpdateExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseLifecycleManager defines operations for managing expense lifecycle
type ExpenseLifecycleManager interface {
	// MarkExpenseDeleted marks an expense as deleted (soft delete).
	MarkExpenseDeleted(ctx context.Context, expenseID string, deletedAt time.Time, deletedBy string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ExpenseLifecycleManager
}
