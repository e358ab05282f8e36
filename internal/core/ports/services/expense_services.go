package services

import (
	"context"

	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense with its line items.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses using token-based
	// pagination; the returned token is nil when no more pages exist.
	ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	// CreateExpense creates a new expense with its line items.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense updates an expense and replaces its line items.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)

	// DeleteExpense marks an expense as deleted (soft delete).
	DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error

	// ImportExpenses normalizes raw legacy documents and persists the
	// resulting canonical expenses in one batch.
	ImportExpenses(ctx context.Context, docs []map[string]any, creatorUserID string) ([]domain.Expense, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
