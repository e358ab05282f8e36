package services

import (
	"context"
	"time"

	"github.com/velstra/spendboard/internal/core/domain"
)

// ProjectionService defines operations for the allocation reports: budget
// projections and per-expense branch shares. Every call recomputes from the
// full contract and expense history; no state is kept between calls.
type ProjectionService interface {
	// BudgetProjection prorates every contract's unspent remainder across
	// the reporting window, split into overdue and future amounts.
	// sectorID may be domain.SectorAll or empty for all sectors.
	BudgetProjection(ctx context.Context, from, to time.Time, sectorID string, userID string) (*domain.BudgetProjection, error)

	// ExpenseBranchShares attributes one expense's amount to branches within
	// the reporting window.
	ExpenseBranchShares(ctx context.Context, expenseID string, from, to time.Time, sectorID string, userID string) (*domain.BranchShareBreakdown, error)
}
