package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense row. Line items are loaded separately.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	Description   string          `db:"description"`
	Date          *time.Time      `db:"date"` // Nullable; legacy rows may carry no date
	SectorID      string          `db:"sector_id"`
	BranchID      string          `db:"branch_id"`
	Amount        decimal.Decimal `db:"amount"`
	MultiBranch   bool            `db:"multi_branch"`
	Amortized     bool            `db:"amortized"`
	AmortizeStart *time.Time      `db:"amortize_start"`
	AmortizeEnd   *time.Time      `db:"amortize_end"`
	AuditFields
}

// ExpenseLineItem represents an expense line item row. Branch assignment
// columns mirror the legacy variants; the engine resolves them in priority
// order at read time.
type ExpenseLineItem struct {
	LineItemID         string          `db:"line_item_id"`
	ExpenseID          string          `db:"expense_id"`
	Description        string          `db:"description"`
	Amount             decimal.Decimal `db:"amount"`
	ContractID         string          `db:"contract_id"`
	ContractLineItemID string          `db:"contract_line_item_id"`
	SectorID           string          `db:"sector_id"`
	BranchIDs          []string        `db:"branch_ids"` // text[] column
	Distribution       string          `db:"distribution"`
	AssignedBranchID   string          `db:"assigned_branch_id"`
	BranchID           string          `db:"branch_id"`
}
