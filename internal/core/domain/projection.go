package domain

import (
	"github.com/shopspring/decimal"
)

// SkippedRecord describes one record the allocation engine omitted and why.
// The engine never fails on malformed input; anomalies surface only here.
type SkippedRecord struct {
	Kind   string `json:"kind"` // e.g. "contractLineItem", "expenseLineItem"
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BudgetProjection is the outcome of prorating every contract's unspent
// remainder across the reporting window: what should already have been spent
// (overdue) and what is still legitimately ahead (future).
type BudgetProjection struct {
	OverdueBySupplier map[string]decimal.Decimal `json:"overdueBySupplier"`
	FutureBySupplier  map[string]decimal.Decimal `json:"futureBySupplier"`
	FutureBySector    map[string]decimal.Decimal `json:"futureBySector"`
	Skipped           []SkippedRecord            `json:"skipped,omitempty"`
}

// BranchShareBreakdown attributes a single expense's amount to branches,
// with per-line-item totals and a nested per-line-item-per-branch view for
// UI drill-down.
type BranchShareBreakdown struct {
	ByBranch         map[string]decimal.Decimal            `json:"byBranch"`
	ByLineItem       map[string]decimal.Decimal            `json:"byLineItem"`
	ByLineItemBranch map[string]map[string]decimal.Decimal `json:"byLineItemBranch"`
	Skipped          []SkippedRecord                       `json:"skipped,omitempty"`
}
