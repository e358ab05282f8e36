package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DistributionSectorWide is the marker value on an expense line item's
// Distribution field requesting the amount be spread across every branch of
// the item's sector.
const DistributionSectorWide = "SECTOR_WIDE"

// Expense represents a single recorded transaction. Expenses accumulate
// against contracts over time and are treated as an immutable log by the
// allocation engine: every report replays the full history.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (e.g., UUID)
	Description string          `json:"description"`
	Date        *time.Time      `json:"date,omitempty"` // Transaction date; may be absent in legacy data
	SectorID    string          `json:"sectorID"`       // Optional FK -> sectors.sector_id
	BranchID    string          `json:"branchID"`       // Optional FK -> branches.branch_id
	Amount      decimal.Decimal `json:"amount"`

	// MultiBranch marks expenses whose cost is distributed across branches.
	MultiBranch bool `json:"multiBranch"`

	// Amortized expenses spread their cost evenly across the amortization
	// date range instead of being recognized on the transaction date.
	Amortized     bool       `json:"amortized"`
	AmortizeStart *time.Time `json:"amortizeStart,omitempty"`
	AmortizeEnd   *time.Time `json:"amortizeEnd,omitempty"`

	LineItems []ExpenseLineItem `json:"lineItems"`
	AuditFields
}

// ExpenseLineItem is a slice of an expense, optionally tied to a contract or
// a specific contract line item, with its own branch assignment. Branch
// assignment may be an explicit id list, a raw comma-separated legacy value,
// a single id, or the sector-wide distribution marker.
type ExpenseLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Optional; derivable from position
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`

	ContractID         string `json:"contractID"`         // Optional FK -> contracts.contract_id
	ContractLineItemID string `json:"contractLineItemID"` // Optional FK -> contract line item

	SectorID string `json:"sectorID"` // Optional; falls back to the expense's sector

	// Branch assignment variants, consulted in priority order by the
	// branch share calculator.
	BranchIDs        []string `json:"branchIDs,omitempty"`    // Explicit list
	Distribution     string   `json:"distribution,omitempty"` // Comma-separated legacy value or DistributionSectorWide
	AssignedBranchID string   `json:"assignedBranchID,omitempty"`
	BranchID         string   `json:"branchID,omitempty"` // The item's own branch field
}

// EffectiveSectorID returns the line item's sector, falling back to the
// parent expense's sector when the item carries none.
func (li ExpenseLineItem) EffectiveSectorID(parent Expense) string {
	if li.SectorID != "" {
		return li.SectorID
	}
	return parent.SectorID
}
