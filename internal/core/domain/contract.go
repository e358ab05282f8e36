package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract represents a signed commitment with a supplier, broken down into
// time-bounded line items. Contracts are read-only from the allocation
// engine's perspective.
type Contract struct {
	ContractID  string             `json:"contractID"` // Primary Key (e.g., UUID)
	Number      string             `json:"number"`     // Human-facing contract number
	SupplierID  string             `json:"supplierID"` // FK -> suppliers.supplier_id
	SignedAt    *time.Time         `json:"signedAt,omitempty"`
	Description string             `json:"description"`
	LineItems   []ContractLineItem `json:"lineItems"`
	AuditFields
}

// ContractLineItem is a sub-commitment within a contract, scoped to a
// supplier/sector/branch, with its own value and validity period.
// The start <= end invariant is not enforced here; downstream calculations
// tolerate reversed or missing dates by skipping the item.
type ContractLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Optional; derivable from position
	ContractID  string          `json:"contractID"` // FK -> contracts.contract_id
	SupplierID  string          `json:"supplierID"` // Empty means inherit the contract's supplier
	SectorID    string          `json:"sectorID"`   // FK -> sectors.sector_id
	BranchID    string          `json:"branchID"`   // Optional FK -> branches.branch_id
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
}

// EffectiveSupplierID returns the line item's supplier, falling back to the
// parent contract's supplier when the item carries none.
func (li ContractLineItem) EffectiveSupplierID(parent Contract) string {
	if li.SupplierID != "" {
		return li.SupplierID
	}
	return parent.SupplierID
}

// TotalValue sums the values of all line items on the contract.
func (c Contract) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.LineItems {
		total = total.Add(li.Value)
	}
	return total
}
