package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract represents a contract row. Line items are loaded separately.
type Contract struct {
	ContractID  string     `db:"contract_id"`
	Number      string     `db:"number"`
	SupplierID  string     `db:"supplier_id"`
	SignedAt    *time.Time `db:"signed_at"`
	Description string     `db:"description"`
	AuditFields
}

// ContractLineItem represents a contract line item row.
type ContractLineItem struct {
	LineItemID  string          `db:"line_item_id"`
	ContractID  string          `db:"contract_id"`
	SupplierID  string          `db:"supplier_id"` // Empty inherits the contract's supplier
	SectorID    string          `db:"sector_id"`
	BranchID    string          `db:"branch_id"`
	Description string          `db:"description"`
	Value       decimal.Decimal `db:"value"`
	StartDate   *time.Time      `db:"start_date"`
	EndDate     *time.Time      `db:"end_date"`
}
