package models

// Sector represents a sector row.
type Sector struct {
	SectorID    string `db:"sector_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// Branch represents a branch row.
type Branch struct {
	BranchID string `db:"branch_id"`
	SectorID string `db:"sector_id"`
	Name     string `db:"name"`
	City     string `db:"city"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// Supplier represents a supplier row.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	TaxID      string `db:"tax_id"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
