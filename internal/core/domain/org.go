package domain

// SectorAll is the sentinel sector filter meaning "all sectors".
const SectorAll = "ALL"

// Sector represents an organizational sector (e.g., marketing, operations)
// under which branches, contracts and expenses are grouped.
type Sector struct {
	SectorID    string `json:"sectorID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// Branch represents a physical or organizational branch belonging to a sector.
// Expense amounts are ultimately attributed to branches for per-branch dashboards.
type Branch struct {
	BranchID string `json:"branchID"` // Primary Key (e.g., UUID)
	SectorID string `json:"sectorID"` // FK -> sectors.sector_id
	Name     string `json:"name"`
	City     string `json:"city"` // Optional location hint for the UI
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Supplier represents a vendor contracts are signed with.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	TaxID      string `json:"taxID"` // Optional fiscal identifier
	IsActive   bool   `json:"isActive"`
	AuditFields
}
