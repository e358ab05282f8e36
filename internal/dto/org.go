package dto

import "github.com/velstra/spendboard/internal/core/domain"

// CreateSectorRequest defines the data needed to create a sector.
type CreateSectorRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateSectorRequest defines the data allowed for updating a sector.
type UpdateSectorRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// SectorResponse is the API representation of a sector.
type SectorResponse struct {
	SectorID    string `json:"sectorID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// ToSectorResponse converts a domain sector to its API representation.
func ToSectorResponse(s *domain.Sector) SectorResponse {
	return SectorResponse{
		SectorID:    s.SectorID,
		Name:        s.Name,
		Description: s.Description,
		IsActive:    s.IsActive,
	}
}

// ListSectorsResponse wraps the list of sectors.
type ListSectorsResponse struct {
	Sectors []SectorResponse `json:"sectors"`
}

// ToListSectorsResponse converts domain sectors to the list DTO.
func ToListSectorsResponse(sectors []domain.Sector) ListSectorsResponse {
	out := ListSectorsResponse{Sectors: make([]SectorResponse, len(sectors))}
	for i := range sectors {
		out.Sectors[i] = ToSectorResponse(&sectors[i])
	}
	return out
}

// CreateBranchRequest defines the data needed to create a branch.
type CreateBranchRequest struct {
	SectorID string `json:"sectorID" binding:"required"`
	Name     string `json:"name" binding:"required"`
	City     string `json:"city"`
}

// UpdateBranchRequest defines the data allowed for updating a branch.
type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	IsActive *bool   `json:"isActive"`
}

// BranchResponse is the API representation of a branch.
type BranchResponse struct {
	BranchID string `json:"branchID"`
	SectorID string `json:"sectorID"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	IsActive bool   `json:"isActive"`
}

// ToBranchResponse converts a domain branch to its API representation.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID: b.BranchID,
		SectorID: b.SectorID,
		Name:     b.Name,
		City:     b.City,
		IsActive: b.IsActive,
	}
}

// ListBranchesResponse wraps the list of branches.
type ListBranchesResponse struct {
	Branches []BranchResponse `json:"branches"`
}

// ToListBranchesResponse converts domain branches to the list DTO.
func ToListBranchesResponse(branches []domain.Branch) ListBranchesResponse {
	out := ListBranchesResponse{Branches: make([]BranchResponse, len(branches))}
	for i := range branches {
		out.Branches[i] = ToBranchResponse(&branches[i])
	}
	return out
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxID"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	TaxID    *string `json:"taxID"`
	IsActive *bool   `json:"isActive"`
}

// SupplierResponse is the API representation of a supplier.
type SupplierResponse struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	TaxID      string `json:"taxID,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ToSupplierResponse converts a domain supplier to its API representation.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		TaxID:      s.TaxID,
		IsActive:   s.IsActive,
	}
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToListSuppliersResponse converts domain suppliers to the list DTO.
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	out := ListSuppliersResponse{Suppliers: make([]SupplierResponse, len(suppliers))}
	for i := range suppliers {
		out.Suppliers[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}
