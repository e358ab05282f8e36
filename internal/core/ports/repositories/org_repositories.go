package repositories

import (
	"context"

	"github.com/velstra/spendboard/internal/core/domain"
)

// SectorRepositoryFacade defines data access for sectors.
type SectorRepositoryFacade interface {
	SaveSector(ctx context.Context, sector domain.Sector) error
	UpdateSector(ctx context.Context, sector domain.Sector) error
	FindSectorByID(ctx context.Context, sectorID string) (*domain.Sector, error)
	ListSectors(ctx context.Context) ([]domain.Sector, error)
}

// BranchReader defines read operations for branch data; the projection
// service needs only this slice of the facade.
type BranchReader interface {
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches returns every branch, optionally restricted to one sector
	// (empty sectorID means all).
	ListBranches(ctx context.Context, sectorID string) ([]domain.Branch, error)
}

// BranchRepositoryFacade defines data access for branches.
type BranchRepositoryFacade interface {
	BranchReader
	SaveBranch(ctx context.Context, branch domain.Branch) error
	UpdateBranch(ctx context.Context, branch domain.Branch) error
}

// SupplierRepositoryFacade defines data access for suppliers.
type SupplierRepositoryFacade interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}
