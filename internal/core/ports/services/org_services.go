package services

import (
	"context"

	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/dto"
)

// SectorSvcFacade defines operations for sector management
type SectorSvcFacade interface {
	CreateSector(ctx context.Context, req dto.CreateSectorRequest, creatorUserID string) (*domain.Sector, error)
	UpdateSector(ctx context.Context, sectorID string, req dto.UpdateSectorRequest, updaterUserID string) (*domain.Sector, error)
	GetSectorByID(ctx context.Context, sectorID string) (*domain.Sector, error)
	ListSectors(ctx context.Context) ([]domain.Sector, error)
}

// BranchSvcFacade defines operations for branch management
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error)
	UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest, updaterUserID string) (*domain.Branch, error)
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches lists branches, optionally restricted to one sector.
	ListBranches(ctx context.Context, sectorID string) ([]domain.Branch, error)
}

// SupplierSvcFacade defines operations for supplier management
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterUserID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}
