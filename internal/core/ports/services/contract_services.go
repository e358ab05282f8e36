package services

import (
	"context"

	"github.com/velstra/spendboard/internal/core/domain"
	"github.com/velstra/spendboard/internal/dto"
)

// ContractReaderSvc defines read operations for contracts
type ContractReaderSvc interface {
	// GetContractByID retrieves a contract with its line items.
	GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	// ListContracts retrieves a paginated list of contracts.
	ListContracts(ctx context.Context, limit, offset int) ([]domain.Contract, error)
}

// ContractWriterSvc defines write operations for contracts
type ContractWriterSvc interface {
	// CreateContract creates a new contract with its line items.
	CreateContract(ctx context.Context, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, error)

	// UpdateContract updates a contract and replaces its line items.
	UpdateContract(ctx context.Context, contractID string, req dto.UpdateContractRequest, updaterUserID string) (*domain.Contract, error)

	// DeleteContract marks a contract as deleted (soft delete).
	DeleteContract(ctx context.Context, contractID string, requestingUserID string) error
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}
