package repositories

import (
	"context"
	"time"

	"github.com/velstra/spendboard/internal/core/domain"
)

// ContractReader defines read operations for contract data
type ContractReader interface {
	// FindContractByID retrieves a contract with its line items.
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	// FindContracts retrieves a paginated list of contracts with line items.
	FindContracts(ctx context.Context, limit int, offset int) ([]domain.Contract, error)

	// FindAllContracts retrieves every contract with line items; used by the
	// allocation engine, which always replays the full set.
	FindAllContracts(ctx context.Context) ([]domain.Contract, error)
}

// ContractWriter defines write operations for contract data
type ContractWriter interface {
	// SaveContract persists a new contract together with its line items.
	SaveContract(ctx context.Context, contract domain.Contract) error

	// UpdateContract replaces a contract's fields and line items.
	UpdateContract(ctx context.Context, contract domain.Contract) error
}

// ContractLifecycleManager defines operations for managing contract lifecycle
type ContractLifecycleManager interface {
	// MarkContractDeleted marks a contract as deleted (soft delete).
	MarkContractDeleted(ctx context.Context, contractID string, deletedAt time.Time, deletedBy string) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
	ContractLifecycleManager
}
