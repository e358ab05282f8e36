package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs all pgx-backed repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ContractRepo: newPgxContractRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		SectorRepo:   newPgxSectorRepository(dbPool),
		BranchRepo:   newPgxBranchRepository(dbPool),
		SupplierRepo: newPgxSupplierRepository(dbPool),
		PresetRepo:   newPgxPresetRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		APITokenRepo: newPgxAPITokenRepository(dbPool),
	}
}
