package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ContractRepo ContractRepositoryFacade
	ExpenseRepo  ExpenseRepositoryFacade
	SectorRepo   SectorRepositoryFacade
	BranchRepo   BranchRepositoryFacade
	SupplierRepo SupplierRepositoryFacade
	PresetRepo   FilterPresetRepositoryFacade
	UserRepo     UserRepositoryFacade
	APITokenRepo APITokenRepository
}
