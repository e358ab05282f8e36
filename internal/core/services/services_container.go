package services

import (
	portsrepo "github.com/velstra/spendboard/internal/core/ports/repositories"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the user service first; it doubles as the role authorizer
	// the other services depend on.
	container.User = NewUserService(repos.UserRepo)
	authorizer := container.User.(portssvc.RoleAuthorizerSvc)

	container.Contract = NewContractService(
		repos.ContractRepo,
		WithContractRoleAuthorizer(authorizer),
	)
	container.Expense = NewExpenseService(
		repos.ExpenseRepo,
		WithExpenseRoleAuthorizer(authorizer),
	)
	container.Projection = NewProjectionService(
		repos.ContractRepo,
		repos.ExpenseRepo,
		repos.BranchRepo,
		WithProjectionRoleAuthorizer(authorizer),
	)

	container.Sector = NewSectorService(repos.SectorRepo, authorizer)
	container.Branch = NewBranchService(repos.BranchRepo, repos.SectorRepo, authorizer)
	container.Supplier = NewSupplierService(repos.SupplierRepo, authorizer)
	container.Preset = NewPresetService(repos.PresetRepo)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, container.User)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ContractSvcFacade = (*contractService)(nil)
	_ portssvc.ExpenseSvcFacade  = (*expenseService)(nil)
	_ portssvc.ProjectionService = (*projectionService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
)
