package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Contract   ContractSvcFacade
	Expense    ExpenseSvcFacade
	Projection ProjectionService
	Sector     SectorSvcFacade
	Branch     BranchSvcFacade
	Supplier   SupplierSvcFacade
	Preset     FilterPresetSvc
	User       UserSvcFacade
	APIToken   APITokenSvc

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
