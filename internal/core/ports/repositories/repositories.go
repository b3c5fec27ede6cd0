package repositories

// RepositoryProvider holds instances of all the application repositories.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	FinancialRepo FinancialRepositoryFacade
	ReportingRepo ReportingRepository
}
