package services

import (
	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.UserRepo, cfg.MaxUsers),
		Ingestion: NewIngestionService(repos.FinancialRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
	}
}
