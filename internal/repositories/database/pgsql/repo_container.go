package pgsql

import (
	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		FinancialRepo: newPgxFinancialRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
