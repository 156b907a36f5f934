package pgsql

import (
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalaryComponentRepo: newPgxSalaryComponentRepository(dbPool),
		EmployeeRepo:        newPgxEmployeeRepository(dbPool),
	}
}
