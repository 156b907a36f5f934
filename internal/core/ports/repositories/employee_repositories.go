package repositories

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee, including compensation, by ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves up to limit employees ordered by creation time, starting
	// after the cursor when one is given.
	ListEmployees(ctx context.Context, limit int, after *domain.EmployeeCursor) ([]domain.Employee, error)

	// CountEmployees returns the number of employee records counted against the plan.
	CountEmployees(ctx context.Context) (int, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and its component assignments atomically.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee overwrites an employee and replaces its component assignments atomically.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
