package services

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
)

// EmployeeCreator is the creation capability the roster import drives. It returns the
// persisted employee or an error matching apperrors.ErrValidation, ErrQuotaExceeded or
// ErrDuplicate.
type EmployeeCreator interface {
	CreateEmployee(ctx context.Context, employee domain.Employee, userID string) (*domain.Employee, error)
}

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	// GetEmployee retrieves an employee by ID.
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees returns one page of employees and the token of the next page.
	ListEmployees(ctx context.Context, limit int, nextToken string) ([]domain.Employee, string, error)

	// GetEmployeeTotals derives the totals of an employee's current structure.
	GetEmployeeTotals(ctx context.Context, employeeID string) (domain.CompensationTotals, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	EmployeeCreator

	// UpdateEmployee replaces an employee's record, including its compensation.
	UpdateEmployee(ctx context.Context, employeeID string, employee domain.Employee, userID string) (*domain.Employee, error)

	// UpdateCompensation replaces only the employee's compensation structure.
	UpdateCompensation(ctx context.Context, employeeID string, structure domain.CompensationStructure, userID string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
