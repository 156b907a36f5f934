package services

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
)

// SalaryComponentReaderSvc defines read operations for the salary component catalog
type SalaryComponentReaderSvc interface {
	// GetSalaryComponent retrieves a catalog component by ID.
	GetSalaryComponent(ctx context.Context, componentID string) (*domain.SalaryComponent, error)

	// ListSalaryComponents retrieves catalog components matching the filter.
	ListSalaryComponents(ctx context.Context, filter domain.ComponentFilter) ([]domain.SalaryComponent, error)

	// ListSelectableComponents applies the picker rules for a category: earnings must be
	// active and part of the salary structure, every other category must be active.
	ListSelectableComponents(ctx context.Context, category domain.ComponentCategory) ([]domain.SalaryComponent, error)
}

// SalaryComponentWriterSvc defines write operations for the salary component catalog
type SalaryComponentWriterSvc interface {
	// AddSalaryComponent validates and persists a new catalog component.
	AddSalaryComponent(ctx context.Context, component domain.SalaryComponent, userID string) (*domain.SalaryComponent, error)

	// UpdateSalaryComponent replaces a component. Once referenced by an employee only
	// NameInPayslip may change. Flags left unset in the request keep their stored value.
	UpdateSalaryComponent(ctx context.Context, componentID string, req dto.SalaryComponentRequest, userID string) (*domain.SalaryComponent, error)

	// RemoveSalaryComponent deactivates a referenced component or deletes an unreferenced
	// one. It reports whether the component was kept as inactive.
	RemoveSalaryComponent(ctx context.Context, componentID string, userID string) (deactivated bool, err error)
}

// SalaryComponentSvcFacade combines all catalog service interfaces
type SalaryComponentSvcFacade interface {
	SalaryComponentReaderSvc
	SalaryComponentWriterSvc
}
