package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
)

// SalaryComponentReader defines read operations for the salary component catalog
type SalaryComponentReader interface {
	// FindSalaryComponentByID retrieves a catalog component by its unique identifier.
	FindSalaryComponentByID(ctx context.Context, componentID string) (*domain.SalaryComponent, error)

	// FindSalaryComponentsByIDs retrieves multiple catalog components keyed by ID.
	FindSalaryComponentsByIDs(ctx context.Context, componentIDs []string) (map[string]domain.SalaryComponent, error)

	// ListSalaryComponents retrieves catalog components matching the filter.
	ListSalaryComponents(ctx context.Context, filter domain.ComponentFilter) ([]domain.SalaryComponent, error)

	// CountComponentReferences returns how many employee assignments reference the component.
	CountComponentReferences(ctx context.Context, componentID string) (int, error)
}

// SalaryComponentWriter defines write operations for the salary component catalog
type SalaryComponentWriter interface {
	// SaveSalaryComponent persists a new catalog component.
	SaveSalaryComponent(ctx context.Context, component domain.SalaryComponent) error

	// UpdateSalaryComponent overwrites an existing catalog component.
	UpdateSalaryComponent(ctx context.Context, component domain.SalaryComponent) error

	// DeactivateSalaryComponent marks a component inactive, keeping it for historical payslips.
	DeactivateSalaryComponent(ctx context.Context, componentID string, userID string, now time.Time) error

	// DeleteSalaryComponent physically removes an unreferenced component.
	DeleteSalaryComponent(ctx context.Context, componentID string) error
}

// SalaryComponentRepositoryFacade combines all salary component repository interfaces
type SalaryComponentRepositoryFacade interface {
	SalaryComponentReader
	SalaryComponentWriter
}
