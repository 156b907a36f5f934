package services

import (
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	decoder portssvc.RosterDecoder,
	tracker portssvc.EventTracker,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.SalaryComponent = NewSalaryComponentService(repos.SalaryComponentRepo)
	container.Compensation = NewCompensationService(repos.SalaryComponentRepo)

	// The quota gate is shared so single creates and roster imports see the same limit
	container.Quota = NewQuotaService(repos.EmployeeRepo, cfg.EmployeePlanLimit)
	container.Employee = NewEmployeeService(
		repos.EmployeeRepo,
		WithCatalogReader(repos.SalaryComponentRepo),
		WithQuotaGate(container.Quota),
	)

	importOptions := []RosterImportOption{}
	if tracker != nil {
		importOptions = append(importOptions, WithEventTracker(tracker))
	}
	container.RosterImport = NewRosterImportService(
		decoder,
		NewRosterValidator(),
		container.Quota,
		container.Employee,
		importOptions...,
	)

	return container
}
