package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/utils/pagination"
	"github.com/SscSPs/hr_payroll_admin/internal/utils/payroll"
	"github.com/google/uuid"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	catalog      portsrepo.SalaryComponentReader
	quota        portssvc.QuotaGate
}

// EmployeeServiceOption is a functional option for configuring the employee service
type EmployeeServiceOption func(*employeeService)

// WithCatalogReader resolves component assignments against the salary component catalog.
func WithCatalogReader(repo portsrepo.SalaryComponentReader) EmployeeServiceOption {
	return func(s *employeeService) {
		s.catalog = repo
	}
}

// WithQuotaGate enforces the plan's employee limit on creation.
func WithQuotaGate(gate portssvc.QuotaGate) EmployeeServiceOption {
	return func(s *employeeService) {
		s.quota = gate
	}
}

// NewEmployeeService creates a new employee service with the provided options
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...EmployeeServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeService{employeeRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure employeeService implements the EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, employee domain.Employee, userID string) (*domain.Employee, error) {
	if err := s.prepare(ctx, &employee); err != nil {
		return nil, err
	}

	if s.quota != nil {
		status, err := s.quota.GetQuotaStatus(ctx)
		if err != nil {
			return nil, err
		}
		if !status.CanAddMore {
			s.LogWarn(ctx, "Employee creation blocked by plan limit",
				slog.Int("limit", status.Limit),
				slog.Int("current_count", status.CurrentCount))
			return nil, fmt.Errorf("%w: %s", apperrors.ErrQuotaExceeded, status.Message)
		}
	}

	now := time.Now()
	employee.EmployeeID = uuid.NewString()
	if employee.EmployeeCode == "" {
		employee.EmployeeCode = "EMP-" + strings.ToUpper(employee.EmployeeID[:8])
	}
	employee.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee",
				slog.String("employee_id", employee.EmployeeID))
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("compensation_kind", string(employee.Compensation.Kind)))
	return &employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee",
				slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit int, nextToken string) ([]domain.Employee, string, error) {
	after, err := pagination.DecodeEmployeeCursor(nextToken)
	if err != nil {
		return nil, "", apperrors.NewValidationError("nextToken", err.Error())
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.Int("limit", limit))
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, pagination.NextEmployeeToken(employees, limit), nil
}

func (s *employeeService) GetEmployeeTotals(ctx context.Context, employeeID string) (domain.CompensationTotals, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return domain.CompensationTotals{}, err
	}
	totals, err := payroll.ComputeTotals(employee.Compensation)
	if err != nil {
		s.LogError(ctx, err, "Stored compensation cannot be totalled",
			slog.String("employee_id", employeeID))
		return domain.CompensationTotals{}, err
	}
	return totals, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, employee domain.Employee, userID string) (*domain.Employee, error) {
	existing, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, &employee); err != nil {
		return nil, err
	}

	employee.EmployeeID = existing.EmployeeID
	if employee.EmployeeCode == "" {
		employee.EmployeeCode = existing.EmployeeCode
	}
	employee.CreatedAt = existing.CreatedAt
	employee.CreatedBy = existing.CreatedBy
	return s.save(ctx, employee, userID)
}

func (s *employeeService) UpdateCompensation(ctx context.Context, employeeID string, structure domain.CompensationStructure, userID string) (*domain.Employee, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	employee.Compensation = structure
	if err := s.prepareCompensation(ctx, employee); err != nil {
		return nil, err
	}
	return s.save(ctx, *employee, userID)
}

func (s *employeeService) save(ctx context.Context, employee domain.Employee, userID string) (*domain.Employee, error) {
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = userID
	if err := s.employeeRepo.UpdateEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update employee",
				slog.String("employee_id", employee.EmployeeID))
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

// prepare normalizes and validates a record before it is written.
func (s *employeeService) prepare(ctx context.Context, employee *domain.Employee) error {
	employee.Gender = strings.ToLower(strings.TrimSpace(employee.Gender))
	employee.Email = strings.TrimSpace(employee.Email)
	if err := employee.ValidateLifecycle(); err != nil {
		return err
	}
	return s.prepareCompensation(ctx, employee)
}

// prepareCompensation validates the structure for its kind and refreshes the statutory
// estimate from the final structure.
func (s *employeeService) prepareCompensation(ctx context.Context, employee *domain.Employee) error {
	switch employee.Compensation.Kind {
	case domain.ComponentCompensationKind:
		structure := domain.NewComponentCompensation(employee.Compensation.Components)
		if err := s.resolveComponents(ctx, structure.Components); err != nil {
			return err
		}
		draft := domain.CompensationDraft{Components: structure.Components}
		if err := draft.ValidateForSubmission(); err != nil {
			return err
		}
		employee.Compensation = structure
	case domain.LegacyCompensationKind:
		employee.Compensation.Components = nil
	default:
		return apperrors.NewValidationError("compensation", fmt.Sprintf("unknown compensation kind '%s'", employee.Compensation.Kind))
	}

	estimate, err := payroll.EstimateStatutory(employee.Compensation)
	if err != nil {
		return apperrors.NewValidationError("compensation", err.Error())
	}
	employee.Statutory = estimate
	return nil
}

// resolveComponents checks every assignment against the catalog and fills the category
// and type from it. A missing payslip name snapshot is taken from the catalog.
func (s *employeeService) resolveComponents(ctx context.Context, components []domain.EmployeeSalaryComponent) error {
	if s.catalog == nil || len(components) == 0 {
		return nil
	}
	ids := make([]string, len(components))
	for i, c := range components {
		ids[i] = c.SalaryComponentID
	}
	catalog, err := s.catalog.FindSalaryComponentsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve salary components", slog.Int("count", len(ids)))
		return fmt.Errorf("failed to resolve salary components: %w", err)
	}
	for i := range components {
		entry, ok := catalog[components[i].SalaryComponentID]
		if !ok {
			return apperrors.NewValidationError("salaryComponents", fmt.Sprintf("unknown salary component '%s'", components[i].SalaryComponentID))
		}
		components[i].Category = entry.Category
		components[i].ComponentType = entry.ComponentType
		if components[i].NameInPayslip == "" {
			components[i].NameInPayslip = entry.NameInPayslip
		}
		if components[i].Amount != nil && components[i].Amount.IsNegative() {
			return apperrors.NewValidationError(components[i].NameInPayslip, "amount must not be negative")
		}
	}
	return nil
}
