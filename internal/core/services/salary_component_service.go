package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/google/uuid"
)

// salaryComponentService implements the SalaryComponentSvcFacade interface
type salaryComponentService struct {
	BaseService
	componentRepo portsrepo.SalaryComponentRepositoryFacade
}

// NewSalaryComponentService creates a new catalog service
func NewSalaryComponentService(repo portsrepo.SalaryComponentRepositoryFacade) portssvc.SalaryComponentSvcFacade {
	return &salaryComponentService{componentRepo: repo}
}

// Ensure salaryComponentService implements the SalaryComponentSvcFacade interface
var _ portssvc.SalaryComponentSvcFacade = (*salaryComponentService)(nil)

func (s *salaryComponentService) AddSalaryComponent(ctx context.Context, component domain.SalaryComponent, userID string) (*domain.SalaryComponent, error) {
	if err := component.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected salary component",
			slog.String("category", string(component.Category)),
			slog.String("reason", err.Error()))
		return nil, err
	}

	now := time.Now()
	component.ComponentID = uuid.NewString()
	component.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.componentRepo.SaveSalaryComponent(ctx, component); err != nil {
		s.LogError(ctx, err, "Failed to save salary component",
			slog.String("component_id", component.ComponentID))
		return nil, fmt.Errorf("failed to add salary component: %w", err)
	}

	s.LogInfo(ctx, "Salary component created",
		slog.String("component_id", component.ComponentID),
		slog.String("category", string(component.Category)))
	return &component, nil
}

func (s *salaryComponentService) GetSalaryComponent(ctx context.Context, componentID string) (*domain.SalaryComponent, error) {
	component, err := s.componentRepo.FindSalaryComponentByID(ctx, componentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find salary component",
				slog.String("component_id", componentID))
		}
		return nil, err
	}
	return component, nil
}

func (s *salaryComponentService) ListSalaryComponents(ctx context.Context, filter domain.ComponentFilter) ([]domain.SalaryComponent, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "must be one of earnings, deductions, benefits, reimbursements")
	}
	components, err := s.componentRepo.ListSalaryComponents(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary components",
			slog.String("category", string(filter.Category)))
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	if components == nil {
		return []domain.SalaryComponent{}, nil
	}
	return components, nil
}

func (s *salaryComponentService) ListSelectableComponents(ctx context.Context, category domain.ComponentCategory) ([]domain.SalaryComponent, error) {
	return s.ListSalaryComponents(ctx, domain.ComponentFilter{
		Category:            category,
		ActiveOnly:          true,
		SalaryStructureOnly: category == domain.Earnings,
	})
}

func (s *salaryComponentService) UpdateSalaryComponent(ctx context.Context, componentID string, req dto.SalaryComponentRequest, userID string) (*domain.SalaryComponent, error) {
	existing, err := s.GetSalaryComponent(ctx, componentID)
	if err != nil {
		return nil, err
	}

	component := req.ToDomain()
	if req.IsActive == nil {
		component.IsActive = existing.IsActive
	}
	if req.ShowInPayslip == nil {
		component.ShowInPayslip = existing.ShowInPayslip
	}

	refs, err := s.componentRepo.CountComponentReferences(ctx, componentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count salary component references",
			slog.String("component_id", componentID))
		return nil, fmt.Errorf("failed to check salary component usage: %w", err)
	}
	if refs > 0 {
		if changed := existing.ChangedFields(component); len(changed) > 0 {
			s.LogDebug(ctx, "Rejected edit of referenced salary component",
				slog.String("component_id", componentID),
				slog.Int("references", refs),
				slog.Any("fields", changed))
			return nil, &apperrors.ImmutableFieldError{Resource: "salary component " + existing.NameInPayslip, Fields: changed}
		}
	}

	if err := component.Validate(); err != nil {
		return nil, err
	}

	component.ComponentID = existing.ComponentID
	component.CreatedAt = existing.CreatedAt
	component.CreatedBy = existing.CreatedBy
	component.LastUpdatedAt = time.Now()
	component.LastUpdatedBy = userID

	if err := s.componentRepo.UpdateSalaryComponent(ctx, component); err != nil {
		s.LogError(ctx, err, "Failed to update salary component",
			slog.String("component_id", componentID))
		return nil, fmt.Errorf("failed to update salary component: %w", err)
	}

	s.LogInfo(ctx, "Salary component updated",
		slog.String("component_id", componentID),
		slog.Int("references", refs))
	return &component, nil
}

func (s *salaryComponentService) RemoveSalaryComponent(ctx context.Context, componentID string, userID string) (bool, error) {
	if _, err := s.GetSalaryComponent(ctx, componentID); err != nil {
		return false, err
	}

	refs, err := s.componentRepo.CountComponentReferences(ctx, componentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count salary component references",
			slog.String("component_id", componentID))
		return false, fmt.Errorf("failed to check salary component usage: %w", err)
	}

	if refs > 0 {
		if err := s.componentRepo.DeactivateSalaryComponent(ctx, componentID, userID, time.Now()); err != nil {
			s.LogError(ctx, err, "Failed to deactivate salary component",
				slog.String("component_id", componentID))
			return false, fmt.Errorf("failed to deactivate salary component: %w", err)
		}
		s.LogInfo(ctx, "Salary component deactivated",
			slog.String("component_id", componentID),
			slog.Int("references", refs))
		return true, nil
	}

	if err := s.componentRepo.DeleteSalaryComponent(ctx, componentID); err != nil {
		s.LogError(ctx, err, "Failed to delete salary component",
			slog.String("component_id", componentID))
		return false, fmt.Errorf("failed to delete salary component: %w", err)
	}
	s.LogInfo(ctx, "Salary component deleted", slog.String("component_id", componentID))
	return false, nil
}
