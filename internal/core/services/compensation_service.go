package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/SscSPs/hr_payroll_admin/internal/utils/payroll"
	"github.com/shopspring/decimal"
)

type compensationService struct {
	BaseService
	catalog portsrepo.SalaryComponentReader
}

// NewCompensationService creates the compensation builder backed by the catalog.
func NewCompensationService(catalog portsrepo.SalaryComponentReader) portssvc.CompensationSvc {
	return &compensationService{catalog: catalog}
}

var _ portssvc.CompensationSvc = (*compensationService)(nil)

func (s *compensationService) BuildCompensation(ctx context.Context, req dto.BuildCompensationRequest) (*domain.CompensationStructure, error) {
	draft := domain.CompensationDraft{
		Components: append([]domain.EmployeeSalaryComponent(nil), req.Draft.Components...),
	}

	if len(req.Toggles) > 0 {
		catalog, err := s.catalog.FindSalaryComponentsByIDs(ctx, req.Toggles)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve catalog selection",
				slog.Int("toggles", len(req.Toggles)))
			return nil, fmt.Errorf("failed to resolve salary components: %w", err)
		}
		for _, id := range req.Toggles {
			component, ok := catalog[id]
			if !ok {
				return nil, apperrors.NewValidationError("toggles", fmt.Sprintf("unknown salary component '%s'", id))
			}
			if !draft.Has(id) {
				if err := checkSelectable(component); err != nil {
					return nil, err
				}
			}
			draft.Toggle(component)
		}
	}

	for id, raw := range req.Amounts {
		draft.SetAmount(id, string(raw))
	}

	if err := draft.ValidateForSubmission(); err != nil {
		s.LogDebug(ctx, "Compensation draft rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	structure := draft.Finalize()
	return &structure, nil
}

// checkSelectable applies the picker rules to a component being added to a draft.
func checkSelectable(c domain.SalaryComponent) error {
	if !c.IsActive {
		return apperrors.NewValidationError("toggles", fmt.Sprintf("salary component '%s' is inactive", c.NameInPayslip))
	}
	if c.Category == domain.Earnings && !c.PartOfSalaryStructure {
		return apperrors.NewValidationError("toggles", fmt.Sprintf("salary component '%s' is not part of the salary structure", c.NameInPayslip))
	}
	return nil
}

func (s *compensationService) ComputeTotals(ctx context.Context, structure domain.CompensationStructure) (domain.CompensationTotals, error) {
	totals, err := payroll.ComputeTotals(structure)
	if err != nil {
		return domain.CompensationTotals{}, apperrors.NewValidationError("compensation", err.Error())
	}
	return totals, nil
}

func (s *compensationService) EstimateStatutory(ctx context.Context, structure domain.CompensationStructure) (domain.StatutoryEstimate, error) {
	estimate, err := payroll.EstimateStatutory(structure)
	if err != nil {
		return domain.StatutoryEstimate{}, apperrors.NewValidationError("compensation", err.Error())
	}
	return estimate, nil
}

func (s *compensationService) EstimatePfEsi(ctx context.Context, basicSalary decimal.Decimal) domain.StatutoryEstimate {
	return payroll.EstimatePfEsi(basicSalary)
}
