package services

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/shopspring/decimal"
)

// CompensationSvc assembles compensation structures and derives their amounts.
type CompensationSvc interface {
	// BuildCompensation applies catalog toggles and amounts to a draft, validates it and
	// returns the finalized component-based structure.
	BuildCompensation(ctx context.Context, req dto.BuildCompensationRequest) (*domain.CompensationStructure, error)

	// ComputeTotals derives gross, deductions and net.
	ComputeTotals(ctx context.Context, structure domain.CompensationStructure) (domain.CompensationTotals, error)

	// EstimateStatutory estimates PF and ESI from a structure's basic and gross salary.
	EstimateStatutory(ctx context.Context, structure domain.CompensationStructure) (domain.StatutoryEstimate, error)

	// EstimatePfEsi estimates statutory contributions for a basic salary.
	EstimatePfEsi(ctx context.Context, basicSalary decimal.Decimal) domain.StatutoryEstimate
}
