package payroll

import (
	"fmt"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	pfRate          = decimal.RequireFromString("0.12")
	esiEmployeeRate = decimal.RequireFromString("0.0075")
	esiEmployerRate = decimal.RequireFromString("0.0325")
	// ESIGrossCeiling is the highest gross salary still covered by ESI.
	ESIGrossCeiling = decimal.NewFromInt(25000)
)

// GrossSalary sums the earnings of a structure. For component-based structures only
// active earnings components count.
func GrossSalary(s domain.CompensationStructure) (decimal.Decimal, error) {
	switch s.Kind {
	case domain.ComponentCompensationKind:
		return sumComponents(s.Components, domain.Earnings), nil
	case domain.LegacyCompensationKind:
		l := s.Legacy
		return decimal.Sum(l.Basic, l.Housing, l.Medical, l.Travel, l.Conveyance, l.Incentive, l.OtherBenefits), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown compensation kind '%s'", s.Kind)
	}
}

// TotalDeductions sums the deductions of a structure. Unset component amounts count as zero.
func TotalDeductions(s domain.CompensationStructure) (decimal.Decimal, error) {
	switch s.Kind {
	case domain.ComponentCompensationKind:
		return sumComponents(s.Components, domain.Deductions), nil
	case domain.LegacyCompensationKind:
		l := s.Legacy
		return decimal.Sum(l.PFDeduction, l.ESIDeduction, l.TaxDeduction, l.LoanDeduction, l.OtherDeductions), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown compensation kind '%s'", s.Kind)
	}
}

// NetSalary is gross minus deductions. A negative result is returned as is; payroll runs
// reconcile it.
func NetSalary(s domain.CompensationStructure) (decimal.Decimal, error) {
	totals, err := ComputeTotals(s)
	if err != nil {
		return decimal.Zero, err
	}
	return totals.Net, nil
}

// ComputeTotals derives gross, deductions and net for a structure.
func ComputeTotals(s domain.CompensationStructure) (domain.CompensationTotals, error) {
	gross, err := GrossSalary(s)
	if err != nil {
		return domain.CompensationTotals{}, err
	}
	deductions, err := TotalDeductions(s)
	if err != nil {
		return domain.CompensationTotals{}, err
	}
	return domain.CompensationTotals{
		Gross:      gross,
		Deductions: deductions,
		Net:        gross.Sub(deductions),
	}, nil
}

// EstimatePfEsi estimates statutory contributions from a basic salary, treating it as
// the gross for the ESI ceiling.
func EstimatePfEsi(basicSalary decimal.Decimal) domain.StatutoryEstimate {
	return estimate(basicSalary, basicSalary)
}

// EstimateStatutory estimates contributions from a finalized structure: PF from its basic
// salary and the ESI ceiling against its full gross.
func EstimateStatutory(s domain.CompensationStructure) (domain.StatutoryEstimate, error) {
	gross, err := GrossSalary(s)
	if err != nil {
		return domain.StatutoryEstimate{}, err
	}
	return estimate(BasicSalary(s), gross), nil
}

// BasicSalary returns the legacy basic field or the active basic earnings component.
func BasicSalary(s domain.CompensationStructure) decimal.Decimal {
	if !s.UsesComponents() {
		return s.Legacy.Basic
	}
	basic := decimal.Zero
	for _, c := range s.Components {
		if c.IsActive && c.Category == domain.Earnings && c.ComponentType == domain.BasicComponentType {
			basic = basic.Add(c.AmountOrZero())
		}
	}
	return basic
}

func estimate(basic, gross decimal.Decimal) domain.StatutoryEstimate {
	pf := basic.Mul(pfRate).Round(0)
	est := domain.StatutoryEstimate{
		PFEmployee:  pf,
		PFEmployer:  pf,
		ESIEmployee: decimal.Zero,
		ESIEmployer: decimal.Zero,
	}
	if gross.LessThanOrEqual(ESIGrossCeiling) {
		est.ESIEmployee = gross.Mul(esiEmployeeRate).Round(0)
		est.ESIEmployer = gross.Mul(esiEmployerRate).Round(0)
	}
	return est
}

func sumComponents(components []domain.EmployeeSalaryComponent, category domain.ComponentCategory) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		if c.IsActive && c.Category == category {
			total = total.Add(c.AmountOrZero())
		}
	}
	return total
}
