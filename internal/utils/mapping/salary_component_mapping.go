package mapping

import (
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelSalaryComponent converts a domain SalaryComponent to a model SalaryComponent
func ToModelSalaryComponent(d domain.SalaryComponent) models.SalaryComponent {
	m := models.SalaryComponent{
		ComponentID:           d.ComponentID,
		Category:              string(d.Category),
		ComponentType:         d.ComponentType,
		NameInPayslip:         d.NameInPayslip,
		IsVariable:            d.IsVariable,
		CalculationType:       string(d.CalculationType),
		CalculationValue:      d.CalculationValue,
		IsTaxable:             d.IsTaxable,
		IsActive:              d.IsActive,
		PartOfSalaryStructure: d.PartOfSalaryStructure,
		ConsiderForEPF:        d.ConsiderForEPF,
		ConsiderForESI:        d.ConsiderForESI,
		ProRata:               d.ProRata,
		FlexibleBenefit:       d.FlexibleBenefit,
		ShowInPayslip:         d.ShowInPayslip,
		BenefitPlan:           d.BenefitPlan,
		BenefitAssociation:    d.BenefitAssociation,
		DeductionFrequency:    string(d.DeductionFrequency),
		UnclaimedHandling:     string(d.UnclaimedHandling),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
	if d.EPFWageThreshold != nil {
		m.EPFWageThreshold = decimal.NewNullDecimal(*d.EPFWageThreshold)
	}
	return m
}

// ToDomainSalaryComponent converts a model SalaryComponent to a domain SalaryComponent
func ToDomainSalaryComponent(m models.SalaryComponent) domain.SalaryComponent {
	d := domain.SalaryComponent{
		ComponentID:           m.ComponentID,
		Category:              domain.ComponentCategory(m.Category),
		ComponentType:         m.ComponentType,
		NameInPayslip:         m.NameInPayslip,
		IsVariable:            m.IsVariable,
		CalculationType:       domain.CalculationType(m.CalculationType),
		CalculationValue:      m.CalculationValue,
		IsTaxable:             m.IsTaxable,
		IsActive:              m.IsActive,
		PartOfSalaryStructure: m.PartOfSalaryStructure,
		ConsiderForEPF:        m.ConsiderForEPF,
		ConsiderForESI:        m.ConsiderForESI,
		ProRata:               m.ProRata,
		FlexibleBenefit:       m.FlexibleBenefit,
		ShowInPayslip:         m.ShowInPayslip,
		BenefitPlan:           m.BenefitPlan,
		BenefitAssociation:    m.BenefitAssociation,
		DeductionFrequency:    domain.DeductionFrequency(m.DeductionFrequency),
		UnclaimedHandling:     domain.UnclaimedHandling(m.UnclaimedHandling),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
	if m.EPFWageThreshold.Valid {
		threshold := m.EPFWageThreshold.Decimal
		d.EPFWageThreshold = &threshold
	}
	return d
}

// ToDomainSalaryComponentSlice converts a slice of model components to domain components
func ToDomainSalaryComponentSlice(ms []models.SalaryComponent) []domain.SalaryComponent {
	ds := make([]domain.SalaryComponent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalaryComponent(m)
	}
	return ds
}
