package models

import "github.com/shopspring/decimal"

// SalaryComponent is a row of the salary_components catalog table.
type SalaryComponent struct {
	ComponentID           string              `db:"component_id"`
	Category              string              `db:"category"`
	ComponentType         string              `db:"component_type"`
	NameInPayslip         string              `db:"name_in_payslip"`
	IsVariable            bool                `db:"is_variable"`
	CalculationType       string              `db:"calculation_type"`
	CalculationValue      decimal.Decimal     `db:"calculation_value"`
	IsTaxable             bool                `db:"is_taxable"`
	IsActive              bool                `db:"is_active"`
	PartOfSalaryStructure bool                `db:"part_of_salary_structure"`
	ConsiderForEPF        bool                `db:"consider_for_epf"`
	ConsiderForESI        bool                `db:"consider_for_esi"`
	EPFWageThreshold      decimal.NullDecimal `db:"epf_wage_threshold"` // Nullable
	ProRata               bool                `db:"pro_rata"`
	FlexibleBenefit       bool                `db:"flexible_benefit"`
	ShowInPayslip         bool                `db:"show_in_payslip"`
	BenefitPlan           string              `db:"benefit_plan"`
	BenefitAssociation    string              `db:"benefit_association"`
	DeductionFrequency    string              `db:"deduction_frequency"`
	UnclaimedHandling     string              `db:"unclaimed_handling"`
	AuditFields
}
