package domain

import (
	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ComponentCategory groups catalog components by how payroll treats them.
type ComponentCategory string

const (
	Earnings       ComponentCategory = "earnings"
	Deductions     ComponentCategory = "deductions"
	Benefits       ComponentCategory = "benefits"
	Reimbursements ComponentCategory = "reimbursements"
)

// IsValid reports whether c is one of the known categories.
func (c ComponentCategory) IsValid() bool {
	switch c {
	case Earnings, Deductions, Benefits, Reimbursements:
		return true
	}
	return false
}

// CalculationType defines how a component's amount is derived.
type CalculationType string

const (
	FlatAmount     CalculationType = "flat_amount"
	PercentOfCTC   CalculationType = "percent_of_ctc"
	PercentOfBasic CalculationType = "percent_of_basic"
)

func (t CalculationType) IsValid() bool {
	switch t {
	case FlatAmount, PercentOfCTC, PercentOfBasic:
		return true
	}
	return false
}

// DeductionFrequency is only meaningful for deductions.
type DeductionFrequency string

const (
	OneTimeDeduction   DeductionFrequency = "one_time"
	RecurringDeduction DeductionFrequency = "recurring"
)

// UnclaimedHandling is only meaningful for reimbursements.
type UnclaimedHandling string

const (
	PayInFinalSettlement UnclaimedHandling = "pay_in_final_settlement"
	LapseUnclaimed       UnclaimedHandling = "lapse"
)

// BasicComponentType is the component_type that identifies the basic salary earning.
const BasicComponentType = "basic"

// SalaryComponent is an admin-defined catalog entry. Once any employee references it,
// only NameInPayslip may change.
type SalaryComponent struct {
	ComponentID           string             `json:"componentID"`
	Category              ComponentCategory  `json:"category"`
	ComponentType         string             `json:"componentType"`
	NameInPayslip         string             `json:"nameInPayslip"`
	IsVariable            bool               `json:"isVariable"`
	CalculationType       CalculationType    `json:"calculationType"`
	CalculationValue      decimal.Decimal    `json:"calculationValue"` // flat amount or percentage
	IsTaxable             bool               `json:"isTaxable"`
	IsActive              bool               `json:"isActive"`
	PartOfSalaryStructure bool               `json:"partOfSalaryStructure"`
	ConsiderForEPF        bool               `json:"considerForEPF"`
	ConsiderForESI        bool               `json:"considerForESI"`
	EPFWageThreshold      *decimal.Decimal   `json:"epfWageThreshold,omitempty"`
	ProRata               bool               `json:"proRata"`
	FlexibleBenefit       bool               `json:"flexibleBenefit"`
	ShowInPayslip         bool               `json:"showInPayslip"`
	BenefitPlan           string             `json:"benefitPlan,omitempty"`
	BenefitAssociation    string             `json:"benefitAssociation,omitempty"`
	DeductionFrequency    DeductionFrequency `json:"deductionFrequency,omitempty"`
	UnclaimedHandling     UnclaimedHandling  `json:"unclaimedHandling,omitempty"`
	AuditFields
}

// ComponentFilter narrows catalog listings.
type ComponentFilter struct {
	Category            ComponentCategory // empty means any
	ActiveOnly          bool
	SalaryStructureOnly bool
}

// Validate checks the fields required for the component's category.
func (c SalaryComponent) Validate() error {
	if !c.Category.IsValid() {
		return apperrors.NewValidationError("category", "must be one of earnings, deductions, benefits, reimbursements")
	}
	if c.NameInPayslip == "" {
		return apperrors.NewValidationError("nameInPayslip", "is required")
	}
	if !c.CalculationType.IsValid() {
		return apperrors.NewValidationError("calculationType", "must be one of flat_amount, percent_of_ctc, percent_of_basic")
	}
	if c.CalculationValue.IsNegative() {
		return apperrors.NewValidationError("calculationValue", "must not be negative")
	}
	switch c.Category {
	case Earnings, Reimbursements:
		if c.ComponentType == "" {
			return apperrors.NewValidationError("componentType", "is required for "+string(c.Category))
		}
	case Benefits:
		if c.BenefitPlan == "" || c.BenefitAssociation == "" {
			return apperrors.NewValidationError("benefitPlan", "benefit plan and association are required for benefits")
		}
	case Deductions:
		if c.DeductionFrequency != OneTimeDeduction && c.DeductionFrequency != RecurringDeduction {
			return apperrors.NewValidationError("deductionFrequency", "must be one_time or recurring for deductions")
		}
	}
	return nil
}

// ChangedFields lists the json names of fields that differ from other, ignoring identity,
// audit fields and NameInPayslip.
func (c SalaryComponent) ChangedFields(other SalaryComponent) []string {
	var changed []string
	add := func(differs bool, name string) {
		if differs {
			changed = append(changed, name)
		}
	}
	add(c.Category != other.Category, "category")
	add(c.ComponentType != other.ComponentType, "componentType")
	add(c.IsVariable != other.IsVariable, "isVariable")
	add(c.CalculationType != other.CalculationType, "calculationType")
	add(!c.CalculationValue.Equal(other.CalculationValue), "calculationValue")
	add(c.IsTaxable != other.IsTaxable, "isTaxable")
	add(c.IsActive != other.IsActive, "isActive")
	add(c.PartOfSalaryStructure != other.PartOfSalaryStructure, "partOfSalaryStructure")
	add(c.ConsiderForEPF != other.ConsiderForEPF, "considerForEPF")
	add(c.ConsiderForESI != other.ConsiderForESI, "considerForESI")
	add(!equalOptionalDecimal(c.EPFWageThreshold, other.EPFWageThreshold), "epfWageThreshold")
	add(c.ProRata != other.ProRata, "proRata")
	add(c.FlexibleBenefit != other.FlexibleBenefit, "flexibleBenefit")
	add(c.ShowInPayslip != other.ShowInPayslip, "showInPayslip")
	add(c.BenefitPlan != other.BenefitPlan, "benefitPlan")
	add(c.BenefitAssociation != other.BenefitAssociation, "benefitAssociation")
	add(c.DeductionFrequency != other.DeductionFrequency, "deductionFrequency")
	add(c.UnclaimedHandling != other.UnclaimedHandling, "unclaimedHandling")
	return changed
}

func equalOptionalDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
