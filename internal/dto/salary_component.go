package dto

import (
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalaryComponentRequest carries a full catalog component for create and update.
// Category-specific required fields are checked by the catalog service so the caller
// gets one ValidationError per problem.
type SalaryComponentRequest struct {
	Category              string           `json:"category" binding:"required,oneof=earnings deductions benefits reimbursements"`
	ComponentType         string           `json:"componentType"`
	NameInPayslip         string           `json:"nameInPayslip"`
	IsVariable            bool             `json:"isVariable"`
	CalculationType       string           `json:"calculationType" binding:"required,oneof=flat_amount percent_of_ctc percent_of_basic"`
	CalculationValue      decimal.Decimal  `json:"calculationValue"`
	IsTaxable             bool             `json:"isTaxable"`
	IsActive              *bool            `json:"isActive"` // Optional, defaults to true on create and to the stored value on update
	PartOfSalaryStructure bool             `json:"partOfSalaryStructure"`
	ConsiderForEPF        bool             `json:"considerForEPF"`
	ConsiderForESI        bool             `json:"considerForESI"`
	EPFWageThreshold      *decimal.Decimal `json:"epfWageThreshold"`
	ProRata               bool             `json:"proRata"`
	FlexibleBenefit       bool             `json:"flexibleBenefit"`
	ShowInPayslip         *bool            `json:"showInPayslip"` // Optional, same defaults as isActive
	BenefitPlan           string           `json:"benefitPlan"`
	BenefitAssociation    string           `json:"benefitAssociation"`
	DeductionFrequency    string           `json:"deductionFrequency" binding:"omitempty,oneof=one_time recurring"`
	UnclaimedHandling     string           `json:"unclaimedHandling" binding:"omitempty,oneof=pay_in_final_settlement lapse"`
}

// ToDomain converts the request into a catalog component without identity or audit fields.
func (r SalaryComponentRequest) ToDomain() domain.SalaryComponent {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	showInPayslip := true
	if r.ShowInPayslip != nil {
		showInPayslip = *r.ShowInPayslip
	}
	return domain.SalaryComponent{
		Category:              domain.ComponentCategory(r.Category),
		ComponentType:         r.ComponentType,
		NameInPayslip:         r.NameInPayslip,
		IsVariable:            r.IsVariable,
		CalculationType:       domain.CalculationType(r.CalculationType),
		CalculationValue:      r.CalculationValue,
		IsTaxable:             r.IsTaxable,
		IsActive:              isActive,
		PartOfSalaryStructure: r.PartOfSalaryStructure,
		ConsiderForEPF:        r.ConsiderForEPF,
		ConsiderForESI:        r.ConsiderForESI,
		EPFWageThreshold:      r.EPFWageThreshold,
		ProRata:               r.ProRata,
		FlexibleBenefit:       r.FlexibleBenefit,
		ShowInPayslip:         showInPayslip,
		BenefitPlan:           r.BenefitPlan,
		BenefitAssociation:    r.BenefitAssociation,
		DeductionFrequency:    domain.DeductionFrequency(r.DeductionFrequency),
		UnclaimedHandling:     domain.UnclaimedHandling(r.UnclaimedHandling),
	}
}

// ListSalaryComponentsParams defines query parameters for listing catalog components.
type ListSalaryComponentsParams struct {
	Category   string `form:"category" binding:"omitempty,oneof=earnings deductions benefits reimbursements"`
	ActiveOnly bool   `form:"activeOnly"`
	// Selection applies the component picker rules for the category.
	Selection bool `form:"selection"`
}

// SalaryComponentResponse defines the data returned for a catalog component.
type SalaryComponentResponse struct {
	domain.SalaryComponent
}

// RemoveSalaryComponentResponse tells the caller whether the component was kept as inactive.
type RemoveSalaryComponentResponse struct {
	ComponentID string    `json:"componentID"`
	Deactivated bool      `json:"deactivated"`
	RemovedAt   time.Time `json:"removedAt"`
}

// ToSalaryComponentResponse converts a domain.SalaryComponent to its response DTO
func ToSalaryComponentResponse(c *domain.SalaryComponent) SalaryComponentResponse {
	return SalaryComponentResponse{SalaryComponent: *c}
}

// ToListSalaryComponentResponse converts a slice of domain components to response DTOs
func ToListSalaryComponentResponse(components []domain.SalaryComponent) []SalaryComponentResponse {
	res := make([]SalaryComponentResponse, len(components))
	for i := range components {
		res[i] = ToSalaryComponentResponse(&components[i])
	}
	return res
}
