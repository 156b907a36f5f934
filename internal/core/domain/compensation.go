package domain

import "github.com/shopspring/decimal"

// CompensationKind tags which representation of a CompensationStructure is authoritative.
type CompensationKind string

const (
	LegacyCompensationKind    CompensationKind = "legacy"
	ComponentCompensationKind CompensationKind = "component_based"
)

// LegacyCompensation is the fixed-field salary shape kept for older records.
type LegacyCompensation struct {
	Basic           decimal.Decimal `json:"basic"`
	Housing         decimal.Decimal `json:"housing"`
	Medical         decimal.Decimal `json:"medical"`
	Travel          decimal.Decimal `json:"travel"`
	Conveyance      decimal.Decimal `json:"conveyance"`
	Incentive       decimal.Decimal `json:"incentive"`
	OtherBenefits   decimal.Decimal `json:"otherBenefits"`
	PFDeduction     decimal.Decimal `json:"pfDeduction"`
	ESIDeduction    decimal.Decimal `json:"esiDeduction"`
	TaxDeduction    decimal.Decimal `json:"taxDeduction"`
	LoanDeduction   decimal.Decimal `json:"loanDeduction"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`
}

// EmployeeSalaryComponent is an employee's assignment of a catalog component. NameInPayslip
// is a snapshot taken at assignment time.
type EmployeeSalaryComponent struct {
	SalaryComponentID string            `json:"salaryComponentID"`
	Category          ComponentCategory `json:"category"`
	ComponentType     string            `json:"componentType"`
	NameInPayslip     string            `json:"nameInPayslip"`
	Amount            *decimal.Decimal  `json:"amount"` // nil until set; deductions may stay nil until payroll
	IsActive          bool              `json:"isActive"`
}

// AmountOrZero returns the amount, treating an unset amount as zero.
func (c EmployeeSalaryComponent) AmountOrZero() decimal.Decimal {
	if c.Amount == nil {
		return decimal.Zero
	}
	return *c.Amount
}

// CompensationStructure is either Legacy or ComponentBased, never both. Consumers must
// switch on Kind. Legacy is the zero value for component-based structures.
type CompensationStructure struct {
	Kind       CompensationKind          `json:"kind"`
	Legacy     LegacyCompensation        `json:"legacy"`
	Components []EmployeeSalaryComponent `json:"components,omitempty"`
}

// NewLegacyCompensation wraps fixed fields as an authoritative legacy structure.
func NewLegacyCompensation(fields LegacyCompensation) CompensationStructure {
	return CompensationStructure{Kind: LegacyCompensationKind, Legacy: fields}
}

// NewComponentCompensation builds a component-based structure with zeroed legacy fields.
func NewComponentCompensation(components []EmployeeSalaryComponent) CompensationStructure {
	cs := make([]EmployeeSalaryComponent, len(components))
	for i, c := range components {
		if c.Amount != nil {
			amount := *c.Amount
			c.Amount = &amount
		}
		cs[i] = c
	}
	return CompensationStructure{Kind: ComponentCompensationKind, Components: cs}
}

// UsesComponents reports whether the component list is authoritative.
func (s CompensationStructure) UsesComponents() bool {
	return s.Kind == ComponentCompensationKind
}

// CompensationTotals are the derived amounts for display and submission.
type CompensationTotals struct {
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

// StatutoryEstimate holds PF and ESI contributions for both parties.
type StatutoryEstimate struct {
	PFEmployee  decimal.Decimal `json:"pfEmployee"`
	PFEmployer  decimal.Decimal `json:"pfEmployer"`
	ESIEmployee decimal.Decimal `json:"esiEmployee"`
	ESIEmployer decimal.Decimal `json:"esiEmployer"`
}
