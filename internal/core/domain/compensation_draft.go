package domain

import (
	"strings"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Messages surfaced by CompensationDraft.ValidateForSubmission.
const (
	MsgEarningRequired = "at least one earning required"
	MsgMissingAmount   = "missing amount"
)

// CompensationDraft is an employee's component selection while it is being edited.
type CompensationDraft struct {
	Components []EmployeeSalaryComponent `json:"components"`
}

// CoerceAmount parses a user-entered amount. Empty, malformed and negative input all
// become zero; it never fails.
func CoerceAmount(raw string) decimal.Decimal {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func (d *CompensationDraft) indexOf(componentID string) int {
	for i, c := range d.Components {
		if c.SalaryComponentID == componentID {
			return i
		}
	}
	return -1
}

// Has reports whether the catalog component is currently selected.
func (d *CompensationDraft) Has(componentID string) bool {
	return d.indexOf(componentID) >= 0
}

// Toggle removes the assignment for the catalog component if present, otherwise appends
// it with a zero amount.
func (d *CompensationDraft) Toggle(component SalaryComponent) {
	if i := d.indexOf(component.ComponentID); i >= 0 {
		d.Components = append(d.Components[:i:i], d.Components[i+1:]...)
		return
	}
	zero := decimal.Zero
	d.Components = append(d.Components, EmployeeSalaryComponent{
		SalaryComponentID: component.ComponentID,
		Category:          component.Category,
		ComponentType:     component.ComponentType,
		NameInPayslip:     component.NameInPayslip,
		Amount:            &zero,
		IsActive:          true,
	})
}

// SetAmount assigns a coerced amount to a selected component. Unknown ids are ignored.
func (d *CompensationDraft) SetAmount(componentID string, raw string) {
	i := d.indexOf(componentID)
	if i < 0 {
		return
	}
	amount := CoerceAmount(raw)
	d.Components[i].Amount = &amount
}

// ValidateForSubmission checks that at least one active earning is selected and that every
// selected earning carries an amount.
func (d *CompensationDraft) ValidateForSubmission() error {
	hasEarning := false
	for _, c := range d.Components {
		if c.Category == Earnings && c.IsActive {
			hasEarning = true
			break
		}
	}
	if !hasEarning {
		return apperrors.NewValidationError("salaryComponents", MsgEarningRequired)
	}
	for _, c := range d.Components {
		if c.Category == Earnings && c.Amount == nil {
			return apperrors.NewValidationError(c.NameInPayslip, MsgMissingAmount)
		}
	}
	return nil
}

// Finalize converts the draft into an authoritative component-based structure.
func (d *CompensationDraft) Finalize() CompensationStructure {
	return NewComponentCompensation(d.Components)
}
