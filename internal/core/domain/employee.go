package domain

import (
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
)

// EmployeeStatus is the employment lifecycle state.
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusInactive   EmployeeStatus = "inactive"
	StatusResigned   EmployeeStatus = "resigned"
	StatusTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusResigned, StatusTerminated:
		return true
	}
	return false
}

// Gender values accepted on employee records.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// BankDetails holds salary disbursement information.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	PAN           string `json:"pan"`
}

// LeaveConfig is the employee's probation state and custom leave entitlements. Nil
// entitlements fall back to company policy.
type LeaveConfig struct {
	OnProbation      bool       `json:"onProbation"`
	ProbationEndDate *time.Time `json:"probationEndDate,omitempty"`
	CasualLeave      *int       `json:"casualLeave,omitempty"`
	SickLeave        *int       `json:"sickLeave,omitempty"`
	AnnualLeave      *int       `json:"annualLeave,omitempty"`
}

// Employee is the administered employee record. It owns its compensation and leave config.
type Employee struct {
	EmployeeID      string                `json:"employeeID"`
	EmployeeCode    string                `json:"employeeCode"`
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	Gender          string                `json:"gender"`
	DateOfBirth     time.Time             `json:"dateOfBirth"`
	Department      string                `json:"department"`
	Designation     string                `json:"designation"`
	DateOfJoining   time.Time             `json:"dateOfJoining"`
	Address         string                `json:"address"`
	Bank            BankDetails           `json:"bank"`
	Compensation    CompensationStructure `json:"compensation"`
	Statutory       StatutoryEstimate     `json:"statutory"`
	Leave           LeaveConfig           `json:"leave"`
	Status          EmployeeStatus        `json:"status"`
	ResignationDate *time.Time            `json:"resignationDate,omitempty"`
	TerminationDate *time.Time            `json:"terminationDate,omitempty"`
	AuditFields
}

// ValidateLifecycle enforces the status/date pairing rules.
func (e *Employee) ValidateLifecycle() error {
	if e.Status == "" {
		e.Status = StatusActive
	}
	if !e.Status.IsValid() {
		return apperrors.NewValidationError("status", "must be one of active, inactive, resigned, terminated")
	}
	if e.Status == StatusResigned && e.ResignationDate == nil {
		return apperrors.NewValidationError("resignationDate", "required when status is resigned")
	}
	if e.Status == StatusTerminated && e.TerminationDate == nil {
		return apperrors.NewValidationError("terminationDate", "required when status is terminated")
	}
	return nil
}

// EmployeeCursor marks the last employee of a listing page. Pages are ordered by
// creation time, then id.
type EmployeeCursor struct {
	CreatedAt  time.Time
	EmployeeID string
}
