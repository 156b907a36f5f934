package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a row of the employees table. The legacy salary columns are always
// present; UseComponentBasedSalary says whether they or the assignment rows are authoritative.
type Employee struct {
	EmployeeID    string    `db:"employee_id"`
	EmployeeCode  string    `db:"employee_code"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Gender        string    `db:"gender"`
	DateOfBirth   time.Time `db:"date_of_birth"`
	Department    string    `db:"department"`
	Designation   string    `db:"designation"`
	DateOfJoining time.Time `db:"date_of_joining"`
	Address       string    `db:"address"`

	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	IFSC          string `db:"ifsc"`
	PAN           string `db:"pan"`

	UseComponentBasedSalary bool            `db:"use_component_based_salary"`
	BasicSalary             decimal.Decimal `db:"basic_salary"`
	HRA                     decimal.Decimal `db:"hra"`
	MedicalAllowance        decimal.Decimal `db:"medical_allowance"`
	TravelAllowance         decimal.Decimal `db:"travel_allowance"`
	Conveyance              decimal.Decimal `db:"conveyance"`
	Incentive               decimal.Decimal `db:"incentive"`
	OtherBenefits           decimal.Decimal `db:"other_benefits"`
	PFDeduction             decimal.Decimal `db:"pf_deduction"`
	ESIDeduction            decimal.Decimal `db:"esi_deduction"`
	TaxDeduction            decimal.Decimal `db:"tax_deduction"`
	LoanDeduction           decimal.Decimal `db:"loan_deduction"`
	OtherDeductions         decimal.Decimal `db:"other_deductions"`

	PFEmployee  decimal.Decimal `db:"pf_employee"`
	PFEmployer  decimal.Decimal `db:"pf_employer"`
	ESIEmployee decimal.Decimal `db:"esi_employee"`
	ESIEmployer decimal.Decimal `db:"esi_employer"`

	OnProbation      bool       `db:"on_probation"`
	ProbationEndDate *time.Time `db:"probation_end_date"` // Nullable
	CasualLeave      *int32     `db:"casual_leave"`       // Nullable
	SickLeave        *int32     `db:"sick_leave"`         // Nullable
	AnnualLeave      *int32     `db:"annual_leave"`       // Nullable

	Status          string     `db:"status"`
	ResignationDate *time.Time `db:"resignation_date"` // Nullable
	TerminationDate *time.Time `db:"termination_date"` // Nullable
	AuditFields
}

// EmployeeSalaryComponent is a row of employee_salary_components, ordered by Position.
type EmployeeSalaryComponent struct {
	EmployeeID        string              `db:"employee_id"`
	SalaryComponentID string              `db:"salary_component_id"`
	Position          int32               `db:"position"`
	Category          string              `db:"category"`
	ComponentType     string              `db:"component_type"`
	NameInPayslip     string              `db:"name_in_payslip"`
	Amount            decimal.NullDecimal `db:"amount"` // Nullable until payroll for deductions
	IsActive          bool                `db:"is_active"`
}
