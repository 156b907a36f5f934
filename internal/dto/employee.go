package dto

import (
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CompensationPayload is the wire shape of a compensation structure. When
// UseComponentBasedSalary is true the component list is authoritative and the legacy
// fields are sent as zero for clients still reading them.
type CompensationPayload struct {
	UseComponentBasedSalary bool                             `json:"useComponentBasedSalary"`
	SalaryComponents        []domain.EmployeeSalaryComponent `json:"salaryComponents"`
	BasicSalary             decimal.Decimal                  `json:"basicSalary"`
	HRA                     decimal.Decimal                  `json:"hra"`
	MedicalAllowance        decimal.Decimal                  `json:"medicalAllowance"`
	TravelAllowance         decimal.Decimal                  `json:"travelAllowance"`
	Conveyance              decimal.Decimal                  `json:"conveyance"`
	Incentive               decimal.Decimal                  `json:"incentive"`
	OtherBenefits           decimal.Decimal                  `json:"otherBenefits"`
	PFDeduction             decimal.Decimal                  `json:"pfDeduction"`
	ESIDeduction            decimal.Decimal                  `json:"esiDeduction"`
	TaxDeduction            decimal.Decimal                  `json:"taxDeduction"`
	LoanDeduction           decimal.Decimal                  `json:"loanDeduction"`
	OtherDeductions         decimal.Decimal                  `json:"otherDeductions"`
}

// ToDomain picks the authoritative representation from the flag.
func (p CompensationPayload) ToDomain() domain.CompensationStructure {
	if p.UseComponentBasedSalary {
		return domain.NewComponentCompensation(p.SalaryComponents)
	}
	return domain.NewLegacyCompensation(domain.LegacyCompensation{
		Basic:           p.BasicSalary,
		Housing:         p.HRA,
		Medical:         p.MedicalAllowance,
		Travel:          p.TravelAllowance,
		Conveyance:      p.Conveyance,
		Incentive:       p.Incentive,
		OtherBenefits:   p.OtherBenefits,
		PFDeduction:     p.PFDeduction,
		ESIDeduction:    p.ESIDeduction,
		TaxDeduction:    p.TaxDeduction,
		LoanDeduction:   p.LoanDeduction,
		OtherDeductions: p.OtherDeductions,
	})
}

// ToCompensationPayload converts a structure into its wire shape. Component-based
// structures always carry zeroed legacy fields.
func ToCompensationPayload(s domain.CompensationStructure) CompensationPayload {
	if s.UsesComponents() {
		components := s.Components
		if components == nil {
			components = []domain.EmployeeSalaryComponent{}
		}
		return CompensationPayload{UseComponentBasedSalary: true, SalaryComponents: components}
	}
	l := s.Legacy
	return CompensationPayload{
		SalaryComponents: []domain.EmployeeSalaryComponent{},
		BasicSalary:      l.Basic,
		HRA:              l.Housing,
		MedicalAllowance: l.Medical,
		TravelAllowance:  l.Travel,
		Conveyance:       l.Conveyance,
		Incentive:        l.Incentive,
		OtherBenefits:    l.OtherBenefits,
		PFDeduction:      l.PFDeduction,
		ESIDeduction:     l.ESIDeduction,
		TaxDeduction:     l.TaxDeduction,
		LoanDeduction:    l.LoanDeduction,
		OtherDeductions:  l.OtherDeductions,
	}
}

// LeavePayload carries probation and custom leave entitlements.
type LeavePayload struct {
	OnProbation      bool   `json:"onProbation"`
	ProbationEndDate string `json:"probationEndDate" binding:"omitempty,datetime=2006-01-02"`
	CasualLeave      *int   `json:"casualLeave" binding:"omitempty,min=0"`
	SickLeave        *int   `json:"sickLeave" binding:"omitempty,min=0"`
	AnnualLeave      *int   `json:"annualLeave" binding:"omitempty,min=0"`
}

// EmployeeRequest defines the data needed to create or fully replace an employee.
type EmployeeRequest struct {
	EmployeeCode    string              `json:"employeeCode"`
	Name            string              `json:"name" binding:"required"`
	Email           string              `json:"email" binding:"required,email"`
	Phone           string              `json:"phone" binding:"required"`
	Gender          string              `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth     string              `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Department      string              `json:"department" binding:"required"`
	Designation     string              `json:"designation" binding:"required"`
	DateOfJoining   string              `json:"dateOfJoining" binding:"required,datetime=2006-01-02"`
	Address         string              `json:"address"`
	Bank            domain.BankDetails  `json:"bank"`
	Compensation    CompensationPayload `json:"compensation"`
	Leave           LeavePayload        `json:"leave"`
	Status          string              `json:"status" binding:"omitempty,oneof=active inactive resigned terminated"`
	ResignationDate string              `json:"resignationDate" binding:"omitempty,datetime=2006-01-02"`
	TerminationDate string              `json:"terminationDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomain converts the request into an employee without identity or audit fields.
func (r EmployeeRequest) ToDomain() (domain.Employee, error) {
	dob, err := parseDate("dateOfBirth", r.DateOfBirth)
	if err != nil {
		return domain.Employee{}, err
	}
	doj, err := parseDate("dateOfJoining", r.DateOfJoining)
	if err != nil {
		return domain.Employee{}, err
	}
	probationEnd, err := parseOptionalDate("probationEndDate", r.Leave.ProbationEndDate)
	if err != nil {
		return domain.Employee{}, err
	}
	resigned, err := parseOptionalDate("resignationDate", r.ResignationDate)
	if err != nil {
		return domain.Employee{}, err
	}
	terminated, err := parseOptionalDate("terminationDate", r.TerminationDate)
	if err != nil {
		return domain.Employee{}, err
	}

	return domain.Employee{
		EmployeeCode:  r.EmployeeCode,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Gender:        r.Gender,
		DateOfBirth:   dob,
		Department:    r.Department,
		Designation:   r.Designation,
		DateOfJoining: doj,
		Address:       r.Address,
		Bank:          r.Bank,
		Compensation:  r.Compensation.ToDomain(),
		Leave: domain.LeaveConfig{
			OnProbation:      r.Leave.OnProbation,
			ProbationEndDate: probationEnd,
			CasualLeave:      r.Leave.CasualLeave,
			SickLeave:        r.Leave.SickLeave,
			AnnualLeave:      r.Leave.AnnualLeave,
		},
		Status:          domain.EmployeeStatus(r.Status),
		ResignationDate: resigned,
		TerminationDate: terminated,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID      string                   `json:"employeeID"`
	EmployeeCode    string                   `json:"employeeCode"`
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	Gender          string                   `json:"gender"`
	DateOfBirth     string                   `json:"dateOfBirth"`
	Department      string                   `json:"department"`
	Designation     string                   `json:"designation"`
	DateOfJoining   string                   `json:"dateOfJoining"`
	Address         string                   `json:"address"`
	Bank            domain.BankDetails       `json:"bank"`
	Compensation    CompensationPayload      `json:"compensation"`
	Statutory       domain.StatutoryEstimate `json:"statutory"`
	Leave           LeavePayload             `json:"leave"`
	Status          domain.EmployeeStatus    `json:"status"`
	ResignationDate string                   `json:"resignationDate,omitempty"`
	TerminationDate string                   `json:"terminationDate,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	CreatedBy       string                   `json:"createdBy"`
	LastUpdatedAt   time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy   string                   `json:"lastUpdatedBy"`
}

// ListEmployeesResponse wraps a page of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	NextToken string             `json:"nextToken,omitempty"`
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		EmployeeCode:  e.EmployeeCode,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Gender:        e.Gender,
		DateOfBirth:   e.DateOfBirth.Format(domain.DateLayout),
		Department:    e.Department,
		Designation:   e.Designation,
		DateOfJoining: e.DateOfJoining.Format(domain.DateLayout),
		Address:       e.Address,
		Bank:          e.Bank,
		Compensation:  ToCompensationPayload(e.Compensation),
		Statutory:     e.Statutory,
		Leave: LeavePayload{
			OnProbation:      e.Leave.OnProbation,
			ProbationEndDate: formatOptionalDate(e.Leave.ProbationEndDate),
			CasualLeave:      e.Leave.CasualLeave,
			SickLeave:        e.Leave.SickLeave,
			AnnualLeave:      e.Leave.AnnualLeave,
		},
		Status:          e.Status,
		ResignationDate: formatOptionalDate(e.ResignationDate),
		TerminationDate: formatOptionalDate(e.TerminationDate),
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToListEmployeesResponse converts a page of employees to its response DTO
func ToListEmployeesResponse(employees []domain.Employee, nextToken string) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: res, NextToken: nextToken}
}
