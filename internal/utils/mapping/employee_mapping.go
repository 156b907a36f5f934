package mapping

import (
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelEmployee converts a domain Employee to its table row and ordered assignment rows.
// Component-based structures store zeroed legacy columns.
func ToModelEmployee(d domain.Employee) (models.Employee, []models.EmployeeSalaryComponent) {
	m := models.Employee{
		EmployeeID:    d.EmployeeID,
		EmployeeCode:  d.EmployeeCode,
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		Gender:        d.Gender,
		DateOfBirth:   d.DateOfBirth,
		Department:    d.Department,
		Designation:   d.Designation,
		DateOfJoining: d.DateOfJoining,
		Address:       d.Address,

		BankName:      d.Bank.BankName,
		AccountNumber: d.Bank.AccountNumber,
		IFSC:          d.Bank.IFSC,
		PAN:           d.Bank.PAN,

		PFEmployee:  d.Statutory.PFEmployee,
		PFEmployer:  d.Statutory.PFEmployer,
		ESIEmployee: d.Statutory.ESIEmployee,
		ESIEmployer: d.Statutory.ESIEmployer,

		OnProbation:      d.Leave.OnProbation,
		ProbationEndDate: d.Leave.ProbationEndDate,
		CasualLeave:      toInt32Ptr(d.Leave.CasualLeave),
		SickLeave:        toInt32Ptr(d.Leave.SickLeave),
		AnnualLeave:      toInt32Ptr(d.Leave.AnnualLeave),

		Status:          string(d.Status),
		ResignationDate: d.ResignationDate,
		TerminationDate: d.TerminationDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}

	var legacy domain.LegacyCompensation
	var assignments []models.EmployeeSalaryComponent
	if d.Compensation.UsesComponents() {
		m.UseComponentBasedSalary = true
		assignments = make([]models.EmployeeSalaryComponent, len(d.Compensation.Components))
		for i, c := range d.Compensation.Components {
			assignments[i] = models.EmployeeSalaryComponent{
				EmployeeID:        d.EmployeeID,
				SalaryComponentID: c.SalaryComponentID,
				Position:          int32(i),
				Category:          string(c.Category),
				ComponentType:     c.ComponentType,
				NameInPayslip:     c.NameInPayslip,
				IsActive:          c.IsActive,
			}
			if c.Amount != nil {
				assignments[i].Amount = decimal.NewNullDecimal(*c.Amount)
			}
		}
	} else {
		legacy = d.Compensation.Legacy
	}
	m.BasicSalary = legacy.Basic
	m.HRA = legacy.Housing
	m.MedicalAllowance = legacy.Medical
	m.TravelAllowance = legacy.Travel
	m.Conveyance = legacy.Conveyance
	m.Incentive = legacy.Incentive
	m.OtherBenefits = legacy.OtherBenefits
	m.PFDeduction = legacy.PFDeduction
	m.ESIDeduction = legacy.ESIDeduction
	m.TaxDeduction = legacy.TaxDeduction
	m.LoanDeduction = legacy.LoanDeduction
	m.OtherDeductions = legacy.OtherDeductions

	return m, assignments
}

// ToDomainEmployee rebuilds a domain Employee. The flag decides which compensation
// representation is authoritative; assignments are ignored for legacy rows.
func ToDomainEmployee(m models.Employee, assignments []models.EmployeeSalaryComponent) domain.Employee {
	d := domain.Employee{
		EmployeeID:    m.EmployeeID,
		EmployeeCode:  m.EmployeeCode,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Gender:        m.Gender,
		DateOfBirth:   m.DateOfBirth,
		Department:    m.Department,
		Designation:   m.Designation,
		DateOfJoining: m.DateOfJoining,
		Address:       m.Address,
		Bank: domain.BankDetails{
			BankName:      m.BankName,
			AccountNumber: m.AccountNumber,
			IFSC:          m.IFSC,
			PAN:           m.PAN,
		},
		Statutory: domain.StatutoryEstimate{
			PFEmployee:  m.PFEmployee,
			PFEmployer:  m.PFEmployer,
			ESIEmployee: m.ESIEmployee,
			ESIEmployer: m.ESIEmployer,
		},
		Leave: domain.LeaveConfig{
			OnProbation:      m.OnProbation,
			ProbationEndDate: m.ProbationEndDate,
			CasualLeave:      toIntPtr(m.CasualLeave),
			SickLeave:        toIntPtr(m.SickLeave),
			AnnualLeave:      toIntPtr(m.AnnualLeave),
		},
		Status:          domain.EmployeeStatus(m.Status),
		ResignationDate: m.ResignationDate,
		TerminationDate: m.TerminationDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}

	if !m.UseComponentBasedSalary {
		d.Compensation = domain.NewLegacyCompensation(domain.LegacyCompensation{
			Basic:           m.BasicSalary,
			Housing:         m.HRA,
			Medical:         m.MedicalAllowance,
			Travel:          m.TravelAllowance,
			Conveyance:      m.Conveyance,
			Incentive:       m.Incentive,
			OtherBenefits:   m.OtherBenefits,
			PFDeduction:     m.PFDeduction,
			ESIDeduction:    m.ESIDeduction,
			TaxDeduction:    m.TaxDeduction,
			LoanDeduction:   m.LoanDeduction,
			OtherDeductions: m.OtherDeductions,
		})
		return d
	}

	components := make([]domain.EmployeeSalaryComponent, len(assignments))
	for i, a := range assignments {
		components[i] = domain.EmployeeSalaryComponent{
			SalaryComponentID: a.SalaryComponentID,
			Category:          domain.ComponentCategory(a.Category),
			ComponentType:     a.ComponentType,
			NameInPayslip:     a.NameInPayslip,
			IsActive:          a.IsActive,
		}
		if a.Amount.Valid {
			amount := a.Amount.Decimal
			components[i].Amount = &amount
		}
	}
	d.Compensation = domain.CompensationStructure{Kind: domain.ComponentCompensationKind, Components: components}
	return d
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
