package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// Roster column headers, matched exactly.
const (
	ColName             = "Name"
	ColEmail            = "Email"
	ColPhone            = "Phone"
	ColGender           = "Gender"
	ColDateOfBirth      = "Date of Birth"
	ColDepartment       = "Department"
	ColDesignation      = "Designation"
	ColDateOfJoining    = "Date of Joining"
	ColStatus           = "Status"
	ColResignationDate  = "Resignation Date"
	ColTerminationDate  = "Termination Date"
	ColEmployeeCode     = "Employee Code"
	ColAddress          = "Address"
	ColBankName         = "Bank Name"
	ColAccountNumber    = "Account Number"
	ColIFSC             = "IFSC"
	ColPAN              = "PAN"
	ColProbation        = "Probation"
	ColProbationEndDate = "Probation End Date"
	ColCasualLeave      = "Casual Leave"
	ColSickLeave        = "Sick Leave"
	ColAnnualLeave      = "Annual Leave"
	ColBasicSalary      = "Basic Salary"
	ColHRA              = "HRA"
	ColMedical          = "Medical Allowance"
	ColTravel           = "Travel Allowance"
	ColConveyance       = "Conveyance"
	ColIncentive        = "Incentive"
	ColOtherBenefits    = "Other Benefits"
	ColPF               = "PF"
	ColESI              = "ESI"
	ColTax              = "Tax"
	ColLoan             = "Loan"
	ColOtherDeductions  = "Other Deductions"
)

// RequiredRosterColumns are checked together so a row gets one error naming all of them.
var RequiredRosterColumns = []string{
	ColName, ColEmail, ColPhone, ColGender, ColDateOfBirth, ColDepartment, ColDesignation, ColDateOfJoining,
}

// Plausible Excel serial range for the dates on a roster (1908 to 2119).
// The floor stays above four-digit numbers so a bare year is never read as a serial.
const (
	minExcelSerial = 3000
	maxExcelSerial = 80000
)

type rosterValidator struct {
	validate *validator.Validate
}

// NewRosterValidator creates the per-row roster validator. It holds no state between rows.
func NewRosterValidator() portssvc.RosterValidator {
	return &rosterValidator{validate: validator.New()}
}

var _ portssvc.RosterValidator = (*rosterValidator)(nil)

func (v *rosterValidator) ValidateRow(row domain.RosterRow, rowNumber int) (*domain.RosterRecord, *domain.RowError) {
	fail := func(format string, args ...any) (*domain.RosterRecord, *domain.RowError) {
		return nil, &domain.RowError{Row: rowNumber, Message: fmt.Sprintf(format, args...)}
	}
	get := func(col string) string {
		return strings.TrimSpace(row[col])
	}

	var missing []string
	for _, col := range RequiredRosterColumns {
		if get(col) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fail("Missing required fields: %s", strings.Join(missing, ", "))
	}

	email := get(ColEmail)
	if v.validate.Var(email, "email") != nil {
		return fail("Invalid email format '%s'", email)
	}

	gender := strings.ToLower(get(ColGender))
	if v.validate.Var(gender, "oneof=male female other") != nil {
		return fail("Invalid gender '%s'. Must be male, female, or other", get(ColGender))
	}

	dob, ok := v.parseDate(get(ColDateOfBirth))
	if !ok {
		return fail("Invalid %s '%s'. Use YYYY-MM-DD format", ColDateOfBirth, get(ColDateOfBirth))
	}
	doj, ok := v.parseDate(get(ColDateOfJoining))
	if !ok {
		return fail("Invalid %s '%s'. Use YYYY-MM-DD format", ColDateOfJoining, get(ColDateOfJoining))
	}

	status := strings.ToLower(get(ColStatus))
	if status == "" {
		status = string(domain.StatusActive)
	}
	if v.validate.Var(status, "oneof=active inactive resigned terminated") != nil {
		return fail("Invalid status '%s'. Must be active, inactive, resigned, or terminated", get(ColStatus))
	}

	resignationDate, ok := v.parseOptionalDate(get(ColResignationDate))
	if !ok {
		return fail("Invalid %s '%s'. Use YYYY-MM-DD format", ColResignationDate, get(ColResignationDate))
	}
	terminationDate, ok := v.parseOptionalDate(get(ColTerminationDate))
	if !ok {
		return fail("Invalid %s '%s'. Use YYYY-MM-DD format", ColTerminationDate, get(ColTerminationDate))
	}
	if domain.EmployeeStatus(status) == domain.StatusResigned && resignationDate == nil {
		return fail("%s is required when status is resigned", ColResignationDate)
	}
	if domain.EmployeeStatus(status) == domain.StatusTerminated && terminationDate == nil {
		return fail("%s is required when status is terminated", ColTerminationDate)
	}

	probationEnd, ok := v.parseOptionalDate(get(ColProbationEndDate))
	if !ok {
		return fail("Invalid %s '%s'. Use YYYY-MM-DD format", ColProbationEndDate, get(ColProbationEndDate))
	}
	leave := domain.LeaveConfig{
		OnProbation:      parseYesNo(get(ColProbation)),
		ProbationEndDate: probationEnd,
	}
	for _, entitlement := range []struct {
		col    string
		target **int
	}{
		{ColCasualLeave, &leave.CasualLeave},
		{ColSickLeave, &leave.SickLeave},
		{ColAnnualLeave, &leave.AnnualLeave},
	} {
		raw := get(entitlement.col)
		if raw == "" {
			continue
		}
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return fail("Invalid %s '%s'. Must be a whole number of days", entitlement.col, raw)
		}
		*entitlement.target = &days
	}

	employee := domain.Employee{
		EmployeeCode:  get(ColEmployeeCode),
		Name:          get(ColName),
		Email:         email,
		Phone:         get(ColPhone),
		Gender:        gender,
		DateOfBirth:   dob,
		Department:    get(ColDepartment),
		Designation:   get(ColDesignation),
		DateOfJoining: doj,
		Address:       get(ColAddress),
		Bank: domain.BankDetails{
			BankName:      get(ColBankName),
			AccountNumber: get(ColAccountNumber),
			IFSC:          strings.ToUpper(get(ColIFSC)),
			PAN:           strings.ToUpper(get(ColPAN)),
		},
		Compensation: domain.NewLegacyCompensation(domain.LegacyCompensation{
			Basic:           domain.CoerceAmount(get(ColBasicSalary)),
			Housing:         domain.CoerceAmount(get(ColHRA)),
			Medical:         domain.CoerceAmount(get(ColMedical)),
			Travel:          domain.CoerceAmount(get(ColTravel)),
			Conveyance:      domain.CoerceAmount(get(ColConveyance)),
			Incentive:       domain.CoerceAmount(get(ColIncentive)),
			OtherBenefits:   domain.CoerceAmount(get(ColOtherBenefits)),
			PFDeduction:     domain.CoerceAmount(get(ColPF)),
			ESIDeduction:    domain.CoerceAmount(get(ColESI)),
			TaxDeduction:    domain.CoerceAmount(get(ColTax)),
			LoanDeduction:   domain.CoerceAmount(get(ColLoan)),
			OtherDeductions: domain.CoerceAmount(get(ColOtherDeductions)),
		}),
		Leave:           leave,
		Status:          domain.EmployeeStatus(status),
		ResignationDate: resignationDate,
		TerminationDate: terminationDate,
	}
	return &domain.RosterRecord{RowNumber: rowNumber, Employee: employee}, nil
}

// parseDate accepts a strict YYYY-MM-DD date or an Excel serial date cell.
func (v *rosterValidator) parseDate(value string) (time.Time, bool) {
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < minExcelSerial || serial > maxExcelSerial {
			return time.Time{}, false
		}
		parsed, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		value = parsed.Format(domain.DateLayout)
	}
	if v.validate.Var(value, "datetime="+domain.DateLayout) != nil {
		return time.Time{}, false
	}
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func (v *rosterValidator) parseOptionalDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	parsed, ok := v.parseDate(value)
	if !ok {
		return nil, false
	}
	return &parsed, true
}

func parseYesNo(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
