package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func employeeBody() map[string]any {
	return map[string]any{
		"name":          "Asha Rao",
		"email":         "asha@example.com",
		"phone":         "9876543210",
		"gender":        "female",
		"dateOfBirth":   "1992-04-12",
		"department":    "Engineering",
		"designation":   "Engineer",
		"dateOfJoining": "2023-06-01",
		"compensation":  map[string]any{"basicSalary": "20000", "hra": "8000"},
	}
}

func savedEmployee() *domain.Employee {
	return &domain.Employee{
		EmployeeID:   "emp-1",
		EmployeeCode: "EMP-1A2B3C4D",
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		Status:       domain.StatusActive,
		Compensation: domain.NewLegacyCompensation(domain.LegacyCompensation{
			Basic:   decimal.NewFromInt(20000),
			Housing: decimal.NewFromInt(8000),
		}),
	}
}

func (suite *HandlerTestSuite) TestCreateEmployee_Success() {
	suite.employees.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Email == "asha@example.com" &&
			e.Compensation.Kind == domain.LegacyCompensationKind &&
			e.Compensation.Legacy.Housing.Equal(decimal.NewFromInt(8000)) &&
			e.DateOfJoining.Format(domain.DateLayout) == "2023-06-01"
	}), testUserID).Return(savedEmployee(), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/employees", employeeBody())

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.EmployeeResponse](suite, w)
	suite.Equal("EMP-1A2B3C4D", resp.EmployeeCode)
	suite.False(resp.Compensation.UseComponentBasedSalary)
	suite.employees.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateEmployee_ErrorStatuses() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"quota reached", fmt.Errorf("%w: plan allows 50 employees", apperrors.ErrQuotaExceeded), http.StatusUnprocessableEntity},
		{"duplicate email", fmt.Errorf("%w: employee (employees_email_key)", apperrors.ErrDuplicate), http.StatusConflict},
		{"lifecycle rule", apperrors.NewValidationError("resignationDate", "is required when status is resigned"), http.StatusBadRequest},
		{"unexpected", assertAnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.employees.On("CreateEmployee", mock.Anything, mock.Anything, testUserID).Return(nil, tt.err).Once()

			w := suite.doJSON(http.MethodPost, "/api/v1/employees", employeeBody())

			suite.Equal(tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestCreateEmployee_RejectsBadInput() {
	body := employeeBody()
	body["dateOfBirth"] = "12/04/1992"

	w := suite.doJSON(http.MethodPost, "/api/v1/employees", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.employees.AssertNotCalled(suite.T(), "CreateEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListEmployees_PassesPaging() {
	suite.employees.On("ListEmployees", mock.Anything, 2, "tok-1").
		Return([]domain.Employee{*savedEmployee()}, "tok-2", nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/employees?limit=2&nextToken=tok-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ListEmployeesResponse](suite, w)
	suite.Len(resp.Employees, 1)
	suite.Equal("tok-2", resp.NextToken)
}

func (suite *HandlerTestSuite) TestListEmployees_LimitOutOfRange() {
	w := suite.doJSON(http.MethodGet, "/api/v1/employees?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.employees.AssertNotCalled(suite.T(), "ListEmployees", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetEmployee_NotFound() {
	suite.employees.On("GetEmployee", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/employees/nope", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateCompensation_ComponentBased() {
	amount := decimal.NewFromInt(25000)
	payload := dto.CompensationPayload{
		UseComponentBasedSalary: true,
		SalaryComponents: []domain.EmployeeSalaryComponent{{
			SalaryComponentID: "comp-basic",
			Category:          domain.Earnings,
			ComponentType:     domain.BasicComponentType,
			NameInPayslip:     "Basic",
			Amount:            &amount,
			IsActive:          true,
		}},
	}
	updated := savedEmployee()
	updated.Compensation = payload.ToDomain()
	suite.employees.On("UpdateCompensation", mock.Anything, "emp-1", mock.MatchedBy(func(s domain.CompensationStructure) bool {
		return s.UsesComponents() && len(s.Components) == 1 && s.Components[0].AmountOrZero().Equal(amount)
	}), testUserID).Return(updated, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/employees/emp-1/compensation", payload)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.EmployeeResponse](suite, w)
	suite.True(resp.Compensation.UseComponentBasedSalary)
	suite.True(resp.Compensation.BasicSalary.IsZero(), "legacy fields are zeroed for component structures")
	suite.employees.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetEmployeeTotals() {
	suite.employees.On("GetEmployeeTotals", mock.Anything, "emp-1").Return(domain.CompensationTotals{
		Gross:      decimal.NewFromInt(28000),
		Deductions: decimal.NewFromInt(2400),
		Net:        decimal.NewFromInt(25600),
	}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/employees/emp-1/compensation/totals", nil)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.CompensationTotalsResponse](suite, w)
	suite.True(decimal.NewFromInt(25600).Equal(resp.Net))
}

func (suite *HandlerTestSuite) TestImportRoster_Success() {
	content := []byte("Name,Email\nAsha,asha@example.com\n")
	outcome := domain.ImportOutcome{
		State:            domain.ImportCompleted,
		Attempted:        4,
		Validated:        1,
		ValidationFailed: 3,
		Created:          1,
		ValidationErrors: []domain.RowError{
			{Row: 2, Message: "Invalid gender 'x'. Must be male, female, or other"},
			{Row: 3, Message: "Missing required fields: Phone"},
			{Row: 4, Message: "Invalid email format 'bad'"},
		},
	}
	suite.imports.On("SubmitRoster", mock.Anything, "roster.csv", content, testUserID).Return(outcome, nil).Once()

	w := suite.doUpload("roster.csv", content)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.ImportRosterResponse](suite, w)
	suite.Equal(domain.ImportCompleted, resp.State)
	suite.Equal(1, resp.Created)
	suite.Len(resp.ValidationErrors, 3)
	suite.Equal([]string{
		"Row 2: Invalid gender 'x'. Must be male, female, or other",
		"Row 3: Missing required fields: Phone",
		"...and 1 more",
	}, resp.Summary)
	suite.NotNil(resp.CreationErrors)
}

func (suite *HandlerTestSuite) TestImportRoster_ParseErrorIsUnprocessable() {
	content := []byte("garbage")
	suite.imports.On("SubmitRoster", mock.Anything, "roster.xlsx", content, testUserID).
		Return(domain.ImportOutcome{State: domain.ImportAborted}, &apperrors.ParseError{Reason: "file is empty"}).Once()

	w := suite.doUpload("roster.xlsx", content)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), "file is empty")
}

func (suite *HandlerTestSuite) TestImportRoster_MissingFile() {
	w := suite.do(http.MethodPost, "/api/v1/employees/import", strings.NewReader(""), "multipart/form-data; boundary=xyz")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.imports.AssertNotCalled(suite.T(), "SubmitRoster", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestImportRoster_FileTooLarge() {
	w := suite.doUpload("roster.csv", bytes.Repeat([]byte("a"), testMaxUpload+1))

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
	suite.imports.AssertNotCalled(suite.T(), "SubmitRoster", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestImportRoster_RateLimited() {
	content := []byte("Name\nAsha\n")
	suite.imports.On("SubmitRoster", mock.Anything, "roster.csv", content, testUserID).
		Return(domain.ImportOutcome{State: domain.ImportCompleted}, nil).Times(3)

	for i := 0; i < 3; i++ {
		suite.Equal(http.StatusOK, suite.doUpload("roster.csv", content).Code)
	}
	w := suite.doUpload("roster.csv", content)

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.imports.AssertNumberOfCalls(suite.T(), "SubmitRoster", 3)
}
