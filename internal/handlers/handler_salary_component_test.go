package handlers_test

import (
	"net/http"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func basicEarning() map[string]any {
	return map[string]any{
		"category":              "earnings",
		"componentType":         "basic",
		"nameInPayslip":         "Basic",
		"calculationType":       "flat_amount",
		"calculationValue":      "20000",
		"partOfSalaryStructure": true,
	}
}

func (suite *HandlerTestSuite) TestAddSalaryComponent_Success() {
	suite.catalog.On("AddSalaryComponent", mock.Anything, mock.MatchedBy(func(c domain.SalaryComponent) bool {
		return c.NameInPayslip == "Basic" && c.IsActive && c.ShowInPayslip &&
			c.CalculationValue.Equal(decimal.NewFromInt(20000))
	}), testUserID).Return(&domain.SalaryComponent{ComponentID: "comp-1", NameInPayslip: "Basic"}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/salary-components", basicEarning())

	suite.Equal(http.StatusCreated, w.Code)
	resp := decodeBody[dto.SalaryComponentResponse](suite, w)
	suite.Equal("comp-1", resp.ComponentID)
	suite.catalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAddSalaryComponent_BindingFailure() {
	body := basicEarning()
	body["category"] = "bonuses"

	w := suite.doJSON(http.MethodPost, "/api/v1/salary-components", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.catalog.AssertNotCalled(suite.T(), "AddSalaryComponent", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddSalaryComponent_ValidationErrorNamesField() {
	suite.catalog.On("AddSalaryComponent", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError("componentType", "is required for earnings")).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/salary-components", basicEarning())

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := decodeBody[map[string]any](suite, w)
	suite.Equal("componentType", resp["field"])
}

func (suite *HandlerTestSuite) TestUpdateSalaryComponent_InUseFieldsConflict() {
	suite.catalog.On("UpdateSalaryComponent", mock.Anything, "comp-1", mock.Anything, testUserID).
		Return(nil, &apperrors.ImmutableFieldError{Resource: "salary component", Fields: []string{"calculationValue"}}).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/salary-components/comp-1", basicEarning())

	suite.Equal(http.StatusConflict, w.Code)
	resp := decodeBody[map[string]any](suite, w)
	suite.Equal([]any{"calculationValue"}, resp["fields"])
}

func (suite *HandlerTestSuite) TestUpdateSalaryComponent_PassesUnsetFlags() {
	suite.catalog.On("UpdateSalaryComponent", mock.Anything, "comp-1", mock.MatchedBy(func(r dto.SalaryComponentRequest) bool {
		return r.NameInPayslip == "Basic Pay" && r.IsActive == nil && r.ShowInPayslip == nil
	}), testUserID).Return(&domain.SalaryComponent{ComponentID: "comp-1", NameInPayslip: "Basic Pay"}, nil).Once()

	body := basicEarning()
	body["nameInPayslip"] = "Basic Pay"
	w := suite.doJSON(http.MethodPut, "/api/v1/salary-components/comp-1", body)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.catalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetSalaryComponent_NotFound() {
	suite.catalog.On("GetSalaryComponent", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/salary-components/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListSalaryComponents() {
	tests := []struct {
		name       string
		query      string
		setup      func()
		wantStatus int
	}{
		{
			name:  "filtered listing",
			query: "?category=deductions&activeOnly=true",
			setup: func() {
				suite.catalog.On("ListSalaryComponents", mock.Anything, domain.ComponentFilter{
					Category: domain.Deductions, ActiveOnly: true,
				}).Return([]domain.SalaryComponent{{ComponentID: "d-1"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "selection for a category",
			query: "?category=earnings&selection=true",
			setup: func() {
				suite.catalog.On("ListSelectableComponents", mock.Anything, domain.Earnings).
					Return([]domain.SalaryComponent{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "selection needs a category", query: "?selection=true", setup: func() {}, wantStatus: http.StatusBadRequest},
		{name: "unknown category", query: "?category=perks", setup: func() {}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.setup()
			w := suite.doJSON(http.MethodGet, "/api/v1/salary-components"+tt.query, nil)
			assert.Equal(suite.T(), tt.wantStatus, w.Code, w.Body.String())
		})
	}
	suite.catalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRemoveSalaryComponent_ReportsDeactivation() {
	suite.catalog.On("RemoveSalaryComponent", mock.Anything, "comp-1", testUserID).Return(true, nil).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/salary-components/comp-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.RemoveSalaryComponentResponse](suite, w)
	suite.Equal("comp-1", resp.ComponentID)
	suite.True(resp.Deactivated)
}
