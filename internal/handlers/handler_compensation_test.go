package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var assertAnError = errors.New("connection reset")

func (suite *HandlerTestSuite) TestBuildCompensation_ReturnsTotalsAndEstimate() {
	basic := decimal.NewFromInt(20000)
	structure := domain.NewComponentCompensation([]domain.EmployeeSalaryComponent{{
		SalaryComponentID: "comp-basic",
		Category:          domain.Earnings,
		ComponentType:     domain.BasicComponentType,
		NameInPayslip:     "Basic",
		Amount:            &basic,
		IsActive:          true,
	}})
	suite.compensation.On("BuildCompensation", mock.Anything, mock.MatchedBy(func(r dto.BuildCompensationRequest) bool {
		return len(r.Toggles) == 1 && r.Toggles[0] == "comp-basic" && r.Amounts["comp-basic"] == "20,000"
	})).Return(&structure, nil).Once()
	suite.compensation.On("ComputeTotals", mock.Anything, structure).Return(domain.CompensationTotals{
		Gross: basic, Deductions: decimal.Zero, Net: basic,
	}, nil).Once()
	suite.compensation.On("EstimateStatutory", mock.Anything, structure).Return(domain.StatutoryEstimate{
		PFEmployee: decimal.NewFromInt(2400),
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/compensation/build", map[string]any{
		"toggles": []string{"comp-basic"},
		"amounts": map[string]any{"comp-basic": "20,000"},
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.BuildCompensationResponse](suite, w)
	suite.True(resp.Compensation.UseComponentBasedSalary)
	suite.True(basic.Equal(resp.Totals.Net))
	suite.True(decimal.NewFromInt(2400).Equal(resp.Statutory.PFEmployee))
	suite.compensation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestBuildCompensation_EstimateFailure() {
	structure := domain.NewComponentCompensation(nil)
	suite.compensation.On("BuildCompensation", mock.Anything, mock.Anything).Return(&structure, nil).Once()
	suite.compensation.On("ComputeTotals", mock.Anything, structure).Return(domain.CompensationTotals{}, nil).Once()
	suite.compensation.On("EstimateStatutory", mock.Anything, structure).
		Return(domain.StatutoryEstimate{}, apperrors.NewValidationError("compensation", "unknown compensation kind")).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/compensation/build", map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	suite.compensation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestComputeTotals() {
	suite.compensation.On("ComputeTotals", mock.Anything, mock.MatchedBy(func(s domain.CompensationStructure) bool {
		return !s.UsesComponents() && s.Legacy.TaxDeduction.Equal(decimal.NewFromInt(500))
	})).Return(domain.CompensationTotals{
		Gross: decimal.NewFromInt(10000), Deductions: decimal.NewFromInt(500), Net: decimal.NewFromInt(9500),
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/compensation/totals", map[string]any{
		"basicSalary":  "10000",
		"taxDeduction": "500",
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.CompensationTotalsResponse](suite, w)
	suite.True(decimal.NewFromInt(9500).Equal(resp.Net))
}

func (suite *HandlerTestSuite) TestStatutoryEstimate_CoercesInput() {
	tests := []struct {
		name  string
		query string
		want  decimal.Decimal
	}{
		{"plain amount", "?basic=15000", decimal.NewFromInt(15000)},
		{"unparseable counts as zero", "?basic=abc", decimal.Zero},
		{"missing counts as zero", "", decimal.Zero},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			pf := tt.want.Mul(decimal.RequireFromString("0.12"))
			suite.compensation.On("EstimatePfEsi", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
				return d.Equal(tt.want)
			})).Return(domain.StatutoryEstimate{PFEmployee: pf, PFEmployer: pf}).Once()

			w := suite.doJSON(http.MethodGet, "/api/v1/compensation/statutory-estimate"+tt.query, nil)

			suite.Equal(http.StatusOK, w.Code)
			resp := decodeBody[domain.StatutoryEstimate](suite, w)
			suite.True(pf.Equal(resp.PFEmployee))
		})
	}
	suite.compensation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetQuota() {
	suite.quota.On("GetQuotaStatus", mock.Anything).Return(domain.QuotaStatus{
		Limit: 50, CurrentCount: 48, Remaining: 2, CanAddMore: true, Message: "2 of 50 employee slots remaining",
	}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/quota", nil)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.QuotaResponse](suite, w)
	suite.Equal(2, resp.Remaining)
	suite.True(resp.CanAddMore)
}

func (suite *HandlerTestSuite) TestGetQuota_Failure() {
	suite.quota.On("GetQuotaStatus", mock.Anything).Return(domain.QuotaStatus{}, assertAnError).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/quota", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}
