package handlers_test

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SalaryComponentService ---
type MockSalaryComponentService struct {
	mock.Mock
}

func (m *MockSalaryComponentService) GetSalaryComponent(ctx context.Context, componentID string) (*domain.SalaryComponent, error) {
	args := m.Called(ctx, componentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryComponent), args.Error(1)
}
func (m *MockSalaryComponentService) ListSalaryComponents(ctx context.Context, filter domain.ComponentFilter) ([]domain.SalaryComponent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryComponent), args.Error(1)
}
func (m *MockSalaryComponentService) ListSelectableComponents(ctx context.Context, category domain.ComponentCategory) ([]domain.SalaryComponent, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryComponent), args.Error(1)
}
func (m *MockSalaryComponentService) AddSalaryComponent(ctx context.Context, component domain.SalaryComponent, userID string) (*domain.SalaryComponent, error) {
	args := m.Called(ctx, component, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryComponent), args.Error(1)
}
func (m *MockSalaryComponentService) UpdateSalaryComponent(ctx context.Context, componentID string, req dto.SalaryComponentRequest, userID string) (*domain.SalaryComponent, error) {
	args := m.Called(ctx, componentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryComponent), args.Error(1)
}
func (m *MockSalaryComponentService) RemoveSalaryComponent(ctx context.Context, componentID string, userID string) (bool, error) {
	args := m.Called(ctx, componentID, userID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.SalaryComponentSvcFacade = (*MockSalaryComponentService)(nil)

// --- Mock CompensationService ---
type MockCompensationService struct {
	mock.Mock
}

func (m *MockCompensationService) BuildCompensation(ctx context.Context, req dto.BuildCompensationRequest) (*domain.CompensationStructure, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompensationStructure), args.Error(1)
}
func (m *MockCompensationService) ComputeTotals(ctx context.Context, structure domain.CompensationStructure) (domain.CompensationTotals, error) {
	args := m.Called(ctx, structure)
	return args.Get(0).(domain.CompensationTotals), args.Error(1)
}
func (m *MockCompensationService) EstimateStatutory(ctx context.Context, structure domain.CompensationStructure) (domain.StatutoryEstimate, error) {
	args := m.Called(ctx, structure)
	return args.Get(0).(domain.StatutoryEstimate), args.Error(1)
}
func (m *MockCompensationService) EstimatePfEsi(ctx context.Context, basicSalary decimal.Decimal) domain.StatutoryEstimate {
	args := m.Called(ctx, basicSalary)
	return args.Get(0).(domain.StatutoryEstimate)
}

var _ portssvc.CompensationSvc = (*MockCompensationService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, employee domain.Employee, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, employee, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, limit int, nextToken string) ([]domain.Employee, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.String(1), args.Error(2)
}
func (m *MockEmployeeService) GetEmployeeTotals(ctx context.Context, employeeID string) (domain.CompensationTotals, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(domain.CompensationTotals), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, employee domain.Employee, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, employee, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateCompensation(ctx context.Context, employeeID string, structure domain.CompensationStructure, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, structure, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock QuotaGate ---
type MockQuotaGate struct {
	mock.Mock
}

func (m *MockQuotaGate) GetQuotaStatus(ctx context.Context) (domain.QuotaStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.QuotaStatus), args.Error(1)
}

var _ portssvc.QuotaGate = (*MockQuotaGate)(nil)

// --- Mock RosterImportService ---
type MockRosterImportService struct {
	mock.Mock
}

func (m *MockRosterImportService) SubmitRoster(ctx context.Context, fileName string, data []byte, userID string) (domain.ImportOutcome, error) {
	args := m.Called(ctx, fileName, data, userID)
	return args.Get(0).(domain.ImportOutcome), args.Error(1)
}

var _ portssvc.RosterImportSvc = (*MockRosterImportService)(nil)
