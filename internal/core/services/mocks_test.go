package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockSalaryComponentRepository is a mock type for the SalaryComponentRepositoryFacade interface
type MockSalaryComponentRepository struct {
	mock.Mock
}

func (m *MockSalaryComponentRepository) FindSalaryComponentByID(ctx context.Context, componentID string) (*domain.SalaryComponent, error) {
	args := m.Called(ctx, componentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryComponent), args.Error(1)
}

func (m *MockSalaryComponentRepository) FindSalaryComponentsByIDs(ctx context.Context, componentIDs []string) (map[string]domain.SalaryComponent, error) {
	args := m.Called(ctx, componentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SalaryComponent), args.Error(1)
}

func (m *MockSalaryComponentRepository) ListSalaryComponents(ctx context.Context, filter domain.ComponentFilter) ([]domain.SalaryComponent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryComponent), args.Error(1)
}

func (m *MockSalaryComponentRepository) CountComponentReferences(ctx context.Context, componentID string) (int, error) {
	args := m.Called(ctx, componentID)
	return args.Int(0), args.Error(1)
}

func (m *MockSalaryComponentRepository) SaveSalaryComponent(ctx context.Context, component domain.SalaryComponent) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockSalaryComponentRepository) UpdateSalaryComponent(ctx context.Context, component domain.SalaryComponent) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockSalaryComponentRepository) DeactivateSalaryComponent(ctx context.Context, componentID string, userID string, now time.Time) error {
	args := m.Called(ctx, componentID, userID, now)
	return args.Error(0)
}

func (m *MockSalaryComponentRepository) DeleteSalaryComponent(ctx context.Context, componentID string) error {
	args := m.Called(ctx, componentID)
	return args.Error(0)
}

// MockEmployeeRepository is a mock type for the EmployeeRepositoryWithTx interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, limit int, after *domain.EmployeeCursor) ([]domain.Employee, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockEmployeeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockQuotaGate is a mock type for the QuotaGate interface
type MockQuotaGate struct {
	mock.Mock
}

func (m *MockQuotaGate) GetQuotaStatus(ctx context.Context) (domain.QuotaStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.QuotaStatus), args.Error(1)
}

// MockEmployeeCreator is a mock type for the EmployeeCreator interface
type MockEmployeeCreator struct {
	mock.Mock
}

func (m *MockEmployeeCreator) CreateEmployee(ctx context.Context, employee domain.Employee, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, employee, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// MockRosterDecoder is a mock type for the RosterDecoder interface
type MockRosterDecoder struct {
	mock.Mock
}

func (m *MockRosterDecoder) Decode(fileName string, data []byte) ([]domain.SheetRow, error) {
	args := m.Called(fileName, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SheetRow), args.Error(1)
}

// MockEventTracker is a mock type for the EventTracker interface
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}
