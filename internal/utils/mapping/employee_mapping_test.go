package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/SscSPs/hr_payroll_admin/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeMapping_ComponentStructureZeroesLegacyColumns(t *testing.T) {
	amount := decimal.NewFromInt(30000)
	d := domain.Employee{
		EmployeeID: "emp-1",
		Compensation: domain.NewComponentCompensation([]domain.EmployeeSalaryComponent{
			{SalaryComponentID: "basic", Category: domain.Earnings, NameInPayslip: "Basic", Amount: &amount, IsActive: true},
			{SalaryComponentID: "pt", Category: domain.Deductions, NameInPayslip: "Professional Tax", IsActive: true},
		}),
	}
	d.Compensation.Legacy.Basic = decimal.NewFromInt(99)

	m, assignments := ToModelEmployee(d)

	assert.True(t, m.UseComponentBasedSalary)
	assert.True(t, m.BasicSalary.IsZero())
	require.Len(t, assignments, 2)
	assert.Equal(t, int32(1), assignments[1].Position)
	assert.True(t, assignments[0].Amount.Valid)
	assert.False(t, assignments[1].Amount.Valid, "unset deduction amount stays NULL")

	back := ToDomainEmployee(m, assignments)
	assert.Equal(t, domain.ComponentCompensationKind, back.Compensation.Kind)
	require.Len(t, back.Compensation.Components, 2)
	assert.True(t, amount.Equal(*back.Compensation.Components[0].Amount))
	assert.Nil(t, back.Compensation.Components[1].Amount)
}

func TestEmployeeMapping_LegacyRowIgnoresAssignments(t *testing.T) {
	sick := 6
	probationEnd := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := domain.Employee{
		EmployeeID:   "emp-2",
		Compensation: domain.NewLegacyCompensation(domain.LegacyCompensation{Basic: decimal.NewFromInt(20000), LoanDeduction: decimal.NewFromInt(500)}),
		Leave:        domain.LeaveConfig{OnProbation: true, ProbationEndDate: &probationEnd, SickLeave: &sick},
		Status:       domain.StatusActive,
	}

	m, assignments := ToModelEmployee(d)
	assert.False(t, m.UseComponentBasedSalary)
	assert.Empty(t, assignments)

	stray := []models.EmployeeSalaryComponent{{SalaryComponentID: "stale"}}
	back := ToDomainEmployee(m, stray)

	assert.Equal(t, domain.LegacyCompensationKind, back.Compensation.Kind)
	assert.Empty(t, back.Compensation.Components)
	assert.True(t, decimal.NewFromInt(500).Equal(back.Compensation.Legacy.LoanDeduction))
	require.NotNil(t, back.Leave.SickLeave)
	assert.Equal(t, 6, *back.Leave.SickLeave)
	assert.Nil(t, back.Leave.CasualLeave)
}

func TestSalaryComponentMapping_OptionalThreshold(t *testing.T) {
	threshold := decimal.NewFromInt(15000)
	d := domain.SalaryComponent{ComponentID: "c1", Category: domain.Earnings, EPFWageThreshold: &threshold}

	back := ToDomainSalaryComponent(ToModelSalaryComponent(d))
	require.NotNil(t, back.EPFWageThreshold)
	assert.True(t, threshold.Equal(*back.EPFWageThreshold))

	d.EPFWageThreshold = nil
	assert.Nil(t, ToDomainSalaryComponent(ToModelSalaryComponent(d)).EPFWageThreshold)
}
