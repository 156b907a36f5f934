package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	"github.com/SscSPs/hr_payroll_admin/internal/models"
	"github.com/SscSPs/hr_payroll_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `employee_id, employee_code, name, email, phone, gender, date_of_birth,
	department, designation, date_of_joining, address, bank_name, account_number, ifsc, pan,
	use_component_based_salary, basic_salary, hra, medical_allowance, travel_allowance, conveyance,
	incentive, other_benefits, pf_deduction, esi_deduction, tax_deduction, loan_deduction,
	other_deductions, pf_employee, pf_employer, esi_employee, esi_employer, on_probation,
	probation_end_date, casual_leave, sick_leave, annual_leave, status, resignation_date,
	termination_date, created_at, created_by, last_updated_at, last_updated_by`

const assignmentColumns = `employee_id, salary_component_id, position, category, component_type,
	name_in_payslip, amount, is_active`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

func scanEmployee(row rowScanner) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID, &m.EmployeeCode, &m.Name, &m.Email, &m.Phone, &m.Gender, &m.DateOfBirth,
		&m.Department, &m.Designation, &m.DateOfJoining, &m.Address, &m.BankName, &m.AccountNumber, &m.IFSC, &m.PAN,
		&m.UseComponentBasedSalary, &m.BasicSalary, &m.HRA, &m.MedicalAllowance, &m.TravelAllowance, &m.Conveyance,
		&m.Incentive, &m.OtherBenefits, &m.PFDeduction, &m.ESIDeduction, &m.TaxDeduction, &m.LoanDeduction,
		&m.OtherDeductions, &m.PFEmployee, &m.PFEmployer, &m.ESIEmployee, &m.ESIEmployer, &m.OnProbation,
		&m.ProbationEndDate, &m.CasualLeave, &m.SickLeave, &m.AnnualLeave, &m.Status, &m.ResignationDate,
		&m.TerminationDate, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// employeeValues returns the row values in employeeColumns order.
func employeeValues(m models.Employee) []any {
	return []any{
		m.EmployeeID, m.EmployeeCode, m.Name, m.Email, m.Phone, m.Gender, m.DateOfBirth,
		m.Department, m.Designation, m.DateOfJoining, m.Address, m.BankName, m.AccountNumber, m.IFSC, m.PAN,
		m.UseComponentBasedSalary, m.BasicSalary, m.HRA, m.MedicalAllowance, m.TravelAllowance, m.Conveyance,
		m.Incentive, m.OtherBenefits, m.PFDeduction, m.ESIDeduction, m.TaxDeduction, m.LoanDeduction,
		m.OtherDeductions, m.PFEmployee, m.PFEmployer, m.ESIEmployee, m.ESIEmployer, m.OnProbation,
		m.ProbationEndDate, m.CasualLeave, m.SickLeave, m.AnnualLeave, m.Status, m.ResignationDate,
		m.TerminationDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveEmployee inserts the employee row and its assignments in one transaction.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m, assignments := mapping.ToModelEmployee(employee)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	values := employeeValues(m)
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES (` + placeholders(1, len(values)) + `);`
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return translateWriteError(err, fmt.Sprintf("employee %s", m.Email))
	}
	if err := insertAssignments(ctx, tx, assignments); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateEmployee overwrites the employee row and replaces its assignments in one transaction.
// Created audit fields are never rewritten.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m, assignments := mapping.ToModelEmployee(employee)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE employees SET
			employee_code = $2, name = $3, email = $4, phone = $5, gender = $6, date_of_birth = $7,
			department = $8, designation = $9, date_of_joining = $10, address = $11, bank_name = $12,
			account_number = $13, ifsc = $14, pan = $15, use_component_based_salary = $16,
			basic_salary = $17, hra = $18, medical_allowance = $19, travel_allowance = $20,
			conveyance = $21, incentive = $22, other_benefits = $23, pf_deduction = $24,
			esi_deduction = $25, tax_deduction = $26, loan_deduction = $27, other_deductions = $28,
			pf_employee = $29, pf_employer = $30, esi_employee = $31, esi_employer = $32,
			on_probation = $33, probation_end_date = $34, casual_leave = $35, sick_leave = $36,
			annual_leave = $37, status = $38, resignation_date = $39, termination_date = $40,
			last_updated_at = $41, last_updated_by = $42
		WHERE employee_id = $1;
	`
	// created_at and created_by are never rewritten.
	values := employeeValues(m)
	args := append(values[:len(values)-4:len(values)-4], m.LastUpdatedAt, m.LastUpdatedBy)
	cmdTag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("employee %s", m.EmployeeID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM employee_salary_components WHERE employee_id = $1;`, m.EmployeeID); err != nil {
		return fmt.Errorf("failed to clear salary components for employee %s: %w", m.EmployeeID, err)
	}
	if err := insertAssignments(ctx, tx, assignments); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertAssignments(ctx context.Context, tx pgx.Tx, assignments []models.EmployeeSalaryComponent) error {
	if len(assignments) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `INSERT INTO employee_salary_components (` + assignmentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	for _, a := range assignments {
		batch.Queue(query, a.EmployeeID, a.SalaryComponentID, a.Position, a.Category, a.ComponentType, a.NameInPayslip, a.Amount, a.IsActive)
	}
	results := tx.SendBatch(ctx, batch)
	for _, a := range assignments {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return translateWriteError(err, "salary component assignment "+a.SalaryComponentID)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to insert salary component assignments: %w", err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee with its assignments.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	assignments, err := r.findAssignments(ctx, []string{employeeID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainEmployee(m, assignments[employeeID])
	return &d, nil
}

// ListEmployees returns a keyset page ordered by (created_at, employee_id).
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, after *domain.EmployeeCursor) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{limit}
	if after != nil {
		query += ` WHERE (created_at, employee_id) > ($2, $3)`
		args = append(args, after.CreatedAt, after.EmployeeID)
	}
	query += ` ORDER BY created_at, employee_id LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var ms []models.Employee
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		if m.UseComponentBasedSalary {
			ids = append(ids, m.EmployeeID)
		}
	}
	assignments, err := r.findAssignments(ctx, ids)
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, len(ms))
	for i, m := range ms {
		employees[i] = mapping.ToDomainEmployee(m, assignments[m.EmployeeID])
	}
	return employees, nil
}

// CountEmployees counts every employee record regardless of status.
func (r *PgxEmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// findAssignments loads assignments for the given employees, in position order.
func (r *PgxEmployeeRepository) findAssignments(ctx context.Context, employeeIDs []string) (map[string][]models.EmployeeSalaryComponent, error) {
	result := make(map[string][]models.EmployeeSalaryComponent, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + assignmentColumns + ` FROM employee_salary_components
		WHERE employee_id = ANY($1) ORDER BY employee_id, position;`
	rows, err := r.Pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary component assignments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.EmployeeSalaryComponent
		if err := rows.Scan(&a.EmployeeID, &a.SalaryComponentID, &a.Position, &a.Category, &a.ComponentType,
			&a.NameInPayslip, &a.Amount, &a.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan salary component assignment: %w", err)
		}
		result[a.EmployeeID] = append(result[a.EmployeeID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary component assignments: %w", err)
	}
	return result, nil
}

// placeholders renders "$from, ..., $(from+n-1)".
func placeholders(from, n int) string {
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = fmt.Appendf(buf, "$%d", from+i)
	}
	return string(buf)
}
