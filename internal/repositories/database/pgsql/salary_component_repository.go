package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	"github.com/SscSPs/hr_payroll_admin/internal/models"
	"github.com/SscSPs/hr_payroll_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const salaryComponentColumns = `component_id, category, component_type, name_in_payslip, is_variable,
	calculation_type, calculation_value, is_taxable, is_active, part_of_salary_structure,
	consider_for_epf, consider_for_esi, epf_wage_threshold, pro_rata, flexible_benefit,
	show_in_payslip, benefit_plan, benefit_association, deduction_frequency, unclaimed_handling,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSalaryComponentRepository struct {
	BaseRepository
}

// newPgxSalaryComponentRepository creates a new repository for the salary component catalog.
func newPgxSalaryComponentRepository(pool *pgxpool.Pool) *PgxSalaryComponentRepository {
	return &PgxSalaryComponentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalaryComponentRepositoryFacade = (*PgxSalaryComponentRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSalaryComponent(row rowScanner) (models.SalaryComponent, error) {
	var m models.SalaryComponent
	err := row.Scan(
		&m.ComponentID,
		&m.Category,
		&m.ComponentType,
		&m.NameInPayslip,
		&m.IsVariable,
		&m.CalculationType,
		&m.CalculationValue,
		&m.IsTaxable,
		&m.IsActive,
		&m.PartOfSalaryStructure,
		&m.ConsiderForEPF,
		&m.ConsiderForESI,
		&m.EPFWageThreshold,
		&m.ProRata,
		&m.FlexibleBenefit,
		&m.ShowInPayslip,
		&m.BenefitPlan,
		&m.BenefitAssociation,
		&m.DeductionFrequency,
		&m.UnclaimedHandling,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSalaryComponent inserts a new catalog component.
func (r *PgxSalaryComponentRepository) SaveSalaryComponent(ctx context.Context, component domain.SalaryComponent) error {
	m := mapping.ToModelSalaryComponent(component)
	query := `
		INSERT INTO salary_components (` + salaryComponentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ComponentID, m.Category, m.ComponentType, m.NameInPayslip, m.IsVariable,
		m.CalculationType, m.CalculationValue, m.IsTaxable, m.IsActive, m.PartOfSalaryStructure,
		m.ConsiderForEPF, m.ConsiderForESI, m.EPFWageThreshold, m.ProRata, m.FlexibleBenefit,
		m.ShowInPayslip, m.BenefitPlan, m.BenefitAssociation, m.DeductionFrequency, m.UnclaimedHandling,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "salary component "+m.ComponentID)
	}
	return nil
}

// FindSalaryComponentByID retrieves a catalog component by its ID.
func (r *PgxSalaryComponentRepository) FindSalaryComponentByID(ctx context.Context, componentID string) (*domain.SalaryComponent, error) {
	query := `SELECT ` + salaryComponentColumns + ` FROM salary_components WHERE component_id = $1;`

	m, err := scanSalaryComponent(r.Pool.QueryRow(ctx, query, componentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find salary component by ID %s: %w", componentID, err)
	}
	d := mapping.ToDomainSalaryComponent(m)
	return &d, nil
}

// FindSalaryComponentsByIDs retrieves multiple components keyed by ID. Missing IDs are
// simply absent from the map.
func (r *PgxSalaryComponentRepository) FindSalaryComponentsByIDs(ctx context.Context, componentIDs []string) (map[string]domain.SalaryComponent, error) {
	if len(componentIDs) == 0 {
		return map[string]domain.SalaryComponent{}, nil
	}
	query := `SELECT ` + salaryComponentColumns + ` FROM salary_components WHERE component_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, componentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary components by IDs: %w", err)
	}
	defer rows.Close()

	components := make(map[string]domain.SalaryComponent, len(componentIDs))
	for rows.Next() {
		m, err := scanSalaryComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary component row during batch fetch: %w", err)
		}
		components[m.ComponentID] = mapping.ToDomainSalaryComponent(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary component rows during batch fetch: %w", err)
	}
	return components, nil
}

// ListSalaryComponents retrieves catalog components matching the filter, ordered by
// category then payslip name.
func (r *PgxSalaryComponentRepository) ListSalaryComponents(ctx context.Context, filter domain.ComponentFilter) ([]domain.SalaryComponent, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.SalaryStructureOnly {
		conditions = append(conditions, "part_of_salary_structure = TRUE")
	}

	query := `SELECT ` + salaryComponentColumns + ` FROM salary_components`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, name_in_payslip, component_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var ms []models.SalaryComponent
	for rows.Next() {
		m, err := scanSalaryComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary component row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary component rows: %w", err)
	}
	return mapping.ToDomainSalaryComponentSlice(ms), nil
}

// CountComponentReferences counts employee assignments of the component.
func (r *PgxSalaryComponentRepository) CountComponentReferences(ctx context.Context, componentID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employee_salary_components WHERE salary_component_id = $1;`,
		componentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count references to salary component %s: %w", componentID, err)
	}
	return count, nil
}

// UpdateSalaryComponent overwrites every mutable column of a catalog component.
func (r *PgxSalaryComponentRepository) UpdateSalaryComponent(ctx context.Context, component domain.SalaryComponent) error {
	m := mapping.ToModelSalaryComponent(component)
	query := `
		UPDATE salary_components
		SET category = $2, component_type = $3, name_in_payslip = $4, is_variable = $5,
			calculation_type = $6, calculation_value = $7, is_taxable = $8, is_active = $9,
			part_of_salary_structure = $10, consider_for_epf = $11, consider_for_esi = $12,
			epf_wage_threshold = $13, pro_rata = $14, flexible_benefit = $15, show_in_payslip = $16,
			benefit_plan = $17, benefit_association = $18, deduction_frequency = $19,
			unclaimed_handling = $20, last_updated_at = $21, last_updated_by = $22
		WHERE component_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ComponentID, m.Category, m.ComponentType, m.NameInPayslip, m.IsVariable,
		m.CalculationType, m.CalculationValue, m.IsTaxable, m.IsActive,
		m.PartOfSalaryStructure, m.ConsiderForEPF, m.ConsiderForESI,
		m.EPFWageThreshold, m.ProRata, m.FlexibleBenefit, m.ShowInPayslip,
		m.BenefitPlan, m.BenefitAssociation, m.DeductionFrequency,
		m.UnclaimedHandling, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "salary component "+m.ComponentID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateSalaryComponent marks a component inactive. Deactivating an inactive
// component is a no-op.
func (r *PgxSalaryComponentRepository) DeactivateSalaryComponent(ctx context.Context, componentID string, userID string, now time.Time) error {
	query := `
		UPDATE salary_components
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE component_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, componentID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate salary component %s: %w", componentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSalaryComponent removes a component. The foreign key from assignments rejects
// deleting a component that became referenced concurrently.
func (r *PgxSalaryComponentRepository) DeleteSalaryComponent(ctx context.Context, componentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM salary_components WHERE component_id = $1;`, componentID)
	if err != nil {
		return translateWriteError(err, "salary component "+componentID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
