package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	employee.ID = uuid.New()
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, tenant_id, code, full_name, email, pan, state_code,
		                        tax_regime, joining_date, exit_date, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		employee.ID, employee.TenantID, employee.Code, employee.FullName, employee.Email,
		employee.PAN, employee.StateCode, employee.TaxRegime, employee.JoiningDate,
		employee.ExitDate, employee.IsActive, employee.CreatedAt, employee.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateEmployee
		}
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.GetContext(ctx, &employee,
		"SELECT * FROM employees WHERE tenant_id = $1 AND id = $2", tenantID, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepo) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.GetContext(ctx, &employee,
		"SELECT * FROM employees WHERE tenant_id = $1 AND code = $2", tenantID, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByCode: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepo) ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Employee, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM employees WHERE tenant_id = $1 AND is_active = true", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.ListActive count: %w", err)
	}

	var employees []domain.Employee
	err = r.db.SelectContext(ctx, &employees,
		`SELECT * FROM employees WHERE tenant_id = $1 AND is_active = true
		 ORDER BY code OFFSET $2 LIMIT $3`, tenantID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.ListActive: %w", err)
	}
	return employees, total, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	employee.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET full_name = $1, email = $2, pan = $3, state_code = $4,
		        tax_regime = $5, exit_date = $6, is_active = $7, updated_at = $8
		 WHERE tenant_id = $9 AND id = $10`,
		employee.FullName, employee.Email, employee.PAN, employee.StateCode,
		employee.TaxRegime, employee.ExitDate, employee.IsActive, employee.UpdatedAt,
		employee.TenantID, employee.ID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) Deactivate(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE employees SET is_active = false, updated_at = $1 WHERE tenant_id = $2 AND id = $3",
		time.Now().UTC(), tenantID, employeeID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Deactivate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type compensationRepo struct {
	db *sqlx.DB
}

// NewCompensationRepo creates a new PostgreSQL-backed CompensationRepository.
func NewCompensationRepo(db *sqlx.DB) port.CompensationRepository {
	return &compensationRepo{db: db}
}

func (r *compensationRepo) Create(ctx context.Context, comp *domain.CompensationStructure) error {
	comp.ID = uuid.New()
	comp.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO compensation_structures
		        (id, tenant_id, employee_id, basic_salary, dearness_allowance,
		         house_rent_allowance, special_allowance, other_allowance, effective_from, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		comp.ID, comp.TenantID, comp.EmployeeID, comp.BasicSalary, comp.DearnessAllowance,
		comp.HouseRentAllowance, comp.SpecialAllowance, comp.OtherAllowance,
		comp.EffectiveFrom, comp.CreatedAt)
	if err != nil {
		return fmt.Errorf("compensationRepo.Create: %w", err)
	}
	return nil
}

func (r *compensationRepo) GetEffective(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.CompensationStructure, error) {
	var comp domain.CompensationStructure
	err := r.db.GetContext(ctx, &comp,
		`SELECT * FROM compensation_structures
		 WHERE tenant_id = $1 AND employee_id = $2 AND effective_from <= $3
		 ORDER BY effective_from DESC LIMIT 1`,
		tenantID, employeeID, asOf)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoCompensation
		}
		return nil, fmt.Errorf("compensationRepo.GetEffective: %w", err)
	}
	return &comp, nil
}

func (r *compensationRepo) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.CompensationStructure, error) {
	var comps []domain.CompensationStructure
	err := r.db.SelectContext(ctx, &comps,
		`SELECT * FROM compensation_structures
		 WHERE tenant_id = $1 AND employee_id = $2
		 ORDER BY effective_from DESC`,
		tenantID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("compensationRepo.ListByEmployee: %w", err)
	}
	return comps, nil
}
