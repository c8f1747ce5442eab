package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"anupalan/internal/domain"
)

// EmployeeRepository persists tenant-scoped employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error)
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Employee, error)
	ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Deactivate(ctx context.Context, tenantID, employeeID uuid.UUID) error
}

// CompensationRepository persists effective-dated wage structures.
type CompensationRepository interface {
	Create(ctx context.Context, comp *domain.CompensationStructure) error
	// GetEffective returns the structure with the latest effective_from at or
	// before asOf for the employee.
	GetEffective(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.CompensationStructure, error)
	ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.CompensationStructure, error)
}
