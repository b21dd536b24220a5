package repositories

import (
	"context"

	"luxpackers-admin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// EmployeeRepository defines read-only access to employees_access
type EmployeeRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.EmployeeAccess, error)
}

// employeeRepository implements EmployeeRepository
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByUsername gets a credential record by exact username match
func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*models.EmployeeAccess, error) {
	var employee models.EmployeeAccess
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
