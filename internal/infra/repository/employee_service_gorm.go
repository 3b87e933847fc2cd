package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.EmployeeServiceRepository = (*EmployeeServiceGormRepository)(nil)

type EmployeeServiceGormRepository struct {
	db *gorm.DB
}

func NewEmployeeServiceGormRepository(db *gorm.DB) *EmployeeServiceGormRepository {
	return &EmployeeServiceGormRepository{db: db}
}

func (r *EmployeeServiceGormRepository) ListServicesForEmployee(
	ctx context.Context,
	employeeID string,
) ([]models.Service, error) {

	services := make([]models.Service, 0)
	if err := r.db.WithContext(ctx).
		Joins("JOIN employees_services es ON es.service_id = services.id").
		Where("es.employee_id = ?", employeeID).
		Order("services.name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *EmployeeServiceGormRepository) ListEmployeesForService(
	ctx context.Context,
	serviceID string,
) ([]models.Employee, error) {

	employees := make([]models.Employee, 0)
	if err := r.db.WithContext(ctx).
		Joins("JOIN employees_services es ON es.employee_id = employees.id").
		Where("es.service_id = ?", serviceID).
		Order("employees.name ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Assign is idempotent. Unknown employee or service ids surface as store errors.
func (r *EmployeeServiceGormRepository) Assign(
	ctx context.Context,
	employeeID string,
	serviceID string,
) error {

	link := models.EmployeeService{EmployeeID: employeeID, ServiceID: serviceID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&link).Error; err != nil {
		return err
	}
	return nil
}

func (r *EmployeeServiceGormRepository) Unassign(
	ctx context.Context,
	employeeID string,
	serviceID string,
) error {

	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND service_id = ?", employeeID, serviceID).
		Delete(&models.EmployeeService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pos.ErrNotFound
	}
	return nil
}
