package repository

import (
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.EmployeeRepository = (*EmployeeGormRepository)(nil)

type EmployeeGormRepository struct {
	tableGormRepository[models.Employee]
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{
		tableGormRepository: newTable[models.Employee](db,
			naturalOrder,
			"name", "email", "password_hash", "role", "phone_number",
		),
	}
}
