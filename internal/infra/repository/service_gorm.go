package repository

import (
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.ServiceRepository = (*ServiceGormRepository)(nil)

type ServiceGormRepository struct {
	tableGormRepository[models.Service]
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{
		tableGormRepository: newTable[models.Service](db,
			naturalOrder,
			"name", "description", "price", "duration_min",
		),
	}
}
