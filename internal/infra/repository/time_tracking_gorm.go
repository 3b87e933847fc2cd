package repository

import (
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.TimeTrackingRepository = (*TimeTrackingGormRepository)(nil)

type TimeTrackingGormRepository struct {
	tableGormRepository[models.TimeTracking]
}

func NewTimeTrackingGormRepository(db *gorm.DB) *TimeTrackingGormRepository {
	return &TimeTrackingGormRepository{
		tableGormRepository: newTable[models.TimeTracking](db,
			naturalOrder,
			"appointment_id", "employee_id", "start_time", "end_time",
		),
	}
}
