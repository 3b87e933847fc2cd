package repository

import (
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.AppointmentRepository = (*AppointmentGormRepository)(nil)

// AppointmentGormRepository keeps the customer, employee and service
// references fixed after creation; only the schedule, status and notes change.
type AppointmentGormRepository struct {
	tableGormRepository[models.Appointment]
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{
		tableGormRepository: newTable[models.Appointment](db,
			naturalOrder,
			"start_time", "end_time", "status", "notes",
		),
	}
}
