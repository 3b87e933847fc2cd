package repository

import (
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.PaymentRepository = (*PaymentGormRepository)(nil)

type PaymentGormRepository struct {
	tableGormRepository[models.Payment]
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{
		tableGormRepository: newTable[models.Payment](db,
			naturalOrder,
			"amount", "method", "paid_at", "status",
		),
	}
}
