package repository

import (
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

var _ pos.CustomerRepository = (*CustomerGormRepository)(nil)

// CustomerGormRepository lists newest customers first.
type CustomerGormRepository struct {
	tableGormRepository[models.Customer]
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{
		tableGormRepository: newTable[models.Customer](db,
			"created_at DESC, id DESC",
			"name", "email", "document", "phone_number",
		),
	}
}
