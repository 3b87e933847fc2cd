package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
)

var _ pos.UnitOfWork = (*GormUnitOfWork)(nil)

type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// NewRepositories binds every repository to db, which may be a transaction.
func NewRepositories(db *gorm.DB) pos.Repositories {
	return pos.Repositories{
		Customers:    NewCustomerGormRepository(db),
		Employees:    NewEmployeeGormRepository(db),
		Services:     NewServiceGormRepository(db),
		Appointments: NewAppointmentGormRepository(db),
		Payments:     NewPaymentGormRepository(db),
		TimeTracking: NewTimeTrackingGormRepository(db),
		Assignments:  NewEmployeeServiceGormRepository(db),
	}
}

func (u *GormUnitOfWork) Do(ctx context.Context, fn func(repos pos.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
