package pos

import (
	"context"

	"github.com/JGuylherme/Service-POS/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

// Repository is the CRUD contract every entity table fulfils.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	// Update rewrites the mutable columns of the row identified by entity's id.
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) error
}

type (
	CustomerRepository     = Repository[models.Customer]
	EmployeeRepository     = Repository[models.Employee]
	ServiceRepository      = Repository[models.Service]
	AppointmentRepository  = Repository[models.Appointment]
	PaymentRepository      = Repository[models.Payment]
	TimeTrackingRepository = Repository[models.TimeTracking]
)

type EmployeeServiceRepository interface {
	ListServicesForEmployee(ctx context.Context, employeeID string) ([]models.Service, error)
	ListEmployeesForService(ctx context.Context, serviceID string) ([]models.Employee, error)
	Assign(ctx context.Context, employeeID, serviceID string) error
	Unassign(ctx context.Context, employeeID, serviceID string) error
}

// Repositories groups the repositories bound to one unit of work.
type Repositories struct {
	Customers    CustomerRepository
	Employees    EmployeeRepository
	Services     ServiceRepository
	Appointments AppointmentRepository
	Payments     PaymentRepository
	TimeTracking TimeTrackingRepository
	Assignments  EmployeeServiceRepository
}

// UnitOfWork runs fn atomically. Any error returned by fn discards every write.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
