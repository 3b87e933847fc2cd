package visit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/httperr"
	"github.com/JGuylherme/Service-POS/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type PaymentInput struct {
	Amount decimal.Decimal
	Method *string
	PaidAt *time.Time
	Status *string
}

type WorkedInput struct {
	StartTime time.Time
	EndTime   *time.Time
}

type RecordVisitInput struct {
	CustomerID string
	EmployeeID string
	ServiceID  string

	StartTime time.Time
	EndTime   time.Time
	Status    string
	Notes     *string

	Payment *PaymentInput
	Worked  *WorkedInput
}

type RecordVisitOutput struct {
	AppointmentID  string  `json:"appointment_id"`
	PaymentID      *string `json:"payment_id"`
	TimeTrackingID *string `json:"time_tracking_id"`
}

// ======================================================
// USE CASE
// ======================================================

// RecordVisit books an appointment together with its payment and worked
// interval. Either every row is written or none is.
type RecordVisit struct {
	uow   pos.UnitOfWork
	audit *audit.Dispatcher
}

func NewRecordVisit(uow pos.UnitOfWork, dispatcher *audit.Dispatcher) *RecordVisit {
	return &RecordVisit{
		uow:   uow,
		audit: dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordVisit) Execute(ctx context.Context, in RecordVisitInput) (*RecordVisitOutput, error) {
	if in.EndTime.Before(in.StartTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}
	if in.Worked != nil && in.Worked.EndTime != nil && in.Worked.EndTime.Before(in.Worked.StartTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}

	status := in.Status
	if status == "" {
		status = pos.AppointmentScheduled
	}

	var out RecordVisitOutput

	err := uc.uow.Do(ctx, func(repos pos.Repositories) error {
		ap := models.Appointment{
			CustomerID: in.CustomerID,
			EmployeeID: in.EmployeeID,
			ServiceID:  in.ServiceID,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			Status:     status,
			Notes:      in.Notes,
		}
		if err := repos.Appointments.Create(ctx, &ap); err != nil {
			return err
		}
		out.AppointmentID = ap.ID

		if in.Payment != nil {
			// A visit is paid at the desk unless told otherwise.
			paymentStatus := in.Payment.Status
			if paymentStatus == nil {
				paid := pos.PaymentPaid
				paymentStatus = &paid
			}
			p := models.Payment{
				AppointmentID: ap.ID,
				Amount:        in.Payment.Amount,
				Method:        in.Payment.Method,
				PaidAt:        in.Payment.PaidAt,
				Status:        paymentStatus,
			}
			if err := repos.Payments.Create(ctx, &p); err != nil {
				return err
			}
			out.PaymentID = &p.ID
		}

		if in.Worked != nil {
			tt := models.TimeTracking{
				AppointmentID: ap.ID,
				EmployeeID:    in.EmployeeID,
				StartTime:     in.Worked.StartTime,
				EndTime:       in.Worked.EndTime,
			}
			if err := repos.TimeTracking.Create(ctx, &tt); err != nil {
				return err
			}
			out.TimeTrackingID = &tt.ID
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "visit_recorded",
		Entity:   "appointment",
		EntityID: out.AppointmentID,
		Metadata: out,
	})

	return &out, nil
}
