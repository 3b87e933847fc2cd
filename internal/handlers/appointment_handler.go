package handlers

import (
	"strings"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
	"github.com/JGuylherme/Service-POS/internal/timezone"
)

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID string             `json:"customer_id" binding:"required,notblank"`
	EmployeeID string             `json:"employee_id" binding:"required,notblank"`
	ServiceID  string             `json:"service_id" binding:"required,notblank"`
	StartTime  *timezone.DateTime `json:"start_time" binding:"required"`
	EndTime    *timezone.DateTime `json:"end_time" binding:"required"`
	Status     string             `json:"status" binding:"omitempty,max=20"`
	Notes      string             `json:"notes"`
}

// UpdateAppointmentRequest reschedules or annotates an appointment. The
// customer, employee and service stay as booked.
type UpdateAppointmentRequest struct {
	StartTime *timezone.DateTime `json:"start_time" binding:"required"`
	EndTime   *timezone.DateTime `json:"end_time" binding:"required"`
	Status    string             `json:"status" binding:"required,notblank,max=20"`
	Notes     string             `json:"notes"`
}

func (r *CreateAppointmentRequest) toModel() models.Appointment {
	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = pos.AppointmentScheduled
	}
	return models.Appointment{
		CustomerID: strings.TrimSpace(r.CustomerID),
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		ServiceID:  strings.TrimSpace(r.ServiceID),
		StartTime:  r.StartTime.Time,
		EndTime:    r.EndTime.Time,
		Status:     status,
		Notes:      optional(r.Notes),
	}
}

func (r *UpdateAppointmentRequest) toModel(id string) models.Appointment {
	return models.Appointment{
		Base:      withID(id),
		StartTime: r.StartTime.Time,
		EndTime:   r.EndTime.Time,
		Status:    strings.TrimSpace(r.Status),
		Notes:     optional(r.Notes),
	}
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler = ResourceHandler[models.Appointment, CreateAppointmentRequest, UpdateAppointmentRequest]

func NewAppointmentHandler(
	repo pos.AppointmentRepository,
	dispatcher *audit.Dispatcher,
	opts ...ResourceOption,
) *AppointmentHandler {
	settings := applyOptions(opts)

	return &AppointmentHandler{
		repo:            repo,
		audit:           dispatcher,
		entity:          "appointment",
		plural:          "appointments",
		label:           "Appointment",
		notFoundMessage: "Appointment not found",
		emptyOnMissing:  settings.emptyOnMissing,
		fromCreate:      func(req *CreateAppointmentRequest) models.Appointment { return req.toModel() },
		fromUpdate:      func(id string, req *UpdateAppointmentRequest) models.Appointment { return req.toModel(id) },
		idOf:            func(m *models.Appointment) string { return m.ID },
	}
}
