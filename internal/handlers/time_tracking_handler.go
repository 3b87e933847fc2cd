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

// TimeTrackingRequest opens an interval when end_time is omitted.
type TimeTrackingRequest struct {
	AppointmentID string             `json:"appointment_id" binding:"required,notblank"`
	EmployeeID    string             `json:"employee_id" binding:"required,notblank"`
	StartTime     *timezone.DateTime `json:"start_time" binding:"required"`
	EndTime       *timezone.DateTime `json:"end_time"`
}

func (r *TimeTrackingRequest) toModel() models.TimeTracking {
	return models.TimeTracking{
		AppointmentID: strings.TrimSpace(r.AppointmentID),
		EmployeeID:    strings.TrimSpace(r.EmployeeID),
		StartTime:     r.StartTime.Time,
		EndTime:       r.EndTime.Ptr(),
	}
}

// ======================================================
// HANDLER
// ======================================================

type TimeTrackingHandler = ResourceHandler[models.TimeTracking, TimeTrackingRequest, TimeTrackingRequest]

func NewTimeTrackingHandler(repo pos.TimeTrackingRepository, dispatcher *audit.Dispatcher) *TimeTrackingHandler {
	return &TimeTrackingHandler{
		repo:            repo,
		audit:           dispatcher,
		entity:          "time_tracking",
		plural:          "time_tracking",
		label:           "Time tracking record",
		notFoundMessage: "Record not found",
		fromCreate:      func(req *TimeTrackingRequest) models.TimeTracking { return req.toModel() },
		fromUpdate: func(id string, req *TimeTrackingRequest) models.TimeTracking {
			m := req.toModel()
			m.Base = withID(id)
			return m
		},
		idOf: func(m *models.TimeTracking) string { return m.ID },
	}
}
