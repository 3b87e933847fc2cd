package handlers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
	"github.com/JGuylherme/Service-POS/internal/timezone"
)

// ======================================================
// REQUESTS
// ======================================================

type PaymentFields struct {
	Amount *decimal.Decimal   `json:"amount" binding:"required,gte=0,decimal_places=2"`
	Method string             `json:"method" binding:"omitempty,max=50"`
	PaidAt *timezone.DateTime `json:"paid_at"`
	Status string             `json:"status" binding:"omitempty,max=20"`
}

type CreatePaymentRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required,notblank"`
	PaymentFields
}

type UpdatePaymentRequest struct {
	PaymentFields
}

func (f *PaymentFields) toModel() models.Payment {
	return models.Payment{
		Amount: money(f.Amount),
		Method: optional(f.Method),
		PaidAt: f.PaidAt.Ptr(),
		Status: optional(f.Status),
	}
}

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler = ResourceHandler[models.Payment, CreatePaymentRequest, UpdatePaymentRequest]

func NewPaymentHandler(
	repo pos.PaymentRepository,
	dispatcher *audit.Dispatcher,
	opts ...ResourceOption,
) *PaymentHandler {
	settings := applyOptions(opts)

	return &PaymentHandler{
		repo:            repo,
		audit:           dispatcher,
		entity:          "payment",
		plural:          "payments",
		label:           "Payment",
		notFoundMessage: "Payment not found",
		emptyOnMissing:  settings.emptyOnMissing,
		fromCreate: func(req *CreatePaymentRequest) models.Payment {
			m := req.toModel()
			m.AppointmentID = strings.TrimSpace(req.AppointmentID)
			return m
		},
		fromUpdate: func(id string, req *UpdatePaymentRequest) models.Payment {
			m := req.toModel()
			m.Base = withID(id)
			return m
		},
		idOf: func(m *models.Payment) string { return m.ID },
	}
}
