package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/JGuylherme/Service-POS/internal/httperr"
	"github.com/JGuylherme/Service-POS/internal/logger"
	"github.com/JGuylherme/Service-POS/internal/timezone"
	ucVisit "github.com/JGuylherme/Service-POS/internal/usecase/visit"
)

// ======================================================
// REQUESTS
// ======================================================

type VisitPaymentRequest struct {
	Amount *decimal.Decimal   `json:"amount" binding:"required,gte=0,decimal_places=2"`
	Method string             `json:"method" binding:"omitempty,max=50"`
	PaidAt *timezone.DateTime `json:"paid_at"`
	Status string             `json:"status" binding:"omitempty,max=20"`
}

type VisitWorkedRequest struct {
	StartTime *timezone.DateTime `json:"start_time" binding:"required"`
	EndTime   *timezone.DateTime `json:"end_time"`
}

type RecordVisitRequest struct {
	CreateAppointmentRequest
	Payment *VisitPaymentRequest `json:"payment"`
	Worked  *VisitWorkedRequest  `json:"time_tracking"`
}

func (r *RecordVisitRequest) toInput() ucVisit.RecordVisitInput {
	ap := r.CreateAppointmentRequest.toModel()

	in := ucVisit.RecordVisitInput{
		CustomerID: ap.CustomerID,
		EmployeeID: ap.EmployeeID,
		ServiceID:  ap.ServiceID,
		StartTime:  ap.StartTime,
		EndTime:    ap.EndTime,
		Status:     ap.Status,
		Notes:      ap.Notes,
	}

	if p := r.Payment; p != nil {
		in.Payment = &ucVisit.PaymentInput{
			Amount: money(p.Amount),
			Method: optional(p.Method),
			PaidAt: p.PaidAt.Ptr(),
			Status: optional(p.Status),
		}
	}

	if w := r.Worked; w != nil {
		in.Worked = &ucVisit.WorkedInput{
			StartTime: w.StartTime.Time,
			EndTime:   w.EndTime.Ptr(),
		}
	}

	return in
}

// ======================================================
// HANDLER
// ======================================================

type VisitHandler struct {
	recordVisitUC *ucVisit.RecordVisit
}

func NewVisitHandler(recordVisitUC *ucVisit.RecordVisit) *VisitHandler {
	return &VisitHandler{recordVisitUC: recordVisitUC}
}

// POST /api/visits
func (h *VisitHandler) Record(c *gin.Context) {
	var req RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	out, err := h.recordVisitUC.Execute(c.Request.Context(), req.toInput())
	if httperr.IsBusiness(err, httperr.CodeInvalidTimeRange) {
		httperr.BadRequest(c, httperr.CodeInvalidTimeRange, "end_time must not be before start_time")
		return
	}
	if err != nil {
		logger.ErrorLog(c.Request.Context(), "record visit failed: %v", err)
		httperr.Internal(c, "failed_to_record_visit", err.Error())
		return
	}

	c.JSON(http.StatusCreated, out)
}

