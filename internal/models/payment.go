package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	Base

	AppointmentID string       `gorm:"size:36;not null;index" json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"appointment,omitempty"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method *string         `gorm:"size:50" json:"method"`
	PaidAt *time.Time      `json:"paid_at"`
	Status *string         `gorm:"size:20" json:"status"`
}
