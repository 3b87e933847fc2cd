package models

import "time"

type Appointment struct {
	Base

	CustomerID string    `gorm:"size:36;not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer,omitempty"`

	EmployeeID string    `gorm:"size:36;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee,omitempty"`

	ServiceID string   `gorm:"size:36;not null;index" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string  `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes"`
}
