package models

import "time"

// TimeTracking is a worked interval of an employee on an appointment.
// EndTime stays nil while the interval is open.
type TimeTracking struct {
	Base

	AppointmentID string       `gorm:"size:36;not null;index" json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"appointment,omitempty"`

	EmployeeID string    `gorm:"size:36;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee,omitempty"`

	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

func (TimeTracking) TableName() string {
	return "time_tracking"
}
