package models

// EmployeeService records that an employee can perform a service.
type EmployeeService struct {
	EmployeeID string    `gorm:"primaryKey;size:36" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee,omitempty"`

	ServiceID string   `gorm:"primaryKey;size:36" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`
}

func (EmployeeService) TableName() string {
	return "employees_services"
}
