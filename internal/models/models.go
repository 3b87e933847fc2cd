package models

// All lists every model managed by the schema migration, parents first.
func All() []any {
	return []any{
		&Customer{},
		&Employee{},
		&Service{},
		&EmployeeService{},
		&Appointment{},
		&Payment{},
		&TimeTracking{},
		&AuditLog{},
	}
}
