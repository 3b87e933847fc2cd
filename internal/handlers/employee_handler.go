package handlers

import (
	"strings"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

// ======================================================
// REQUESTS
// ======================================================

// EmployeeFields carries a password hash computed by the caller; the API
// never sees plain passwords.
type EmployeeFields struct {
	Name         string `json:"name" binding:"required,notblank,max=100"`
	Email        string `json:"email" binding:"required,email_address,max=100"`
	PasswordHash string `json:"password_hash" binding:"required,notblank,max=255"`
	PhoneNumber  string `json:"phone_number" binding:"omitempty,max=20"`
}

// CreateEmployeeRequest defaults a missing role to employee.
type CreateEmployeeRequest struct {
	EmployeeFields
	Role string `json:"role" binding:"omitempty,oneof=employee admin"`
}

// UpdateEmployeeRequest rewrites the whole row, role included.
type UpdateEmployeeRequest struct {
	EmployeeFields
	Role string `json:"role" binding:"required,oneof=employee admin"`
}

func (f *EmployeeFields) toModel(role pos.Role) models.Employee {
	return models.Employee{
		Name:         strings.TrimSpace(f.Name),
		Email:        strings.TrimSpace(f.Email),
		PasswordHash: f.PasswordHash,
		Role:         string(role),
		PhoneNumber:  optional(f.PhoneNumber),
	}
}

func (r *CreateEmployeeRequest) toModel() models.Employee {
	role := pos.Role(r.Role)
	if r.Role == "" {
		role = pos.RoleEmployee
	}
	return r.EmployeeFields.toModel(role)
}

func (r *UpdateEmployeeRequest) toModel() models.Employee {
	return r.EmployeeFields.toModel(pos.Role(r.Role))
}

func employeeAudit(f *EmployeeFields, role string) any {
	return map[string]string{
		"name":  f.Name,
		"email": f.Email,
		"role":  role,
	}
}

func (r *CreateEmployeeRequest) AuditMetadata() any { return employeeAudit(&r.EmployeeFields, r.Role) }
func (r *UpdateEmployeeRequest) AuditMetadata() any { return employeeAudit(&r.EmployeeFields, r.Role) }

// ======================================================
// HANDLER
// ======================================================

type EmployeeHandler = ResourceHandler[models.Employee, CreateEmployeeRequest, UpdateEmployeeRequest]

func NewEmployeeHandler(repo pos.EmployeeRepository, dispatcher *audit.Dispatcher) *EmployeeHandler {
	return &EmployeeHandler{
		repo:            repo,
		audit:           dispatcher,
		entity:          "employee",
		plural:          "employees",
		label:           "Employee",
		notFoundMessage: "Employee not found",
		createdMessage:  true,
		fromCreate:      func(req *CreateEmployeeRequest) models.Employee { return req.toModel() },
		fromUpdate: func(id string, req *UpdateEmployeeRequest) models.Employee {
			m := req.toModel()
			m.Base = withID(id)
			return m
		},
		idOf: func(m *models.Employee) string { return m.ID },
	}
}
