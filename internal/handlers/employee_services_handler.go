package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/httperr"
	"github.com/JGuylherme/Service-POS/internal/httpresp"
	"github.com/JGuylherme/Service-POS/internal/logger"
)

// ======================================================
// HANDLER
// ======================================================

// EmployeeServicesHandler manages which services each employee performs.
type EmployeeServicesHandler struct {
	employees   pos.EmployeeRepository
	services    pos.ServiceRepository
	assignments pos.EmployeeServiceRepository
	audit       *audit.Dispatcher
}

func NewEmployeeServicesHandler(
	employees pos.EmployeeRepository,
	services pos.ServiceRepository,
	assignments pos.EmployeeServiceRepository,
	dispatcher *audit.Dispatcher,
) *EmployeeServicesHandler {
	return &EmployeeServicesHandler{
		employees:   employees,
		services:    services,
		assignments: assignments,
		audit:       dispatcher,
	}
}

// GET /api/employees/:id/services
func (h *EmployeeServicesHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")

	if !h.employeeExists(c, employeeID) {
		return
	}

	services, err := h.assignments.ListServicesForEmployee(ctx, employeeID)
	if err != nil {
		h.internal(c, "failed_to_list_employee_services", err)
		return
	}
	httpresp.OK(c, services)
}

// GET /api/services/:id/employees
func (h *EmployeeServicesHandler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	serviceID := c.Param("id")

	if !h.serviceExists(c, serviceID) {
		return
	}

	employees, err := h.assignments.ListEmployeesForService(ctx, serviceID)
	if err != nil {
		h.internal(c, "failed_to_list_service_employees", err)
		return
	}
	httpresp.OK(c, employees)
}

// PUT /api/employees/:id/services/:service_id
func (h *EmployeeServicesHandler) Assign(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")
	serviceID := c.Param("service_id")

	if !h.employeeExists(c, employeeID) || !h.serviceExists(c, serviceID) {
		return
	}

	if err := h.assignments.Assign(ctx, employeeID, serviceID); err != nil {
		h.internal(c, "failed_to_assign_service", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_assigned",
		Entity:   "employee",
		EntityID: employeeID,
		Metadata: map[string]string{"service_id": serviceID},
	})

	httpresp.NoContent(c)
}

// DELETE /api/employees/:id/services/:service_id
func (h *EmployeeServicesHandler) Unassign(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")
	serviceID := c.Param("service_id")

	if err := h.assignments.Unassign(ctx, employeeID, serviceID); err != nil {
		if errors.Is(err, pos.ErrNotFound) {
			httperr.NotFound(c, "assignment_not_found", "Employee does not perform this service")
			return
		}
		h.internal(c, "failed_to_unassign_service", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_unassigned",
		Entity:   "employee",
		EntityID: employeeID,
		Metadata: map[string]string{"service_id": serviceID},
	})

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func (h *EmployeeServicesHandler) employeeExists(c *gin.Context, id string) bool {
	if _, err := h.employees.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, pos.ErrNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found")
			return false
		}
		h.internal(c, "failed_to_get_employee", err)
		return false
	}
	return true
}

func (h *EmployeeServicesHandler) serviceExists(c *gin.Context, id string) bool {
	if _, err := h.services.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, pos.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found")
			return false
		}
		h.internal(c, "failed_to_get_service", err)
		return false
	}
	return true
}

func (h *EmployeeServicesHandler) internal(c *gin.Context, code string, err error) {
	logger.ErrorLog(c.Request.Context(), "%s: %v", code, err)
	httperr.Internal(c, code, err.Error())
}
