package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/config"
	"github.com/JGuylherme/Service-POS/internal/db/dbtest"
	"github.com/JGuylherme/Service-POS/internal/routes"
)

type server struct {
	t      *testing.T
	engine *gin.Engine
	audit  *audit.Dispatcher
}

func newServer(t *testing.T, cfg *config.Config) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := dbtest.Open(t)
	dispatcher := audit.NewDispatcher(audit.New(gdb), 100)
	t.Cleanup(dispatcher.Close)

	if cfg == nil {
		cfg = &config.Config{}
	}

	r := routes.NewEngine(nil)
	routes.RegisterRoutes(r, gdb, cfg, dispatcher)

	return &server{t: t, engine: r, audit: dispatcher}
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *server) create(path string, body any) string {
	s.t.Helper()
	w := s.do(http.MethodPost, path, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(s.t, out.ID)
	return out.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// seedBooking creates a customer, employee, service and one appointment.
func (s *server) seedBooking() (customerID, employeeID, serviceID, appointmentID string) {
	customerID = s.create("/api/customers", gin.H{"name": "Ana", "email": "ana@example.com"})
	employeeID = s.create("/api/employees", gin.H{
		"name": "Bruno", "email": "bruno@salon.test", "password_hash": "$2a$10$x", "role": "employee",
	})
	serviceID = s.create("/api/services", gin.H{"name": "Haircut", "price": 50, "duration_min": 30})
	appointmentID = s.create("/api/appointments", gin.H{
		"customer_id": customerID,
		"employee_id": employeeID,
		"service_id":  serviceID,
		"start_time":  "2025-07-14 10:00:00",
		"end_time":    "2025-07-14 10:30:00",
	})
	return
}

func TestRoot_Liveness(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "API working!", body["message"])
	assert.NotEmpty(t, body["db_time"])

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", nil).Code)
}

func TestCustomers_CreateAndFetch(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodPost, "/api/customers", gin.H{"name": "Ana", "email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[map[string]string](t, w)
	assert.Equal(t, "Customer created", created["message"])
	require.Len(t, created["id"], 36)

	w = s.do(http.MethodGet, "/api/customers/"+created["id"], nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[map[string]any](t, w)
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, "Ana", got["name"])
	assert.Equal(t, "ana@example.com", got["email"])
	assert.Nil(t, got["phone_number"])
	assert.Nil(t, got["document"])
}

func TestCustomers_NameRequired(t *testing.T) {
	s := newServer(t, nil)

	for _, body := range []any{gin.H{"email": "ana@example.com"}, gin.H{"name": "   "}} {
		w := s.do(http.MethodPost, "/api/customers", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		res := decode[map[string]any](t, w)
		assert.Equal(t, "validation_failed", res["error_code"])
		assert.Equal(t, "name is required", res["message"])
	}

	w := s.do(http.MethodGet, "/api/customers", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCustomers_InvalidEmailAndMalformedBody(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodPost, "/api/customers", gin.H{"name": "Ana", "email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email", decode[map[string]any](t, w)["fields"].([]any)[0].(map[string]any)["field"])

	w = s.do(http.MethodPost, "/api/customers", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[map[string]any](t, w)["error_code"])
}

func TestCustomers_ListNewestFirst(t *testing.T) {
	s := newServer(t, nil)

	s.create("/api/customers", gin.H{"name": "First"})
	s.create("/api/customers", gin.H{"name": "Second"})

	rows := decode[[]map[string]any](t, s.do(http.MethodGet, "/api/customers", nil))
	require.Len(t, rows, 2)
	// equal timestamps fall back to id order, so only membership is certain
	names := []any{rows[0]["name"], rows[1]["name"]}
	assert.ElementsMatch(t, []any{"First", "Second"}, names)
}

func TestCustomers_UpdateRewritesFields(t *testing.T) {
	s := newServer(t, nil)
	id := s.create("/api/customers", gin.H{"name": "Ana", "email": "ana@example.com"})

	w := s.do(http.MethodPut, "/api/customers/"+id, gin.H{"name": "Ana Maria", "phone_number": "11999990000"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/customers/"+id, nil))
	assert.Equal(t, "Ana Maria", got["name"])
	assert.Equal(t, "11999990000", got["phone_number"])
	assert.Nil(t, got["email"])
}

func TestEmployees_UpdateUnknownID(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodPut, "/api/employees/nonexistent", gin.H{
		"name": "X", "email": "x@y.z", "password_hash": "h", "role": "admin",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "employee_not_found", decode[map[string]any](t, w)["error_code"])

	assert.JSONEq(t, `[]`, s.do(http.MethodGet, "/api/employees", nil).Body.String())
}

func TestEmployees_RoleDefaultsAndValidation(t *testing.T) {
	s := newServer(t, nil)

	id := s.create("/api/employees", gin.H{"name": "Carla", "email": "carla@salon.test", "password_hash": "h"})
	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/employees/"+id, nil))
	assert.Equal(t, "employee", got["role"])

	w := s.do(http.MethodPost, "/api/employees", gin.H{
		"name": "Dan", "email": "dan@salon.test", "password_hash": "h", "role": "owner",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployees_UpdateRequiresRole(t *testing.T) {
	s := newServer(t, nil)
	id := s.create("/api/employees", gin.H{
		"name": "Eva", "email": "eva@salon.test", "password_hash": "h", "role": "admin",
	})

	w := s.do(http.MethodPut, "/api/employees/"+id, gin.H{
		"name": "Eva Lima", "email": "eva@salon.test", "password_hash": "h",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "role is required", decode[map[string]any](t, w)["message"])

	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/employees/"+id, nil))
	assert.Equal(t, "admin", got["role"])
	assert.Equal(t, "Eva", got["name"])

	w = s.do(http.MethodPut, "/api/employees/"+id, gin.H{
		"name": "Eva Lima", "email": "eva@salon.test", "password_hash": "h", "role": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got = decode[map[string]any](t, s.do(http.MethodGet, "/api/employees/"+id, nil))
	assert.Equal(t, "admin", got["role"])
	assert.Equal(t, "Eva Lima", got["name"])
}

func TestServices_PriceRoundTrip(t *testing.T) {
	s := newServer(t, nil)

	id := s.create("/api/services", gin.H{"name": "Coloring", "description": "Full color", "price": "120.50", "duration_min": 90})

	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/services/"+id, nil))
	price, err := decimal.NewFromString(got["price"].(string))
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("120.5")))
	assert.Equal(t, float64(90), got["duration_min"])

	w := s.do(http.MethodPost, "/api/services", gin.H{"name": "Free", "price": -1, "duration_min": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/services", gin.H{"name": "Missing price", "duration_min": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoney_RejectsExtraDecimalPlaces(t *testing.T) {
	s := newServer(t, nil)

	w := s.do(http.MethodPost, "/api/services", gin.H{"name": "Trim", "price": "19.999", "duration_min": 15})
	require.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[map[string]any](t, w)
	assert.Equal(t, "validation_failed", res["error_code"])
	assert.Equal(t, "price must have at most 2 decimal places", res["message"])

	w = s.do(http.MethodPost, "/api/services", gin.H{"name": "Trim", "price": 19.999, "duration_min": 15})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `[]`, s.do(http.MethodGet, "/api/services", nil).Body.String())

	id := s.create("/api/services", gin.H{"name": "Trim", "price": "19.90", "duration_min": 15})
	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/services/"+id, nil))
	price, err := decimal.NewFromString(got["price"].(string))
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("19.9")))

	_, _, _, appointmentID := s.seedBooking()
	w = s.do(http.MethodPost, "/api/payments", gin.H{"appointment_id": appointmentID, "amount": "10.005"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "amount", decode[map[string]any](t, w)["fields"].([]any)[0].(map[string]any)["field"])
}

func TestAppointments_UnknownEmployeeIsStoreFailure(t *testing.T) {
	s := newServer(t, nil)
	customerID, _, serviceID, _ := s.seedBooking()

	w := s.do(http.MethodPost, "/api/appointments", gin.H{
		"customer_id": customerID,
		"employee_id": "nonexistent",
		"service_id":  serviceID,
		"start_time":  "2025-07-14 10:00:00",
		"end_time":    "2025-07-14 11:00:00",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	res := decode[map[string]any](t, w)
	assert.Equal(t, "failed_to_create_appointment", res["error_code"])
	assert.Contains(t, res["message"], "FOREIGN KEY constraint failed")
	assert.NotContains(t, res["message"], "create:")

	rows := decode[[]map[string]any](t, s.do(http.MethodGet, "/api/appointments", nil))
	assert.Len(t, rows, 1)
}

func TestAppointments_DefaultStatusAndUpdate(t *testing.T) {
	s := newServer(t, nil)
	_, _, _, appointmentID := s.seedBooking()

	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/appointments/"+appointmentID, nil))
	assert.Equal(t, "scheduled", got["status"])

	w := s.do(http.MethodPut, "/api/appointments/"+appointmentID, gin.H{
		"start_time": "2025-07-14T11:00:00Z",
		"end_time":   "2025-07-14T11:30:00Z",
		"status":     "completed",
		"notes":      "regular",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got = decode[map[string]any](t, s.do(http.MethodGet, "/api/appointments/"+appointmentID, nil))
	assert.Equal(t, "completed", got["status"])
	assert.Equal(t, "regular", got["notes"])
}

func TestDeleteThenGet_NotFound(t *testing.T) {
	s := newServer(t, nil)
	customerID, employeeID, serviceID, appointmentID := s.seedBooking()

	paymentID := s.create("/api/payments", gin.H{"appointment_id": appointmentID, "amount": 50, "method": "card"})
	trackingID := s.create("/api/time-tracking", gin.H{
		"appointment_id": appointmentID, "employee_id": employeeID, "start_time": "2025-07-14 10:00:00",
	})

	// children first, the store refuses to orphan them
	for _, path := range []string{
		"/api/time-tracking/" + trackingID,
		"/api/payments/" + paymentID,
		"/api/appointments/" + appointmentID,
		"/api/customers/" + customerID,
		"/api/employees/" + employeeID,
		"/api/services/" + serviceID,
	} {
		require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, path, nil).Code, path)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, path, nil).Code, path)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, path, nil).Code, path)
	}
}

func TestDelete_ReferencedCustomerConflicts(t *testing.T) {
	s := newServer(t, nil)
	customerID, _, _, _ := s.seedBooking()

	w := s.do(http.MethodDelete, "/api/customers/"+customerID, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "customer_in_use", decode[map[string]any](t, w)["error_code"])

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/customers/"+customerID, nil).Code)
}

func TestLegacyEmptyLookup(t *testing.T) {
	s := newServer(t, &config.Config{LegacyEmptyLookup: true})

	for _, path := range []string{"/api/appointments/missing", "/api/payments/missing"} {
		w := s.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{}`, w.Body.String())
	}

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/customers/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/payments/missing", gin.H{"amount": 1}).Code)
}

func TestTimeTracking_OpenThenClose(t *testing.T) {
	s := newServer(t, nil)
	_, employeeID, _, appointmentID := s.seedBooking()

	id := s.create("/api/time-tracking", gin.H{
		"appointment_id": appointmentID, "employee_id": employeeID, "start_time": "2025-07-14 10:00:00",
	})
	got := decode[map[string]any](t, s.do(http.MethodGet, "/api/time-tracking/"+id, nil))
	assert.Nil(t, got["end_time"])

	w := s.do(http.MethodPut, "/api/time-tracking/"+id, gin.H{
		"appointment_id": appointmentID, "employee_id": employeeID,
		"start_time": "2025-07-14 10:00:00", "end_time": "2025-07-14 10:40:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got = decode[map[string]any](t, s.do(http.MethodGet, "/api/time-tracking/"+id, nil))
	assert.NotNil(t, got["end_time"])

	w = s.do(http.MethodGet, "/api/time-tracking/unknown", nil)
	assert.Equal(t, "Record not found", decode[map[string]any](t, w)["message"])
}

func TestEmployeeServices(t *testing.T) {
	s := newServer(t, nil)
	_, employeeID, serviceID, _ := s.seedBooking()

	path := "/api/employees/" + employeeID + "/services/" + serviceID
	require.Equal(t, http.StatusNoContent, s.do(http.MethodPut, path, nil).Code)
	require.Equal(t, http.StatusNoContent, s.do(http.MethodPut, path, nil).Code)

	services := decode[[]map[string]any](t, s.do(http.MethodGet, "/api/employees/"+employeeID+"/services", nil))
	require.Len(t, services, 1)
	assert.Equal(t, serviceID, services[0]["id"])

	employees := decode[[]map[string]any](t, s.do(http.MethodGet, "/api/services/"+serviceID+"/employees", nil))
	require.Len(t, employees, 1)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/employees/"+employeeID+"/services/unknown", nil).Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/employees/unknown/services", nil).Code)
}

func TestVisits_RecordAtomically(t *testing.T) {
	s := newServer(t, nil)
	customerID, employeeID, serviceID, _ := s.seedBooking()

	w := s.do(http.MethodPost, "/api/visits", gin.H{
		"customer_id": customerID,
		"employee_id": employeeID,
		"service_id":  serviceID,
		"start_time":  "2025-07-15 09:00:00",
		"end_time":    "2025-07-15 09:30:00",
		"status":      "completed",
		"payment":     gin.H{"amount": "50.00", "method": "pix", "paid_at": "2025-07-15 09:31:00", "status": "paid"},
		"time_tracking": gin.H{
			"start_time": "2025-07-15 09:00:00",
			"end_time":   "2025-07-15 09:28:00",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	out := decode[map[string]any](t, w)
	assert.NotEmpty(t, out["appointment_id"])
	assert.NotEmpty(t, out["payment_id"])
	assert.NotEmpty(t, out["time_tracking_id"])

	w = s.do(http.MethodPost, "/api/visits", gin.H{
		"customer_id": customerID,
		"employee_id": "nonexistent",
		"service_id":  serviceID,
		"start_time":  "2025-07-15 09:00:00",
		"end_time":    "2025-07-15 09:30:00",
		"payment":     gin.H{"amount": 50},
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(http.MethodPost, "/api/visits", gin.H{
		"customer_id": customerID,
		"employee_id": employeeID,
		"service_id":  serviceID,
		"start_time":  "2025-07-15 09:30:00",
		"end_time":    "2025-07-15 09:00:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_time_range", decode[map[string]any](t, w)["error_code"])

	assert.Len(t, decode[[]any](t, s.do(http.MethodGet, "/api/appointments", nil)), 2)
	assert.Len(t, decode[[]any](t, s.do(http.MethodGet, "/api/payments", nil)), 1)
}

func TestAuditLogs(t *testing.T) {
	s := newServer(t, nil)

	id := s.create("/api/customers", gin.H{"name": "Ana"})
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/customers/"+id, gin.H{"name": "Ana Maria"}).Code)
	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/customers/"+id, nil).Code)
	s.create("/api/services", gin.H{"name": "Haircut", "price": 50, "duration_min": 30})
	s.audit.Close()

	w := s.do(http.MethodGet, "/api/audit-logs?entity=customer&entity_id="+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[struct {
		Total int64            `json:"total"`
		Data  []map[string]any `json:"data"`
	}](t, w)
	assert.Equal(t, int64(3), page.Total)

	actions := make([]any, 0, len(page.Data))
	for _, row := range page.Data {
		actions = append(actions, row["action"])
	}
	assert.ElementsMatch(t, []any{"created", "updated", "deleted"}, actions)

	w = s.do(http.MethodGet, "/api/audit-logs?limit=1&page=2", nil)
	page = decode[struct {
		Total int64            `json:"total"`
		Data  []map[string]any `json:"data"`
	}](t, w)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Data, 1)
}
