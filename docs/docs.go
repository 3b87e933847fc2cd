// Package docs registers the OpenAPI document served under /swagger.
// The path list is maintained by hand alongside internal/routes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/customers": {
			"get": {"tags": ["Customers"], "summary": "List customers", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Store failure"}}},
			"post": {"tags": ["Customers"], "summary": "Create a customer", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "500": {"description": "Store failure"}}}
		},
		"/customers/{id}": {
			"get": {"tags": ["Customers"], "summary": "Get a customer", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"put": {"tags": ["Customers"], "summary": "Update a customer", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Updated"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"delete": {"tags": ["Customers"], "summary": "Delete a customer", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}, "409": {"description": "Still referenced"}, "500": {"description": "Store failure"}}}
		},
		"/employees": {
			"get": {"tags": ["Employees"], "summary": "List employees", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Store failure"}}},
			"post": {"tags": ["Employees"], "summary": "Create a employee", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "500": {"description": "Store failure"}}}
		},
		"/employees/{id}": {
			"get": {"tags": ["Employees"], "summary": "Get a employee", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"put": {"tags": ["Employees"], "summary": "Update a employee", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Updated"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"delete": {"tags": ["Employees"], "summary": "Delete a employee", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}, "409": {"description": "Still referenced"}, "500": {"description": "Store failure"}}}
		},
		"/services": {
			"get": {"tags": ["Services"], "summary": "List services", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Store failure"}}},
			"post": {"tags": ["Services"], "summary": "Create a service", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "500": {"description": "Store failure"}}}
		},
		"/services/{id}": {
			"get": {"tags": ["Services"], "summary": "Get a service", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"put": {"tags": ["Services"], "summary": "Update a service", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Updated"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"delete": {"tags": ["Services"], "summary": "Delete a service", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}, "409": {"description": "Still referenced"}, "500": {"description": "Store failure"}}}
		},
		"/appointments": {
			"get": {"tags": ["Appointments"], "summary": "List appointments", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Store failure"}}},
			"post": {"tags": ["Appointments"], "summary": "Create a appointment", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "500": {"description": "Store failure"}}}
		},
		"/appointments/{id}": {
			"get": {"tags": ["Appointments"], "summary": "Get a appointment", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"put": {"tags": ["Appointments"], "summary": "Update a appointment", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Updated"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"delete": {"tags": ["Appointments"], "summary": "Delete a appointment", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}, "409": {"description": "Still referenced"}, "500": {"description": "Store failure"}}}
		},
		"/payments": {
			"get": {"tags": ["Payments"], "summary": "List payments", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Store failure"}}},
			"post": {"tags": ["Payments"], "summary": "Create a payment", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "500": {"description": "Store failure"}}}
		},
		"/payments/{id}": {
			"get": {"tags": ["Payments"], "summary": "Get a payment", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"put": {"tags": ["Payments"], "summary": "Update a payment", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Updated"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"delete": {"tags": ["Payments"], "summary": "Delete a payment", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}, "409": {"description": "Still referenced"}, "500": {"description": "Store failure"}}}
		},
		"/time-tracking": {
			"get": {"tags": ["TimeTracking"], "summary": "List time tracking", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Store failure"}}},
			"post": {"tags": ["TimeTracking"], "summary": "Create a time tracking record", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "500": {"description": "Store failure"}}}
		},
		"/time-tracking/{id}": {
			"get": {"tags": ["TimeTracking"], "summary": "Get a time tracking record", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"put": {"tags": ["TimeTracking"], "summary": "Update a time tracking record", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Updated"}, "400": {"description": "Validation failed"}, "404": {"description": "Not found"}, "500": {"description": "Store failure"}}},
			"delete": {"tags": ["TimeTracking"], "summary": "Delete a time tracking record", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}, "409": {"description": "Still referenced"}, "500": {"description": "Store failure"}}}
		},
		"/employees/{id}/services": {
			"get": {"tags": ["Employees"], "summary": "List the services an employee performs", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
		},
		"/employees/{id}/services/{service_id}": {
			"put": {"tags": ["Employees"], "summary": "Assign a service to an employee", "produces": ["application/json"], "parameters": [{"in": "path", "name": "service_id", "required": true, "type": "string"}, {"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Assigned"}, "404": {"description": "Not found"}}},
			"delete": {"tags": ["Employees"], "summary": "Unassign a service from an employee", "produces": ["application/json"], "parameters": [{"in": "path", "name": "service_id", "required": true, "type": "string"}, {"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Unassigned"}, "404": {"description": "Not found"}}}
		},
		"/services/{id}/employees": {
			"get": {"tags": ["Services"], "summary": "List the employees performing a service", "produces": ["application/json"], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
		},
		"/visits": {
			"post": {"tags": ["Visits"], "summary": "Record an appointment with its payment and time tracking", "produces": ["application/json"], "consumes": ["application/json"], "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed or invalid_time_range"}, "500": {"description": "Store failure, nothing written"}}}
		},
		"/audit-logs": {
			"get": {"tags": ["Audit"], "summary": "List audit log entries", "produces": ["application/json"], "parameters": [{"in": "query", "name": "action", "type": "string"}, {"in": "query", "name": "entity", "type": "string"}, {"in": "query", "name": "entity_id", "type": "string"}, {"in": "query", "name": "from", "type": "string"}, {"in": "query", "name": "to", "type": "string"}, {"in": "query", "name": "page", "type": "integer"}, {"in": "query", "name": "limit", "type": "integer"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad filter"}}}
		}
	}
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Service POS API",
	Description:      "Salon point-of-sale back office: customers, employees, services, appointments, payments and time tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
