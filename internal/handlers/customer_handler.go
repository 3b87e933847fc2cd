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

type CustomerRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Email       string `json:"email" binding:"omitempty,email_address,max=100"`
	Document    string `json:"document" binding:"omitempty,max=20"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
}

func (r *CustomerRequest) toModel() models.Customer {
	return models.Customer{
		Name:        strings.TrimSpace(r.Name),
		Email:       optional(r.Email),
		Document:    optional(r.Document),
		PhoneNumber: optional(r.PhoneNumber),
	}
}

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler = ResourceHandler[models.Customer, CustomerRequest, CustomerRequest]

func NewCustomerHandler(repo pos.CustomerRepository, dispatcher *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{
		repo:            repo,
		audit:           dispatcher,
		entity:          "customer",
		plural:          "customers",
		label:           "Customer",
		notFoundMessage: "Customer not found",
		createdMessage:  true,
		fromCreate:      func(req *CustomerRequest) models.Customer { return req.toModel() },
		fromUpdate: func(id string, req *CustomerRequest) models.Customer {
			m := req.toModel()
			m.Base = withID(id)
			return m
		},
		idOf: func(m *models.Customer) string { return m.ID },
	}
}
