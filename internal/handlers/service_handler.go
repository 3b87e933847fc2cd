package handlers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/domain/pos"
	"github.com/JGuylherme/Service-POS/internal/models"
)

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name        string           `json:"name" binding:"required,notblank,max=100"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required,gte=0,decimal_places=2"`
	DurationMin *int             `json:"duration_min" binding:"required,gte=0"`
}

func (r *ServiceRequest) toModel() models.Service {
	return models.Service{
		Name:        strings.TrimSpace(r.Name),
		Description: optional(r.Description),
		Price:       money(r.Price),
		DurationMin: intValue(r.DurationMin),
	}
}

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler = ResourceHandler[models.Service, ServiceRequest, ServiceRequest]

func NewServiceHandler(repo pos.ServiceRepository, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{
		repo:            repo,
		audit:           dispatcher,
		entity:          "service",
		plural:          "services",
		label:           "Service",
		notFoundMessage: "Service not found",
		createdMessage:  true,
		fromCreate:      func(req *ServiceRequest) models.Service { return req.toModel() },
		fromUpdate: func(id string, req *ServiceRequest) models.Service {
			m := req.toModel()
			m.Base = withID(id)
			return m
		},
		idOf: func(m *models.Service) string { return m.ID },
	}
}
