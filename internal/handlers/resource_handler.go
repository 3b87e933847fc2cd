package handlers

import (
	"errors"
	"fmt"
	"net/http"

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

// ResourceHandler serves the five CRUD routes of one entity table.
// M is the stored model, C the create body and U the update body.
type ResourceHandler[M any, C any, U any] struct {
	repo  pos.Repository[M]
	audit *audit.Dispatcher

	entity string
	plural string
	label  string

	notFoundMessage string
	createdMessage  bool
	emptyOnMissing  bool

	fromCreate func(req *C) M
	fromUpdate func(id string, req *U) M
	idOf       func(m *M) string
}

type ResourceOption func(*resourceSettings)

type resourceSettings struct {
	emptyOnMissing bool
}

// WithEmptyOnMissing answers a fetch of an unknown id with 200 {}.
func WithEmptyOnMissing(enabled bool) ResourceOption {
	return func(s *resourceSettings) { s.emptyOnMissing = enabled }
}

func applyOptions(opts []ResourceOption) resourceSettings {
	var s resourceSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ======================================================
// ROUTES
// ======================================================

func (h *ResourceHandler[M, C, U]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[M, C, U]) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", h.plural, err)
		return
	}
	httpresp.OK(c, rows)
}

func (h *ResourceHandler[M, C, U]) Get(c *gin.Context) {
	row, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if h.emptyOnMissing && errors.Is(err, pos.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		h.fail(c, "get", h.entity, err)
		return
	}
	httpresp.OK(c, row)
}

func (h *ResourceHandler[M, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	row := h.fromCreate(&req)
	if err := h.repo.Create(c.Request.Context(), &row); err != nil {
		h.fail(c, "create", h.entity, err)
		return
	}

	id := h.idOf(&row)
	h.audit.Dispatch(audit.Event{
		Action:   "created",
		Entity:   h.entity,
		EntityID: id,
		Metadata: auditMetadata(&req),
	})

	message := ""
	if h.createdMessage {
		message = h.label + " created"
	}
	httpresp.Created(c, message, id)
}

func (h *ResourceHandler[M, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	id := c.Param("id")
	row := h.fromUpdate(id, &req)
	if err := h.repo.Update(c.Request.Context(), &row); err != nil {
		h.fail(c, "update", h.entity, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "updated",
		Entity:   h.entity,
		EntityID: id,
		Metadata: auditMetadata(&req),
	})

	httpresp.Updated(c)
}

func (h *ResourceHandler[M, C, U]) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", h.entity, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "deleted",
		Entity:   h.entity,
		EntityID: id,
	})

	httpresp.NoContent(c)
}

// auditRedactor lets a request body decide what reaches the audit journal.
type auditRedactor interface {
	AuditMetadata() any
}

func auditMetadata(req any) any {
	if r, ok := req.(auditRedactor); ok {
		return r.AuditMetadata()
	}
	return req
}

// ======================================================
// ERRORS
// ======================================================

func (h *ResourceHandler[M, C, U]) fail(c *gin.Context, op, noun string, err error) {
	switch {
	case errors.Is(err, pos.ErrNotFound):
		httperr.NotFound(c, h.entity+"_not_found", h.notFoundMessage)
	case errors.Is(err, pos.ErrInUse):
		httperr.Conflict(c, h.entity+"_in_use",
			fmt.Sprintf("%s is still referenced by other records", h.label))
	default:
		logger.ErrorLog(
			logger.WithLogger(c.Request.Context(), map[string]interface{}{
				"entity": h.entity,
				"op":     op,
			}),
			"store operation failed: %v",
			err,
		)
		httperr.Internal(c, "failed_to_"+op+"_"+noun, err.Error())
	}
}
