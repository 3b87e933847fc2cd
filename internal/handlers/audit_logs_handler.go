package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/httperr"
	"github.com/JGuylherme/Service-POS/internal/httpresp"
	"github.com/JGuylherme/Service-POS/internal/logger"
	"github.com/JGuylherme/Service-POS/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// GET /api/audit-logs?entity=&entity_id=&action=&from=&to=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	entityID := c.Query("entity_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if entityID != "" {
		q = q.Where("entity_id = ?", entityID)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logger.ErrorLog(c.Request.Context(), "audit count failed: %v", err)
		httperr.Internal(c, "audit_count_failed", err.Error())
		return
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		logger.ErrorLog(c.Request.Context(), "audit list failed: %v", err)
		httperr.Internal(c, "audit_list_failed", err.Error())
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
