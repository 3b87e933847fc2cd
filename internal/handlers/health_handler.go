package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/db"
	"github.com/JGuylherme/Service-POS/internal/httperr"
	"github.com/JGuylherme/Service-POS/internal/logger"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root reports that the API is up and the store answers.
func (h *HealthHandler) Root(c *gin.Context) {
	now, err := db.Now(c.Request.Context(), h.db)
	if err != nil {
		logger.ErrorLog(c.Request.Context(), "liveness query failed: %v", err)
		httperr.Internal(c, "database_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "API working!",
		"db_time": now,
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
