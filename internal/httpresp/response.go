package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageResponse[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

type CreatedResponse struct {
	Message string `json:"message,omitempty"`
	ID      string `json:"id"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, message, id string) {
	c.JSON(http.StatusCreated, CreatedResponse{
		Message: message,
		ID:      id,
	})
}

// Updated answers a successful update with an empty 200.
func Updated(c *gin.Context) {
	c.Status(http.StatusOK)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Page[T any](c *gin.Context, page, limit int, total int64, data []T) {
	c.JSON(http.StatusOK, PageResponse[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  data,
	})
}
