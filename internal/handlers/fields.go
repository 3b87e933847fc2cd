package handlers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JGuylherme/Service-POS/internal/models"
)

// optional stores blank text as NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func withID(id string) models.Base {
	return models.Base{ID: id}
}

func money(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func intValue(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
