package models

import "github.com/shopspring/decimal"

type Service struct {
	Base

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
}
