package models

type Customer struct {
	Base

	Name        string  `gorm:"size:100;not null" json:"name"`
	Email       *string `gorm:"size:100" json:"email"`
	Document    *string `gorm:"size:20" json:"document"`
	PhoneNumber *string `gorm:"size:20" json:"phone_number"`
}
