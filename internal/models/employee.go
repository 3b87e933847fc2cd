package models

type Employee struct {
	Base

	Name         string  `gorm:"size:100;not null" json:"name"`
	Email        string  `gorm:"size:100;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"password_hash"`
	Role         string  `gorm:"size:20;not null;default:'employee'" json:"role"`
	PhoneNumber  *string `gorm:"size:20" json:"phone_number"`
}
