package posclient

import (
	"strings"

	"github.com/JGuylherme/Service-POS/internal/validators"
)

type Customer struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Document    string `json:"document,omitempty"`
}

func CustomerColumns() []Column[Customer] {
	return []Column[Customer]{
		{Key: "name", Value: func(c Customer) string { return c.Name }},
		{Key: "email", Value: func(c Customer) string { return c.Email }},
		{Key: "phone_number", Value: func(c Customer) string { return c.PhoneNumber }},
	}
}

// NewCustomerStore wires the customer screen against client.
func NewCustomerStore(client *Client, n *Notifier) *Store[Customer] {
	return NewStore[Customer](NewResource[Customer](client, "customers"), StoreConfig[Customer]{
		Label:    "Customer",
		Plural:   "customers",
		Columns:  CustomerColumns(),
		IDOf:     func(c Customer) string { return c.ID },
		SetID:    func(c *Customer, id string) { c.ID = id },
		Notifier: n,
	})
}

// FormErrors maps a form field to its message.
type FormErrors map[string]string

// ValidateCustomerForm applies the checks run before a customer form is
// submitted. Contact needs at least one of email or phone.
func ValidateCustomerForm(c Customer) FormErrors {
	errs := FormErrors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(c.Email)
	phone := strings.TrimSpace(c.PhoneNumber)
	if email == "" && phone == "" {
		errs["email"] = "Email or phone is required"
	} else if email != "" && !validators.IsEmailFormatValid(email) {
		errs["email"] = "Invalid email"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
