package dto

import "strings"

// CustomerData is the identity part of a booking request.
type CustomerData struct {
	Email       string `json:"email"       validate:"required,email,max=100"`
	Name        string `json:"name"        validate:"required,max=100"`
	LastName    string `json:"lastName"    validate:"omitempty,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
}

// NormalizedEmail is the lookup key for users and customers.
func (c CustomerData) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(c.Email))
}
