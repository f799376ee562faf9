package model

import "hostly/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldHostID      = "host_id"
	FieldEmail       = "email"
	FieldRecordType  = "record_type"
	FieldPhoneNumber = "phone_number"
	FieldLastName    = "last_name"
	FieldRegistered  = "registered"
	FieldStatus      = "status"
)

const (
	CustomerTableName  = "customers"
	CustomerEntityName = "customer"

	FieldCustomerID     = "id"
	FieldCustomerHostID = "host_id"
	FieldCustomerEmail  = "email"
	FieldCustomerStatus = "status"
)

const (
	RecordTypeUser = "USER"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// User is a person's durable identity. It is never deleted.
type User struct {
	ID          string  `db:"id"`
	HostID      string  `db:"host_id"`
	Email       string  `db:"email"`
	RecordType  string  `db:"record_type"`
	Name        string  `db:"name"`
	LastName    *string `db:"last_name"`
	PhoneNumber *string `db:"phone_number"`
	Registered  bool    `db:"registered"`
	Status      string  `db:"status"`
	model.Metadata
}

// Customer is the per host relationship layered on a User.
type Customer struct {
	ID     string `db:"id"`
	HostID string `db:"host_id"`
	UserID string `db:"user_id"`
	Email  string `db:"email"`
	Name   string `db:"name"`
	Status string `db:"status"`
	model.Metadata

	// IsRegistered mirrors the user's registered flag and is not persisted.
	IsRegistered bool `json:"isRegistered"`
}
