package model

import (
	billingModel "hostly/internal/domains/billing/model"
	"hostly/shared/model"
)

const (
	TableName  = "hosts"
	EntityName = "host"

	FieldID     = "id"
	FieldEmail  = "email"
	FieldStatus = "status"
)

const StatusActive = "ACTIVE"

type Host struct {
	ID          string                                `db:"id"           json:"id"`
	Name        string                                `db:"name"         json:"name"`
	Email       string                                `db:"email"        json:"email"`
	PhoneNumber *string                               `db:"phone_number" json:"phoneNumber"`
	Timezone    string                                `db:"timezone"     json:"timezone"`
	BillingPlan model.JSON[*billingModel.BillingPlan] `db:"billing_plan" json:"billingPlan"`
	Status      string                                `db:"status"       json:"status"`
	model.Metadata
}
