package model

import (
	"hostly/shared/model"
	"hostly/shared/money"
	"time"
)

const (
	TableName  = "products"
	EntityName = "product"

	FieldID     = "id"
	FieldHostID = "host_id"
)

const (
	PlanTableName  = "plans"
	PlanEntityName = "plan"

	FieldPlanID        = "id"
	FieldPlanProductID = "product_id"
)

const (
	DateTableName  = "product_dates"
	DateEntityName = "product_date"

	FieldDateID        = "id"
	FieldDateProductID = "product_id"
)

const (
	TypeOneToOneSession = "ONE_TO_ONE_SESSION"
	TypeEvent           = "EVENT"
	TypeCourse          = "COURSE"
)

type Product struct {
	ID     string `db:"id"      json:"id"`
	HostID string `db:"host_id" json:"hostId"`
	Name   string `db:"name"    json:"name"`
	Type   string `db:"type"    json:"type"`
	Free   bool   `db:"free"    json:"free"`
	Status string `db:"status"  json:"status"`
	model.Metadata
}

func (p Product) IsOneToOneSession() bool {
	return p.Type == TypeOneToOneSession
}

type Plan struct {
	ID                       string                       `db:"id"                         json:"id"`
	ProductID                string                       `db:"product_id"                 json:"productId"`
	Name                     string                       `db:"name"                       json:"name"`
	Price                    float64                      `db:"price"                      json:"price"`
	Currency                 string                       `db:"currency"                   json:"currency"`
	Discounts                model.JSON[[]money.Modifier] `db:"discounts"                  json:"discounts"`
	InstallmentsCount        int                          `db:"installments_count"         json:"installmentsCount"`
	InstallmentsIntervalDays int                          `db:"installments_interval_days" json:"installmentsIntervalDays"`
	model.Metadata
}

// HasInstallmentProgram reports whether the plan can be split into scheduled payments.
func (p Plan) HasInstallmentProgram() bool {
	return p.InstallmentsCount >= 2 && p.InstallmentsIntervalDays > 0
}

// Date is one scheduled occurrence from a product's date catalog.
type Date struct {
	ID        string    `db:"id"         json:"id"`
	ProductID string    `db:"product_id" json:"productId"`
	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date"   json:"endDate"`
	model.Metadata
}
