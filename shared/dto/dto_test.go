package dto_test

import (
	"hostly/shared/constant"
	"hostly/shared/dto"
	"hostly/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.NewMetadata(createdAt, "booking-api"))

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "booking-api", metadata.CreatedBy)
	assert.Equal(t, "booking-api", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=created_at&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "created_at", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortBy: "created_at", SortDir: dto.SortDirDesc},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid values fall back to defaults",
			query:          "page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortBy: "created_at", SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		group         dto.FilterGroup
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "single equality",
			group:         dto.And(dto.Eq("invoices", "host_id", "H1")),
			expectedWhere: "(invoices.host_id = :host_id)",
			expectedArgs:  map[string]any{"host_id": "H1"},
		},
		{
			name: "and with in",
			group: dto.And(
				dto.Eq("invoices", "host_id", "H1"),
				dto.Filter{Field: "status", Value: []string{"IN_PROGRESS"}, Operator: dto.FilterOperatorIn, Table: "invoices"},
			),
			expectedWhere: "(invoices.host_id = :host_id AND invoices.status IN (:status_0))",
			expectedArgs:  map[string]any{"host_id": "H1", "status_0": "IN_PROGRESS"},
		},
		{
			name: "or with repeated field",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Eq("bookings", "payment_status", "PAID"),
					dto.Filter{ArgName: "unpaid", Field: "payment_status", Value: "PENDING", Operator: dto.FilterOperatorEq, Table: "bookings"},
				},
			},
			expectedWhere: "(bookings.payment_status = :payment_status OR bookings.payment_status = :unpaid)",
			expectedArgs:  map[string]any{"payment_status": "PAID", "unpaid": "PENDING"},
		},
		{
			name:          "empty in matches nothing",
			group:         dto.And(dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn}),
			expectedWhere: "(FALSE)",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator is skipped",
			group: dto.And(
				dto.Filter{Field: "name", Value: "x", Operator: "regex"},
				dto.Filter{Field: "closing_billing_date", Value: "2025-01-01", Operator: dto.FilterOperatorLessEq, Table: "invoices"},
			),
			expectedWhere: "(invoices.closing_billing_date <= :closing_billing_date)",
			expectedArgs:  map[string]any{"closing_billing_date": "2025-01-01"},
		},
		{
			name:          "empty group",
			group:         dto.FilterGroup{},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
