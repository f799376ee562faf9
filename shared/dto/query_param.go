package dto

import (
	"cmp"
	"hostly/shared/constant"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries paging and ordering for list endpoints. SortBy is checked against
// an identifier pattern by the repository before it reaches SQL.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Malformed values are ignored.
// With withDefaults, anything still unset falls back to the list defaults.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	q.Page = positiveInt(values, constant.RequestParamPage, q.Page)
	q.Limit = positiveInt(values, constant.RequestParamLimit, q.Limit)

	if sortBy := values.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	q.Page = cmp.Or(q.Page, constant.DefaultValuePage)
	q.Limit = cmp.Or(q.Limit, constant.DefaultValueLimit)
	q.SortBy = cmp.Or(q.SortBy, constant.DefaultValueSortBy)
	q.SortDir = cmp.Or(q.SortDir, constant.DefaultValueSortDir)
}

func positiveInt(values url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
