package shared

import (
	"context"
	"errors"
	"fmt"
	"hostly/shared/cache"
	"hostly/shared/constant"
	"hostly/shared/dto"
	"math"
	"slices"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// CalculateTotalPage returns how many pages of limit rows hold total rows.
func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// FilterByID matches a single row by primary key.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery keys a listing by its page, sort and bound filter values.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key, value := range args {
		keys = append(keys, fmt.Sprintf("%s=%v", key, value))
	}

	slices.Sort(keys)

	return BuildCacheKey(prefix,
		fmt.Sprintf("%d", params.Page),
		fmt.Sprintf("%d", params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		strings.Join(keys, "&"),
	)
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// IsUniqueViolation reports whether err carries a postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
