package observer

import (
	"context"
	"fmt"
	billingModel "hostly/internal/domains/billing/model"
	bookingModel "hostly/internal/domains/booking/model"
	"hostly/internal/events"
	"hostly/shared"
	"hostly/shared/cache"
	"hostly/shared/constant"
)

const PriorityCache = 1

type cacheObserver struct {
	cache cache.RedisCache
}

// NewCache drops the cached booking listings and the host's current invoice once the booking is committed.
func NewCache(cache cache.RedisCache) events.Observer {
	return &cacheObserver{cache: cache}
}

func (o *cacheObserver) Name() string  { return "cache-invalidation" }
func (o *cacheObserver) Priority() int { return PriorityCache }

func (o *cacheObserver) Handle(ctx context.Context, event events.Event) error {
	prefixes := []string{bookingModel.CacheKeyGetBookings, bookingModel.CacheKeyCount}
	if event.Host.ID != constant.Empty {
		prefixes = append(prefixes, shared.BuildCacheKey(billingModel.CacheKeyCurrentInvoice, event.Host.ID))
	}

	for _, prefix := range prefixes {
		if err := o.cache.Clear(ctx, prefix+constant.Asterix); err != nil {
			return fmt.Errorf("failed to clear %s cache: %w", prefix, err)
		}
	}

	return nil
}
