package events

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	"hostly/shared/constant"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultObserverTimeout = 10 * time.Second

var ErrObserverTimeout = errors.New("observer timed out")

type Dispatcher interface {
	Register(observer Observer)
	Observers() []Observer
	Notify(ctx context.Context, event Event) []Result
}

type dispatcherImpl struct {
	mu        sync.RWMutex
	observers []Observer
	timeout   time.Duration
	otel      otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Dispatcher {
	timeout := time.Duration(cfg.Events.ObserverTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultObserverTimeout
	}

	return &dispatcherImpl{
		timeout: timeout,
		otel:    otel,
	}
}

// Register keeps observers ordered by descending priority. Equal priorities keep registration order.
func (d *dispatcherImpl) Register(observer Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.observers = append(d.observers, observer)
	slices.SortStableFunc(d.observers, func(a, b Observer) int {
		return b.Priority() - a.Priority()
	})

	log.Debug().Str("observer", observer.Name()).Int("priority", observer.Priority()).Msg("registered booking observer")
}

func (d *dispatcherImpl) Observers() []Observer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.observers)
}

// Notify runs every observer one after another. Errors, panics and timeouts are
// collected into the results and logged, never returned.
func (d *dispatcherImpl) Notify(ctx context.Context, event Event) []Result {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".events.Notify")
	defer scope.End()

	observers := d.Observers()
	results := make([]Result, 0, len(observers))

	for _, observer := range observers {
		started := time.Now()
		err := d.run(ctx, observer, event)

		result := Result{
			Observer: observer.Name(),
			Priority: observer.Priority(),
			Duration: time.Since(started),
			Err:      err,
		}

		if err != nil {
			scope.TraceError(err)
			log.Error().
				Err(err).
				Str("observer", result.Observer).
				Str("event", event.Name).
				Str("bookingID", event.Booking.ID).
				Msg("booking observer failed")
		}

		results = append(results, result)
	}

	return results
}

func (d *dispatcherImpl) run(ctx context.Context, observer Observer, event Event) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("observer %s panicked: %v", observer.Name(), r)
			}
		}()

		done <- observer.Handle(ctx, event)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %s: %s", ErrObserverTimeout, d.timeout, observer.Name())
	}
}
