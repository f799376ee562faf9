package health

import (
	"context"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/shared/constant"
	"hostly/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	checks map[string]Check
	otel   otel.Otel
}

func New(db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return NewWithChecks(map[string]Check{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return redis.Ping(ctx).Err() //nolint:wrapcheck
		},
	}, otel)
}

func NewWithChecks(checks map[string]Check, otel otel.Otel) Handler {
	return Handler{
		checks: checks,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the service and its stores are reachable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Data[Status]
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := Status{Status: "UP", Dependencies: map[string]string{}}
	code := http.StatusOK

	for name, check := range handler.checks {
		if err := check(ctx); err != nil {
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")
			scope.TraceError(err)

			status.Dependencies[name] = "DOWN"
			status.Status = "DOWN"
			code = http.StatusServiceUnavailable

			continue
		}

		status.Dependencies[name] = "UP"
	}

	response.WithJSON(w, code, status)
}
