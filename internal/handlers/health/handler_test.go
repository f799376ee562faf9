package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "hostly/infras/otel/mocks"
	"hostly/internal/handlers/health"
)

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name     string
		checks   map[string]health.Check
		wantCode int
		wantBody health.Status
	}{
		{
			name:     "all dependencies up",
			checks:   map[string]health.Check{"postgres": up, "redis": up},
			wantCode: http.StatusOK,
			wantBody: health.Status{Status: "UP", Dependencies: map[string]string{"postgres": "UP", "redis": "UP"}},
		},
		{
			name:     "redis down",
			checks:   map[string]health.Check{"postgres": up, "redis": down},
			wantCode: http.StatusServiceUnavailable,
			wantBody: health.Status{Status: "DOWN", Dependencies: map[string]string{"postgres": "UP", "redis": "DOWN"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.NewWithChecks(tt.checks, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantCode, rec.Code)

			var body struct {
				Data health.Status `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Data)
		})
	}
}
