package invoice

import (
	"hostly/infras/otel"
	"hostly/internal/domains/billing/service"
	"hostly/shared/constant"
	"hostly/shared/failure"
	"hostly/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Get("/current", handler.GetCurrentInvoice)
	})
}

// GetCurrentInvoice returns the host's open invoice.
// @Summary Get the current invoice
// @Description Retrieve the IN_PROGRESS invoice that collects the host's booking commissions.
// @Tags Invoice
// @Produce json
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Current invoice"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/current [get]
// @Security BearerAuth
func (handler *Handler) GetCurrentInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentInvoice")
	defer scope.End()

	hostID, ok := ctx.Value(constant.ContextKeyHostID).(string)
	if !ok || hostID == constant.Empty {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	invoice, err := handler.service.GetCurrentInvoice(ctx, hostID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hostID", hostID).Msg("failed to get current invoice")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, invoice)
}
