package response

import (
	"encoding/json"
	"hostly/shared/constant"
	"hostly/shared/failure"
	"hostly/shared/logger"
	"net/http"
)

// Data, Error and Message are the three envelopes every endpoint answers with.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request.
type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithJSON writes payload wrapped in a data envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithMessage writes a plain message body.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithError derives the status from err. Only failure messages are shown to the caller.
func WithError(writer http.ResponseWriter, err error) {
	message := failure.Message(err)

	write(writer, failure.GetCode(err), Error{Error: &message})
}

// WithRequestLimitExceeded writes a 429.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown tells clients the server is draining.
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy writes a 503 for failed health checks.
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, envelope any) {
	body, err := json.Marshal(envelope)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		body = []byte(`{"error":"Internal Server Error"}`)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
