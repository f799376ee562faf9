package handler

import (
	"hostly/config"
	"hostly/di"
	"hostly/shared/logger"
	"hostly/transport/http/response"
	"net/http"

	"github.com/rs/zerolog/log"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	handler, err := di.InitializeService()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize service")

		response.WithError(w, err)

		return
	}

	handler.ServeHTTP(w, r)
}
