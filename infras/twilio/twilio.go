package twilio

//go:generate go run go.uber.org/mock/mockgen -source=./twilio.go -destination=./mocks/twilio_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	"hostly/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingRecipient = errors.New("sms recipient is required")

// SMS sends text messages and returns the provider message id.
type SMS interface {
	Send(ctx context.Context, to, body string) (sid string, err error)
}

type smsImpl struct {
	client *twilio.RestClient
	from   string
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) SMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.External.Twilio.AccountSID,
		Password: config.External.Twilio.AuthToken,
	})

	return &smsImpl{
		client: client,
		from:   config.External.Twilio.FromNumber,
		otel:   otel,
	}
}

func (s *smsImpl) Send(ctx context.Context, to, body string) (sid string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelSMSScopeName, constant.OtelSMSScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if to == "" {
		return constant.Empty, ErrMissingRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to send sms")

		return constant.Empty, fmt.Errorf("failed to send sms: %w", err)
	}

	if resp.Sid != nil {
		sid = *resp.Sid
	}

	return sid, nil
}
