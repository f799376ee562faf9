package strategy

//go:generate go run go.uber.org/mock/mockgen -source=./strategy.go -destination=../mocks/strategy_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"hostly/config"
	"hostly/internal/domains/payment/model"
	"hostly/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	ProcessorManual                 = "MANUAL"
	ProcessorAutomaticMobilePayment = "AUTOMATIC_MOBILE_PAYMENT"
	ProcessorStripe                 = "STRIPE"
	ProcessorPaypal                 = "PAYPAL"
)

var (
	ErrUnsupportedProcessor = failure.BadRequestFromString("payment processor is not supported")
	ErrUnknownProcessor     = failure.BadRequestFromString("unknown payment processor")
)

// Strategy answers how a booking paid through one processor is recorded.
type Strategy interface {
	ProcessorType() string
	PaymentMethod() string
	Currency() string
	PaymentStatus() string
	RequiresCoordination() bool
	IsCommissionPaid() bool
}

// Selector maps a processor type to its strategy.
type Selector interface {
	CreateStrategy(processorType string) (Strategy, error)
	GetAllStrategies() map[string]Strategy
}

type manual struct {
	currency string
}

func (manual) ProcessorType() string      { return ProcessorManual }
func (manual) PaymentMethod() string      { return model.MethodManualTransfer }
func (m manual) Currency() string         { return m.currency }
func (manual) PaymentStatus() string      { return model.StatusPending }
func (manual) RequiresCoordination() bool { return true }
func (manual) IsCommissionPaid() bool     { return false }

type automaticMobile struct {
	currency string
}

func (automaticMobile) ProcessorType() string      { return ProcessorAutomaticMobilePayment }
func (automaticMobile) PaymentMethod() string      { return model.MethodMobilePayment }
func (a automaticMobile) Currency() string         { return a.currency }
func (automaticMobile) PaymentStatus() string      { return model.StatusPaid }
func (automaticMobile) RequiresCoordination() bool { return false }
func (automaticMobile) IsCommissionPaid() bool     { return true }

type selectorImpl struct {
	strategies map[string]Strategy
}

// NewSelector resolves every supported strategy once from configuration.
func NewSelector(cfg *config.Config) Selector {
	currency := cfg.Payment.Currency

	return &selectorImpl{
		strategies: map[string]Strategy{
			ProcessorManual:                 manual{currency: currency},
			ProcessorAutomaticMobilePayment: automaticMobile{currency: currency},
		},
	}
}

func (s *selectorImpl) CreateStrategy(processorType string) (Strategy, error) {
	key := strings.ToUpper(strings.TrimSpace(processorType))

	if strategy, ok := s.strategies[key]; ok {
		return strategy, nil
	}

	switch key {
	case ProcessorStripe, ProcessorPaypal:
		log.Warn().Str("processorType", key).Msg("payment processor recognized but not supported")

		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProcessor, key)
	default:
		log.Warn().Str("processorType", processorType).Msg("unknown payment processor")

		return nil, fmt.Errorf("%w: %q", ErrUnknownProcessor, processorType)
	}
}

// GetAllStrategies returns a copy keyed by processor type.
func (s *selectorImpl) GetAllStrategies() map[string]Strategy {
	out := make(map[string]Strategy, len(s.strategies))

	for key, strategy := range s.strategies {
		out[key] = strategy
	}

	return out
}

// IsUnsupported reports whether err came from a recognized processor without an implementation.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedProcessor)
}
