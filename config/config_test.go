package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Billing.InvoiceRetries = -1

	cfg.applyDefaults()

	assert.Equal(t, "PEN", cfg.Payment.Currency)
	assert.Equal(t, 3, cfg.Billing.InvoiceRetries)
	assert.Equal(t, "@daily", cfg.Billing.CloseInvoicesCron)
	assert.Equal(t, 10, cfg.Events.ObserverTimeoutSeconds)

	custom := &Config{}
	custom.Payment.Currency = "USD"
	custom.Billing.CloseInvoicesCron = "0 5 * * *"

	custom.applyDefaults()

	assert.Equal(t, "USD", custom.Payment.Currency)
	assert.Equal(t, "0 5 * * *", custom.Billing.CloseInvoicesCron)
}
