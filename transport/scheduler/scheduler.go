// Package scheduler runs the periodic billing jobs.
package scheduler

import (
	"context"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	billingService "hostly/internal/domains/billing/service"
	"hostly/shared/constant"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const jobTimeout = 5 * time.Minute

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron    *cron.Cron
	cfg     *config.Config
	billing billingService.Billing
	otel    otel.Otel
}

func New(cfg *config.Config, billing billingService.Billing, otel otel.Otel) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		cfg:     cfg,
		billing: billing,
		otel:    otel,
	}
}

// Register adds every job to the cron table.
func (s *Scheduler) Register() error {
	if _, err := s.cron.AddFunc(s.cfg.Billing.CloseInvoicesCron, s.CloseInvoices); err != nil {
		return fmt.Errorf("failed to schedule invoice closing %q: %w", s.cfg.Billing.CloseInvoicesCron, err)
	}

	log.Info().Str("spec", s.cfg.Billing.CloseInvoicesCron).Msg("scheduled invoice closing")

	return nil
}

// Run blocks until SIGINT or SIGTERM and waits for running jobs before returning.
func (s *Scheduler) Run() error {
	if err := s.Register(); err != nil {
		return err
	}

	s.cron.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop

	log.Info().Msg("stopping scheduler")

	<-s.cron.Stop().Done()

	return nil
}

// CloseInvoices moves every expired IN_PROGRESS invoice to PENDING_PAYMENT.
func (s *Scheduler) CloseInvoices() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".CloseInvoices")
	defer scope.End()

	started := time.Now()

	closed, err := s.billing.CloseExpiredInvoices(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invoice closing job failed")

		return
	}

	scope.SetAttribute("invoices.closed", closed)
	log.Info().Int("closed", closed).Dur("took", time.Since(started)).Msg("invoice closing job finished")
}
