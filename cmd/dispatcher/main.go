// Command dispatcher runs the Outbox Dispatcher, the async payout
// submitter, and the inbound enrollment consumer as a single background
// worker process, separate from the API server so a slow bus or gateway
// never competes with request-serving goroutines for the same process's
// resources.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/treasurehunt/payment-orchestrator/config"
	natsBus "github.com/treasurehunt/payment-orchestrator/internal/adapter/bus/nats"
	"github.com/treasurehunt/payment-orchestrator/internal/adapter/gateway/razorpay"
	pgStorage "github.com/treasurehunt/payment-orchestrator/internal/adapter/storage/postgres"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/inbound"
	"github.com/treasurehunt/payment-orchestrator/internal/outbox"
	"github.com/treasurehunt/payment-orchestrator/internal/resilience"
	"github.com/treasurehunt/payment-orchestrator/internal/service"
	"github.com/treasurehunt/payment-orchestrator/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("starting outbox dispatcher, payout submitter, and enrollment consumer")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()

	outboxRepo := pgStorage.NewOutboxRepo(pool)
	paymentRepo := pgStorage.NewPaymentTransactionRepo(pool)
	payoutRepo := pgStorage.NewPayoutTransactionRepo(pool)
	vendorRepo := pgStorage.NewVendorProfileRepo(pool)
	invoiceRepo := pgStorage.NewInvoiceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	bus, err := natsBus.New(cfg.Bus)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to bus")
	}
	defer bus.Close()

	publisher := natsBus.NewPublisher(bus, cfg.Bus.StreamName)
	dispatcher := outbox.New(outboxRepo, publisher, cfg.Outbox, cfg.Bus.StreamName, log)

	metrics := resilience.NewMetrics(prometheus.NewRegistry())
	payoutPolicy := resilience.New("razorpay-payout", cfg.Resilience, metrics)
	paymentPolicy := resilience.New("razorpay-payment", cfg.Resilience, metrics)
	rawPayoutGateway := razorpay.NewPayoutAdapter(cfg.Gateway, cfg.Gateway.SettlementAccount)
	rawPaymentGateway := razorpay.NewPaymentAdapter(cfg.Gateway)
	payoutGateway := resilience.NewResilientPayoutGateway(rawPayoutGateway, payoutPolicy)
	paymentGateway := resilience.NewResilientPaymentGateway(rawPaymentGateway, paymentPolicy)
	payoutEngine := service.NewPayoutEngine(paymentRepo, payoutRepo, vendorRepo, outboxRepo, transactor, payoutGateway, log)
	invoiceEngine := service.NewInvoiceEngine(invoiceRepo, outboxRepo, transactor, log)
	orchestrator := service.NewPaymentOrchestrator(invoiceRepo, paymentRepo, outboxRepo, transactor, paymentGateway, log)

	submitSubject := cfg.Bus.StreamName + "." + domain.Topic(domain.EventPayoutSubmitRequested)
	consumer, err := bus.Consumer(ctx, cfg.Bus.StreamName, "payout-submitter", submitSubject)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bind payout submitter consumer")
	}
	submitter := outbox.NewPayoutSubmitter(consumer, payoutEngine, log)

	enrollmentConsumer, err := bus.Consumer(ctx, cfg.Bus.EnrollmentStreamName, "enrollment-consumer", cfg.Bus.EnrollmentSubject)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bind enrollment consumer")
	}
	enrollments := inbound.NewEnrollmentConsumer(enrollmentConsumer, invoiceEngine, orchestrator, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return dispatcher.Run(gctx) })
	g.Go(func() error { return submitter.Run(gctx) })
	g.Go(func() error { return enrollments.Run(gctx) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down dispatcher...")
	cancel()

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("worker exited with error")
	}
	log.Info().Msg("dispatcher exited")
}
