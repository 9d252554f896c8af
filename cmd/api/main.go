package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/internal/adapter/gateway/razorpay"
	httpHandler "github.com/treasurehunt/payment-orchestrator/internal/adapter/http/handler"
	pgStorage "github.com/treasurehunt/payment-orchestrator/internal/adapter/storage/postgres"
	redisStorage "github.com/treasurehunt/payment-orchestrator/internal/adapter/storage/redis"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/internal/resilience"
	"github.com/treasurehunt/payment-orchestrator/internal/service"
	"github.com/treasurehunt/payment-orchestrator/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("starting payment orchestrator")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	userRepo := pgStorage.NewUserRepo(pool)
	addressRepo := pgStorage.NewAddressRepo(pool)
	consentRepo := pgStorage.NewConsentRepo(pool)
	userAuditRepo := pgStorage.NewUserAuditRepo(pool)
	invoiceRepo := pgStorage.NewInvoiceRepo(pool)
	paymentRepo := pgStorage.NewPaymentTransactionRepo(pool)
	payoutRepo := pgStorage.NewPayoutTransactionRepo(pool)
	vendorRepo := pgStorage.NewVendorProfileRepo(pool)
	outboxRepo := pgStorage.NewOutboxRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// One Metrics registry backs every named Policy in the process.
	resilienceMetrics := resilience.NewMetrics(prometheus.NewRegistry())

	// Crypto / identity
	var encSvc ports.EncryptionService
	if cfg.KMS.DevMode {
		local, err := service.NewLocalEncryptionService(cfg.KMS.DevKey, cfg.Server.Mode, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize local encryption service")
		}
		encSvc = local
	} else {
		kmsPolicy := resilience.New("kms-transit", cfg.Resilience, resilienceMetrics)
		vault := service.NewVaultEncryptionService(cfg.KMS.TransitURL, cfg.KMS.TransitToken, cfg.KMS.TransitKey, log)
		encSvc = resilience.NewResilientEncryptionService(vault, kmsPolicy)
	}
	hmacKey, err := hex.DecodeString(cfg.KMS.HMACIndexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid kms.hmac_index_key")
	}
	indexer := service.NewDeterministicHMACIndexer(hmacKey)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Gateway adapters, wrapped behind the resilience policy kernel
	paymentPolicy := resilience.New("razorpay-payment", cfg.Resilience, resilienceMetrics)
	payoutPolicy := resilience.New("razorpay-payout", cfg.Resilience, resilienceMetrics)

	rawPaymentGateway := razorpay.NewPaymentAdapter(cfg.Gateway)
	rawPayoutGateway := razorpay.NewPayoutAdapter(cfg.Gateway, cfg.Gateway.SettlementAccount)
	paymentGateway := resilience.NewResilientPaymentGateway(rawPaymentGateway, paymentPolicy)
	payoutGateway := resilience.NewResilientPayoutGateway(rawPayoutGateway, payoutPolicy)

	// Core services
	identitySvc := service.NewIdentityService(userRepo, addressRepo, consentRepo, userAuditRepo, outboxRepo, transactor, encSvc, indexer, log)
	invoiceSvc := service.NewInvoiceEngine(invoiceRepo, outboxRepo, transactor, log)
	orchestrator := service.NewPaymentOrchestrator(invoiceRepo, paymentRepo, outboxRepo, transactor, paymentGateway, log)
	payoutEngine := service.NewPayoutEngine(paymentRepo, payoutRepo, vendorRepo, outboxRepo, transactor, payoutGateway, log)

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		IdentitySvc:    identitySvc,
		InvoiceSvc:     invoiceSvc,
		Orchestrator:   orchestrator,
		PayoutEngine:   payoutEngine,
		EncSvc:         encSvc,
		TokenSvc:       tokenSvc,
		PaymentVerify:  rawPaymentGateway,
		PayoutVerify:   rawPayoutGateway,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// This process doesn't run the Dispatcher itself (that's cmd/dispatcher),
	// so an empty bus.url is only logged as a warning here; startup continues.
	if cfg.Bus.URL == "" {
		log.Warn().Msg("bus.url is empty — the outbox dispatcher will not be able to publish events")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
