package handler

import (
	"github.com/treasurehunt/payment-orchestrator/internal/adapter/http/middleware"
	redisStore "github.com/treasurehunt/payment-orchestrator/internal/adapter/storage/redis"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	IdentitySvc    ports.IdentityService
	InvoiceSvc     ports.InvoiceEngine
	Orchestrator   ports.PaymentOrchestrator
	PayoutEngine   ports.PayoutEngine
	EncSvc         ports.EncryptionService
	TokenSvc       ports.TokenService
	PaymentVerify  middleware.WebhookSignatureVerifier // Razorpay webhook signature check
	PayoutVerify   middleware.WebhookSignatureVerifier // RazorpayX webhook signature check
	RateLimitStore *redisStore.RateLimitStore           // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — pings every checker in deps.HealthCheckers)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Gateway webhook ingress (signature-authenticated, not actor-authenticated) ---
	paymentHandler := NewPaymentHandler(deps.Orchestrator)
	payoutHandler := NewPayoutHandler(deps.PayoutEngine)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/razorpay", rl("webhook_payment"), middleware.GatewayWebhookAuth(deps.PaymentVerify, deps.Logger), paymentHandler.HandleWebhook)
		webhooks.POST("/razorpayx", rl("webhook_payout"), middleware.GatewayWebhookAuth(deps.PayoutVerify, deps.Logger), payoutHandler.HandleWebhook)
	}

	// --- Actor-authenticated internal administration surface ---
	actorAuth := middleware.ActorAuth(deps.TokenSvc, deps.Logger)

	identityHandler := NewIdentityHandler(deps.IdentitySvc, deps.EncSvc)
	users := v1.Group("/users", actorAuth, rl("internal_admin"))
	{
		users.POST("", identityHandler.CreateUser)
		users.GET("/lookup", identityHandler.LookupUser)
		users.GET("/:id", identityHandler.GetUser)
		users.PATCH("/:id", identityHandler.UpdateUser)
		users.POST("/:id/archive", identityHandler.ArchiveUser)
		users.POST("/:id/reactivate", identityHandler.ReactivateUser)
		users.DELETE("/:id", identityHandler.AnonymizeUser)

		users.POST("/:id/addresses", identityHandler.AddAddress)
		users.GET("/:id/addresses", identityHandler.ListAddresses)

		users.POST("/:id/consents/:key", identityHandler.GrantConsent)
		users.DELETE("/:id/consents/:key", identityHandler.WithdrawConsent)
		users.GET("/:id/consents", identityHandler.ListConsents)
	}

	addresses := v1.Group("/addresses", actorAuth, rl("internal_admin"))
	{
		addresses.PUT("/:addressID", identityHandler.UpdateAddress)
		addresses.DELETE("/:addressID", identityHandler.DeleteAddress)
		addresses.POST("/:addressID/primary", identityHandler.SetPrimaryAddress)
	}

	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc)
	invoices := v1.Group("/invoices", actorAuth, rl("internal_admin"))
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:invoiceNumber", invoiceHandler.GetInvoice)
		invoices.POST("/:invoiceNumber/pay", paymentHandler.ProcessEnrollmentPayment)
	}

	payouts := v1.Group("/payouts", actorAuth, rl("internal_admin"))
	{
		payouts.POST("/reconcile", payoutHandler.ReconcileStuck)
	}
	payments := v1.Group("/payments", actorAuth, rl("internal_admin"))
	{
		payments.POST("/:paymentTransactionID/payout", payoutHandler.InitiatePayout)
	}

	return r
}
