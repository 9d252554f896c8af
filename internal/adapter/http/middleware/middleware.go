package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderWebhookSignature = "X-Razorpay-Signature"

	// Context keys
	CtxActor = "actor"
)

// WebhookSignatureVerifier abstracts the gateway adapter's HMAC check so
// this middleware does not depend on the razorpay package directly.
type WebhookSignatureVerifier interface {
	VerifyWebhookSignature(payload []byte, signatureHeader string) bool
}

// GatewayWebhookAuth verifies the gateway's HMAC signature over the raw
// request body before the handler ever sees it, rejecting tampered or
// unsigned webhook deliveries.
func GatewayWebhookAuth(verifier WebhookSignatureVerifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader(HeaderWebhookSignature)
		if signature == "" {
			response.Error(c, apperror.Validation("missing webhook signature header"))
			c.Abort()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if !verifier.VerifyWebhookSignature(bodyBytes, signature) {
			log.Warn().Str("path", c.Request.URL.Path).Msg("webhook signature verification failed")
			response.Error(c, apperror.Validation("invalid webhook signature"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorAuth validates a bearer token issued to internal services/operators
// and attaches the resulting ports.Actor to the request context. Used by
// the internal identity/payout administration surface, not by the public
// webhook ingress routes.
func ActorAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, apperror.PermissionDenied("authenticate"))
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			response.Error(c, apperror.PermissionDenied("authenticate"))
			c.Abort()
			return
		}

		actor := ports.Actor{ID: claims.ActorID, Role: claims.Role, CorrelationID: c.GetHeader("X-Correlation-ID")}
		ctx := ports.WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)
		c.Set(CtxActor, actor)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "INTERNAL_ERROR",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
