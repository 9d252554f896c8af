package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "github.com/treasurehunt/payment-orchestrator/internal/adapter/storage/redis"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group. Webhook
// groups are sized generously above the gateway's own retry cadence so a
// burst of legitimate redeliveries is never throttled.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"webhook_payment": {Limit: 300, Window: time.Minute},
		"webhook_payout":  {Limit: 300, Window: time.Minute},
		"internal_admin":  {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.RateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the calling
// actor when authenticated, else the client IP.
func extractIdentifier(c *gin.Context) string {
	if actor, exists := c.Get(CtxActor); exists {
		return fmt.Sprintf("%v", actor)
	}
	return c.ClientIP()
}
