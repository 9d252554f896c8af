// Package resilience provides a named-policy kernel wrapping gateway and
// KMS calls in retry-with-backoff plus a circuit breaker, so a flaky
// downstream degrades gracefully instead of cascading into the request
// path that depends on it.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// Policy wraps a single named downstream dependency (a gateway, the KMS
// transit backend) behind a circuit breaker and an exponential backoff
// retry loop. One Policy is created per dependency at startup and reused
// across requests — it is safe for concurrent use.
type Policy struct {
	name    string
	breaker *gobreaker.CircuitBreaker
	cfg     config.ResilienceConfig
	metrics *Metrics
}

// New builds a Policy named for the dependency it guards (e.g. "razorpay",
// "kms-transit"), used as the label on every emitted metric.
func New(name string, cfg config.ResilienceConfig, metrics *Metrics) *Policy {
	breakerSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < uint32(cfg.BreakerMaxRequests) {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if metrics != nil {
				metrics.RecordBreakerState(name, to.String())
			}
		},
	}

	return &Policy{
		name:    name,
		breaker: gobreaker.NewCircuitBreaker(breakerSettings),
		cfg:     cfg,
		metrics: metrics,
	}
}

// Do executes fn behind the breaker, retrying transient failures with
// exponential backoff: one attempt plus up to cfg.MaxRetries retries. fn should return an
// *apperror.AppError so apperror.IsTransient can classify the failure;
// any other error is treated as non-transient and returned immediately.
func (p *Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	start := time.Now()
	attempts := 0

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.cfg.InitialInterval
	bo.MaxInterval = p.cfg.MaxInterval
	boCtx := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(p.cfg.MaxRetries)), ctx)

	operation := func() error {
		attempts++
		_, err := p.breaker.Execute(func() (interface{}, error) {
			return nil, fn(ctx)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return err // breaker rejection is itself transient — keep retrying within budget
			}
			if !apperror.IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	err := backoff.Retry(operation, boCtx)
	if p.metrics != nil {
		p.metrics.ObserveCall(p.name, attempts, time.Since(start), err == nil)
	}
	if err != nil {
		return fmt.Errorf("resilience policy %s: %w", p.name, unwrapPermanent(err))
	}
	return nil
}

func unwrapPermanent(err error) error {
	var perr *backoff.PermanentError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
