package ports

import (
	"context"
	"time"
)

// Role is the authorization tag carried on every inbound call. Unlike the
// teacher's merchant-centric auth, this system has no single logged-in
// principal type — internal services, support staff, and data subjects all
// call through the same ports with different roles.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleSupport          Role = "SUPPORT"
	RoleServiceLookup    Role = "SERVICE_LOOKUP"
	RoleInternalConsumer Role = "INTERNAL_CONSUMER"
	RoleOwner            Role = "OWNER"
)

// Actor describes who is making a call: real operator, service account, or
// the data subject themselves. Carried explicitly through context.Context
// as a value rather than mutated into a package-level/MDC-style global, so
// it is safe under concurrent request handling.
type Actor struct {
	ID            string
	Role          Role
	CorrelationID string
}

type actorCtxKey struct{}

// WithActor returns a context carrying actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFromContext retrieves the actor staged by WithActor. ok is false if
// no actor was ever attached, which callers should treat as "deny".
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorCtxKey{}).(Actor)
	return a, ok
}

// CanReadPII reports whether the role may read decrypted PII fields,
// per spec.md §7's role matrix.
func (a Actor) CanReadPII() bool {
	switch a.Role {
	case RoleAdmin, RoleSupport, RoleOwner:
		return true
	default:
		return false
	}
}

// CanLookupByHash reports whether the role may resolve a user by the
// deterministic HMAC search index (email/phone lookup) without a full PII
// read.
func (a Actor) CanLookupByHash() bool {
	switch a.Role {
	case RoleAdmin, RoleSupport, RoleServiceLookup, RoleInternalConsumer, RoleOwner:
		return true
	default:
		return false
	}
}

// CanMutate reports whether the role may create/update/archive/anonymize
// user records.
func (a Actor) CanMutate() bool {
	switch a.Role {
	case RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// RequestDeadline is a small helper mirroring the teacher's explicit
// per-request timeout convention.
func RequestDeadline(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
