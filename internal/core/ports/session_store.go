package ports

import (
	"context"

	"dispatch/internal/core/domain/model/session"
)

// SessionStore owns the single operator session and serializes all access to
// it. Callers never hold the session outside a callback: HTTP handlers, the
// gesture commit and the resize job share the aggregate, and interleaved
// field access would break its invariants.
type SessionStore interface {
	// View runs fn with the session for reading. fn must not mutate the
	// session and must not retain it past the call.
	View(ctx context.Context, fn func(sess *session.Session) error) error

	// Update runs fn with the session for a state transition, holding the
	// store's lock across the whole read-mutate-write. Mutations take effect
	// in place; rejected domain operations leave the session untouched, so a
	// non-nil error from fn means no state changed.
	Update(ctx context.Context, fn func(sess *session.Session) error) error
}
