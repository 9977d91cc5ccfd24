// Package commands contains business operations that modify session state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, state transition
// through the session aggregate, persistence to the store, and a map refresh.
package commands

import "context"

// MapRefresher re-renders the map surface from current session state.
// Every state-mutating handler triggers a refresh after a successful
// transition, so the surface always reflects the session without relying on
// caller discipline.
type MapRefresher interface {
	Refresh(ctx context.Context) error
}

// FuncMapRefresher adapts a plain function to the MapRefresher interface.
type FuncMapRefresher func(ctx context.Context) error

// Refresh invokes the wrapped function.
func (f FuncMapRefresher) Refresh(ctx context.Context) error {
	return f(ctx)
}
