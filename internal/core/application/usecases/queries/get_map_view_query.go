package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrGetMapViewQueryIsNotConstructed = errors.New(
		"GetMapViewQuery must be created via NewGetMapViewQuery constructor",
	)
)

// GetMapViewQuery computes the derived map rendering state for the current
// session: the marker set and the camera command. It does not touch the map
// surface; it exists for clients that render the view themselves.
type GetMapViewQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetMapViewQuery creates a query to compute the map view.
// This is a parameterless query.
func NewGetMapViewQuery() GetMapViewQuery {
	return GetMapViewQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMapViewQuery) Validate() error {
	return q.guard.Validate(ErrGetMapViewQueryIsNotConstructed)
}
