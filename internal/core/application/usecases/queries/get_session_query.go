package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
)

// GetSessionQuery retrieves the operator's session state: the online flag,
// the execution phase, and the identifiers of the selected and current orders.
type GetSessionQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetSessionQuery creates a query to retrieve the session state.
// This is a parameterless query.
func NewGetSessionQuery() GetSessionQuery {
	return GetSessionQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// GetSessionQueryResponse is a flat view of the session state.
// Order identifiers are nil when no order occupies the slot.
type GetSessionQueryResponse struct {
	Online          bool   `json:"online"`
	Phase           string `json:"phase"`
	SelectedOrderID *int   `json:"selectedOrderId"`
	CurrentOrderID  *int   `json:"currentOrderId"`
}
