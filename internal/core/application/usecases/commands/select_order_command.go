package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	ErrSelectOrderCommandIsNotConstructed = errors.New(
		"SelectOrderCommand must be created via NewSelectOrderCommand constructor",
	)
)

// SelectOrderCommand toggles the browsing selection on a catalog order.
// Selecting the already-selected order clears the selection; selecting a
// different order replaces it.
//
// Example:
//
//	cmd, err := NewSelectOrderCommand(3)
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//	handler := NewSelectOrderCommandHandler(store, catalog, refresher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // Offline, or an order is already in progress
//	}
type SelectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard kernel.ConstructorGuard
}

// NewSelectOrderCommand creates a command to toggle selection of the order
// with the given catalog id. The id must be positive.
func NewSelectOrderCommand(orderID int) (SelectOrderCommand, error) {
	command := SelectOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return SelectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectOrderCommand) Validate() error {
	return c.guard.Validate(ErrSelectOrderCommandIsNotConstructed)
}

// OrderID returns the catalog identifier of the order to toggle.
func (c SelectOrderCommand) OrderID() int {
	return c.orderID
}

func (c *SelectOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}
