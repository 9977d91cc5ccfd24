package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand commits the operator to executing a catalog order.
// This is the only path from "no active order" to "active order".
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard kernel.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept the order with the given
// catalog id. The id must be positive.
func NewAcceptOrderCommand(orderID int) (AcceptOrderCommand, error) {
	command := AcceptOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the catalog identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() int {
	return c.orderID
}

func (c *AcceptOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}
