package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand records delivery of the current order's package.
// Valid only while the session is in the EnRouteToDestination phase; on
// success the current order is cleared and the phase returns to Idle.
type CompleteDeliveryCommand struct {
	guard kernel.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to record delivery.
// This is a parameterless command.
func NewCompleteDeliveryCommand() CompleteDeliveryCommand {
	return CompleteDeliveryCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}
