package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrMarkArrivedCommandIsNotConstructed = errors.New(
		"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
	)
)

// MarkArrivedCommand records arrival at the pickup point of the current order.
// Valid only while the session is in the Accepted phase.
type MarkArrivedCommand struct {
	guard kernel.ConstructorGuard
}

// NewMarkArrivedCommand creates a command to record arrival at pickup.
// This is a parameterless command.
func NewMarkArrivedCommand() MarkArrivedCommand {
	return MarkArrivedCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}
