package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrMarkPickedUpCommandIsNotConstructed = errors.New(
		"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
	)
)

// MarkPickedUpCommand records collection of the current order's package.
// Valid only while the session is in the AtOrigin phase.
type MarkPickedUpCommand struct {
	guard kernel.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to record package pickup.
// This is a parameterless command.
func NewMarkPickedUpCommand() MarkPickedUpCommand {
	return MarkPickedUpCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}
