package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrGoOfflineCommandIsNotConstructed = errors.New(
		"GoOfflineCommand must be created via NewGoOfflineCommand constructor",
	)
)

// GoOfflineCommand force-resets the session to its initial state: offline,
// no selection, no current order, phase Idle. Always succeeds; issuing it
// twice in a row is equivalent to issuing it once.
type GoOfflineCommand struct {
	guard kernel.ConstructorGuard
}

// NewGoOfflineCommand creates a command to take the operator offline.
// This is a parameterless command.
func NewGoOfflineCommand() GoOfflineCommand {
	return GoOfflineCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *GoOfflineCommand) Validate() error {
	return c.guard.Validate(ErrGoOfflineCommandIsNotConstructed)
}
