package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrRefreshMapCommandIsNotConstructed = errors.New(
		"RefreshMapCommand must be created via NewRefreshMapCommand constructor",
	)
)

// RefreshMapCommand re-renders the map surface from the current session state.
type RefreshMapCommand struct {
	guard kernel.ConstructorGuard
}

// NewRefreshMapCommand creates a command to re-render the map.
// This is a parameterless command.
func NewRefreshMapCommand() RefreshMapCommand {
	return RefreshMapCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshMapCommand) Validate() error {
	return c.guard.Validate(ErrRefreshMapCommandIsNotConstructed)
}
