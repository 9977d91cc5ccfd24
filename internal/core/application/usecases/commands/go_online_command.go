package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrGoOnlineCommandIsNotConstructed = errors.New(
		"GoOnlineCommand must be created via NewGoOnlineCommand constructor",
	)
)

// GoOnlineCommand marks the operator as accepting work. Issued by the
// slide-to-go-online gesture once its commit threshold is crossed.
//
// Example:
//
//	cmd := NewGoOnlineCommand()
//	handler := NewGoOnlineCommandHandler(store, refresher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // Operator was already online
//	}
type GoOnlineCommand struct {
	guard kernel.ConstructorGuard
}

// NewGoOnlineCommand creates a command to bring the operator online.
// This is a parameterless command.
func NewGoOnlineCommand() GoOnlineCommand {
	return GoOnlineCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *GoOnlineCommand) Validate() error {
	return c.guard.Validate(ErrGoOnlineCommandIsNotConstructed)
}
