package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAcceptOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, 7, cmd.OrderID())
	require.NoError(t, cmd.Validate())
}

func TestNewAcceptOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(0)
	require.Error(t, err)

	var invalidErr *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestAcceptOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.AcceptOrderCommand // zero-value command

	err := cmd.Validate()

	require.Error(t, err)
	assert.Equal(t, commands.ErrAcceptOrderCommandIsNotConstructed, err)
}
