package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPickedUpCommand_Validate_WhenConstructedProperly_ShouldReturnNoError(t *testing.T) {
	cmd := commands.NewMarkPickedUpCommand()

	err := cmd.Validate()

	require.NoError(t, err)
}

func TestMarkPickedUpCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.MarkPickedUpCommand // zero-value command

	err := cmd.Validate()

	require.Error(t, err)
	assert.Equal(t, commands.ErrMarkPickedUpCommandIsNotConstructed, err)
}
