package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoOfflineCommand_Validate_WhenConstructedProperly_ShouldReturnNoError(t *testing.T) {
	cmd := commands.NewGoOfflineCommand()

	err := cmd.Validate()

	require.NoError(t, err)
}

func TestGoOfflineCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.GoOfflineCommand // zero-value command

	err := cmd.Validate()

	require.Error(t, err)
	assert.Equal(t, commands.ErrGoOfflineCommandIsNotConstructed, err)
}
