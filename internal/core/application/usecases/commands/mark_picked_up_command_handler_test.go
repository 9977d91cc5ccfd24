package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPickedUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())
	require.NoError(t, sess.Accept(testOrder(t, 1)))
	require.NoError(t, sess.MarkArrived())

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	mock.InOrder(
		store.On("Update", ctx).Return(nil).Once(),
		refresher.On("Refresh", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkPickedUpCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewMarkPickedUpCommand())
	require.NoError(t, err)
	assert.Equal(t, session.EnRouteToDestination, sess.Phase())
	store.AssertExpectations(t)
	refresher.AssertExpectations(t)
}

func TestMarkPickedUpCommandHandler_Handle_WhenNotAtOrigin_ShouldReject(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())
	require.NoError(t, sess.Accept(testOrder(t, 1)))

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	store.On("Update", ctx).Return(nil).Once()

	h := commands.NewMarkPickedUpCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewMarkPickedUpCommand())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, session.Accepted, sess.Phase())
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestMarkPickedUpCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var cmd commands.MarkPickedUpCommand // not constructed properly

	h := commands.NewMarkPickedUpCommandHandler(new(MockSessionStore), new(MockMapRefresher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
