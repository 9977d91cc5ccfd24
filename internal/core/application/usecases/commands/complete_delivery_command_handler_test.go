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

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())
	require.NoError(t, sess.Accept(testOrder(t, 1)))
	require.NoError(t, sess.MarkArrived())
	require.NoError(t, sess.MarkPickedUp())

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	mock.InOrder(
		store.On("Update", ctx).Return(nil).Once(),
		refresher.On("Refresh", ctx).Return(nil).Once(),
	)

	h := commands.NewCompleteDeliveryCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewCompleteDeliveryCommand())
	require.NoError(t, err)
	assert.Equal(t, session.Idle, sess.Phase())
	assert.Nil(t, sess.CurrentOrder())
	assert.True(t, sess.Online())
	store.AssertExpectations(t)
	refresher.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_WhenNotEnRoute_ShouldReject(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())
	require.NoError(t, sess.Accept(testOrder(t, 1)))
	require.NoError(t, sess.MarkArrived())

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	store.On("Update", ctx).Return(nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewCompleteDeliveryCommand())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, session.AtOrigin, sess.Phase())
	assert.NotNil(t, sess.CurrentOrder())
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var cmd commands.CompleteDeliveryCommand // not constructed properly

	h := commands.NewCompleteDeliveryCommandHandler(new(MockSessionStore), new(MockMapRefresher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
