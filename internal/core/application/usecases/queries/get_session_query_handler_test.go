package queries_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSessionQueryHandler_Handle_InitialState(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)

	store := &MockSessionStore{sess: sess}
	store.On("View", ctx).Return(nil).Once()

	h := queries.NewGetSessionQueryHandler(store)
	result, err := h.Handle(ctx, queries.NewGetSessionQuery())
	require.NoError(t, err)
	assert.False(t, result.Online)
	assert.Equal(t, "Idle", result.Phase)
	assert.Nil(t, result.SelectedOrderID)
	assert.Nil(t, result.CurrentOrderID)
}

func TestGetSessionQueryHandler_Handle_WithSelection(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())
	require.NoError(t, sess.Select(testOrder(t, 3, "Тандыр")))

	store := &MockSessionStore{sess: sess}
	store.On("View", ctx).Return(nil).Once()

	h := queries.NewGetSessionQueryHandler(store)
	result, err := h.Handle(ctx, queries.NewGetSessionQuery())
	require.NoError(t, err)
	assert.True(t, result.Online)
	assert.Equal(t, "Idle", result.Phase)
	require.NotNil(t, result.SelectedOrderID)
	assert.Equal(t, 3, *result.SelectedOrderID)
	assert.Nil(t, result.CurrentOrderID)
}

func TestGetSessionQueryHandler_Handle_WithCurrentOrder(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())
	require.NoError(t, sess.Accept(testOrder(t, 5, "Тандыр")))
	require.NoError(t, sess.MarkArrived())

	store := &MockSessionStore{sess: sess}
	store.On("View", ctx).Return(nil).Once()

	h := queries.NewGetSessionQueryHandler(store)
	result, err := h.Handle(ctx, queries.NewGetSessionQuery())
	require.NoError(t, err)
	assert.True(t, result.Online)
	assert.Equal(t, "AtOrigin", result.Phase)
	assert.Nil(t, result.SelectedOrderID)
	require.NotNil(t, result.CurrentOrderID)
	assert.Equal(t, 5, *result.CurrentOrderID)
}

func TestGetSessionQueryHandler_Handle_StoreError(t *testing.T) {
	ctx := context.Background()

	store := new(MockSessionStore)
	store.On("View", ctx).Return(errors.New("store error")).Once()

	h := queries.NewGetSessionQueryHandler(store)
	_, err := h.Handle(ctx, queries.NewGetSessionQuery())
	require.Error(t, err)
}

func TestGetSessionQueryHandler_Handle_InvalidQuery_ReturnsError(t *testing.T) {
	ctx := context.Background()
	invalidQuery := queries.GetSessionQuery{}

	h := queries.NewGetSessionQueryHandler(new(MockSessionStore))
	_, err := h.Handle(ctx, invalidQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewGetSessionQuery constructor")
}
