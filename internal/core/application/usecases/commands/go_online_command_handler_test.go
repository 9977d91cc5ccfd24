package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/session"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks shared by the handler tests in this package.

// MockSessionStore records the expectation per call and hands the held
// session to the callback, mirroring how the in-memory store runs it under
// its lock.
type MockSessionStore struct {
	mock.Mock
	sess *session.Session
}

func (m *MockSessionStore) View(ctx context.Context, fn func(sess *session.Session) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.sess)
}

func (m *MockSessionStore) Update(ctx context.Context, fn func(sess *session.Session) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.sess)
}

type MockOrderCatalog struct{ mock.Mock }

func (m *MockOrderCatalog) All(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderCatalog) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMapRefresher struct{ mock.Mock }

func (m *MockMapRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.NewSession(kernel.NewUUID())
	require.NoError(t, err)
	return sess
}

func testOrder(t *testing.T, id int) *order.Order {
	t.Helper()
	pointA, err := kernel.NewGeoPoint("пр. Абая, 12", 43.2401, 76.9128)
	require.NoError(t, err)
	pointB, err := kernel.NewGeoPoint("ул. Сатпаева, 90", 43.2332, 76.9552)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Тандыр", pointA, pointB, "1 200 ₸", "4.2 км", "card")
	require.NoError(t, err)
	return o
}

func TestGoOnlineCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	mock.InOrder(
		store.On("Update", ctx).Return(nil).Once(),
		refresher.On("Refresh", ctx).Return(nil).Once(),
	)

	h := commands.NewGoOnlineCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewGoOnlineCommand())
	require.NoError(t, err)
	require.True(t, sess.Online())
	store.AssertExpectations(t)
	refresher.AssertExpectations(t)
}

func TestGoOnlineCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var cmd commands.GoOnlineCommand // not constructed properly

	h := commands.NewGoOnlineCommandHandler(new(MockSessionStore), new(MockMapRefresher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestGoOnlineCommandHandler_Handle_AlreadyOnline(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)
	require.NoError(t, sess.GoOnline())

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	store.On("Update", ctx).Return(nil).Once()

	h := commands.NewGoOnlineCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewGoOnlineCommand())
	require.ErrorIs(t, err, session.ErrAlreadyOnline)
	store.AssertExpectations(t)
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestGoOnlineCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := context.Background()
	sess := testSession(t)

	store := &MockSessionStore{sess: sess}
	refresher := new(MockMapRefresher)
	store.On("Update", ctx).Return(errors.New("store error")).Once()

	h := commands.NewGoOnlineCommandHandler(store, refresher)
	err := h.Handle(ctx, commands.NewGoOnlineCommand())
	require.Error(t, err)
	require.False(t, sess.Online())
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}
