package session

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession factory method.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrAlreadyOnline is returned by GoOnline when the operator is already online.
	ErrAlreadyOnline = errs.NewPreconditionViolationError("operator is already online")

	// ErrOperatorOffline is returned by operations that require the operator to be online.
	ErrOperatorOffline = errs.NewPreconditionViolationError("operator must be online")

	// ErrOrderInProgress is returned by Select and Accept while an order is being executed.
	ErrOrderInProgress = errs.NewPreconditionViolationError("an order is already in progress")
)

// Session is the aggregate root of the operator's dispatch session. It owns
// the online flag, the browsed (selected) order, the executed (current)
// order, and the execution phase, and is the only place those fields change.
//
// Invariants maintained by every method:
//  1. CurrentOrder() != nil ⇔ Phase() != Idle
//  2. SelectedOrder() != nil ⇒ CurrentOrder() == nil
//  3. Online() == false ⇒ no selection, no current order, phase Idle
//  4. At most one order is active at a time
//
// Rejected operations never mutate the session, so a failed call can simply
// be retried once the precondition holds.
type Session struct {
	// id uniquely identifies the session
	id kernel.UUID

	// online reports whether the operator is accepting work
	online bool

	// selected is the order being browsed, nil when none
	selected *order.Order

	// current is the order being executed, nil when none
	current *order.Order

	// phase is the execution stage of the current order
	phase Phase

	// guard ensures the session was created via NewSession
	guard kernel.ConstructorGuard
}

// NewSession creates a session in its initial state: offline, no selection,
// no current order, phase Idle.
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:    id,
		phase: Idle,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Session instance was properly constructed through NewSession.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Online reports whether the operator is online.
func (s *Session) Online() bool {
	return s.online
}

// Phase returns the execution stage of the current order.
func (s *Session) Phase() Phase {
	return s.phase
}

// SelectedOrder returns the order being browsed, or nil.
func (s *Session) SelectedOrder() *order.Order {
	return s.selected
}

// CurrentOrder returns the order being executed, or nil.
func (s *Session) CurrentOrder() *order.Order {
	return s.current
}

// RelevantOrder returns the order that map rendering should reflect:
// the current order if one is being executed, else the selected order,
// else nil.
func (s *Session) RelevantOrder() *order.Order {
	if s.current != nil {
		return s.current
	}
	return s.selected
}

// GoOnline marks the operator as accepting work.
// Requires the operator to be offline; the phase is not affected.
func (s *Session) GoOnline() error {
	if s.online {
		return ErrAlreadyOnline
	}

	s.online = true
	return nil
}

// GoOffline force-resets the session to its initial state: offline, no
// selection, no current order, phase Idle. It always succeeds and is
// idempotent; calling it twice in a row is equivalent to calling it once.
func (s *Session) GoOffline() {
	s.online = false
	s.selected = nil
	s.current = nil
	s.phase = Idle
}

// Select toggles the browsing selection. Requires the operator to be online
// and no order to be in progress.
//
// Selecting the already-selected order clears the selection; selecting a
// different order replaces the previous selection. Exactly one order may be
// selected at a time.
func (s *Session) Select(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !s.online {
		return ErrOperatorOffline
	}
	if s.current != nil {
		return ErrOrderInProgress
	}

	if s.selected != nil && s.selected.IsEqual(o) {
		s.selected = nil
		return nil
	}

	s.selected = o
	return nil
}

// Accept commits to executing an order. Requires the operator to be online,
// no order to be in progress, and the phase to be Idle. On success the order
// becomes current, the phase becomes Accepted, and any selection is cleared.
func (s *Session) Accept(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !s.online {
		return ErrOperatorOffline
	}
	if s.current != nil {
		return ErrOrderInProgress
	}

	newPhase, err := s.phase.Accept()
	if err != nil {
		return err
	}

	s.current = o
	s.phase = newPhase
	s.selected = nil
	return nil
}

// MarkArrived records arrival at the pickup point.
// Valid only in the Accepted phase.
func (s *Session) MarkArrived() error {
	newPhase, err := s.phase.Arrive()
	if err != nil {
		return err
	}

	s.phase = newPhase
	return nil
}

// MarkPickedUp records collection of the package.
// Valid only in the AtOrigin phase.
func (s *Session) MarkPickedUp() error {
	newPhase, err := s.phase.PickUp()
	if err != nil {
		return err
	}

	s.phase = newPhase
	return nil
}

// MarkCompleted records delivery of the package. Valid only in the
// EnRouteToDestination phase; clears the current order and returns the
// phase to Idle.
func (s *Session) MarkCompleted() error {
	newPhase, err := s.phase.Complete()
	if err != nil {
		return err
	}

	s.phase = newPhase
	s.current = nil
	return nil
}
