// Package session provides the operator session aggregate of the dispatch
// client: the online/offline flag, the order being browsed (selection), the
// order being executed (current), and the execution phase.
//
// The package includes:
//   - Phase: a state machine over the execution stages of the current order
//   - Session: the aggregate root that owns all session state and enforces
//     its invariants through validated transition methods
//
// Session invariants:
//   - A current order exists if and only if the phase is not Idle
//   - An order is either browsed (selected) or executed (current), never both
//   - Going offline force-resets the session to its initial state
//   - At most one order is active at a time
//
// Every transition validates its precondition and leaves the session
// untouched on rejection, so callers can rely on the aggregate rather than
// on UI gating.
package session
