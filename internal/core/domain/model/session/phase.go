package session

import (
	"dispatch/internal/pkg/errs"
)

// Phase represents the execution stage of the currently accepted order.
// It implements a strictly sequential state machine: each forward step
// requires the immediately preceding phase, with no skip-ahead or rollback.
//
// Phase transitions:
//
//	Idle ──accept──> Accepted ──markArrived──> AtOrigin ──markPickedUp──> EnRouteToDestination ──markCompleted──> Idle
//
// Going offline force-resets any phase back to Idle; that reset is owned by
// the Session aggregate, not by Phase.
type Phase int

const (
	// Unknown represents an invalid or undefined phase.
	// This value (0) helps catch uninitialized Phase values.
	Unknown Phase = iota

	// Idle means no order is being executed.
	Idle

	// Accepted means an order has been accepted and the courier is heading to pickup.
	Accepted

	// AtOrigin means the courier has arrived at the pickup point.
	AtOrigin

	// EnRouteToDestination means the package is picked up and the courier is
	// heading to the dropoff point.
	EnRouteToDestination
)

// getPhaseStrings returns a map of Phase values to their string representations.
func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		Unknown:              "Unknown",
		Idle:                 "Idle",
		Accepted:             "Accepted",
		AtOrigin:             "AtOrigin",
		EnRouteToDestination: "EnRouteToDestination",
	}
}

// getValidPhaseStrings returns a map of only valid Phase values.
func getValidPhaseStrings() map[Phase]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Phase]string{
		Idle:                 "Idle",
		Accepted:             "Accepted",
		AtOrigin:             "AtOrigin",
		EnRouteToDestination: "EnRouteToDestination",
	}
}

// Validate checks if the Phase value is valid.
// Valid phases are Idle, Accepted, AtOrigin, and EnRouteToDestination;
// Unknown (0) and any other values are invalid.
func (p Phase) Validate() error {
	if _, ok := getValidPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("phase is invalid",
			errs.NewValueIsOutOfRangeError("phase", int(p), int(Idle), int(EnRouteToDestination)))
	}
	return nil
}

// String returns the human-readable name of the phase.
// Implements fmt.Stringer and is safe on any Phase value.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions Idle to Accepted.
// This is the only path from "no active order" to "active order".
//
// Returns:
//   - (Accepted, nil) when the current phase is Idle
//   - (0, *errs.InvalidTransitionError) otherwise
func (p Phase) Accept() (Phase, error) {
	if p != Idle {
		return 0, errs.NewInvalidTransitionError("accept", p.String())
	}
	return Accepted, nil
}

// Arrive transitions Accepted to AtOrigin (courier reached the pickup point).
//
// Returns:
//   - (AtOrigin, nil) when the current phase is Accepted
//   - (0, *errs.InvalidTransitionError) otherwise
func (p Phase) Arrive() (Phase, error) {
	if p != Accepted {
		return 0, errs.NewInvalidTransitionError("markArrived", p.String())
	}
	return AtOrigin, nil
}

// PickUp transitions AtOrigin to EnRouteToDestination (package collected).
//
// Returns:
//   - (EnRouteToDestination, nil) when the current phase is AtOrigin
//   - (0, *errs.InvalidTransitionError) otherwise
func (p Phase) PickUp() (Phase, error) {
	if p != AtOrigin {
		return 0, errs.NewInvalidTransitionError("markPickedUp", p.String())
	}
	return EnRouteToDestination, nil
}

// Complete transitions EnRouteToDestination back to Idle (package delivered).
//
// Returns:
//   - (Idle, nil) when the current phase is EnRouteToDestination
//   - (0, *errs.InvalidTransitionError) otherwise
func (p Phase) Complete() (Phase, error) {
	if p != EnRouteToDestination {
		return 0, errs.NewInvalidTransitionError("markCompleted", p.String())
	}
	return Idle, nil
}
