package gesture

import (
	"dispatch/internal/pkg/errs"
)

// CommitThresholdRatio is the fraction of the track a drag must cover before
// the recognizer commits. The commit is evaluated eagerly on every move so
// the activation feels immediate once the threshold is crossed; releasing
// before the threshold always reverts.
const CommitThresholdRatio = 0.95

// PointerKind tags the input device a pointer sample came from. Mouse and
// touch input are normalized into the same coordinate stream, so the
// recognizer has exactly one code path regardless of device.
type PointerKind string

const (
	// PointerMouse marks samples produced by mouse events.
	PointerMouse PointerKind = "mouse"
	// PointerTouch marks samples produced by touch events.
	PointerTouch PointerKind = "touch"
)

// Validate checks that the kind is one of the known input devices.
func (k PointerKind) Validate() error {
	if k != PointerMouse && k != PointerTouch {
		return errs.NewValueIsInvalidError("pointer kind")
	}
	return nil
}

// ErrCommitCallbackIsRequired is returned when constructing a recognizer
// without an activation callback.
var ErrCommitCallbackIsRequired = errs.NewValueIsRequiredError("commit callback")

// ErrTrackLengthIsInvalid is returned by Start for a non-positive track length.
var ErrTrackLengthIsInvalid = errs.NewValueIsInvalidError("track length")

// Recognizer tracks a single horizontal drag over a bounded track and invokes
// its commit callback when the displacement crosses CommitThresholdRatio of
// the track length.
//
// Move and End are no-ops while no drag is active, so callers may route a
// global pointer stream through the recognizer without attach/detach churn.
// The recognizer is not safe for concurrent use; callers must serialize the
// event stream.
type Recognizer struct {
	onCommit func()

	trackLength float64
	originX     float64
	offset      float64
	dragging    bool
}

// NewRecognizer creates a recognizer that invokes onCommit once per completed drag.
func NewRecognizer(onCommit func()) (*Recognizer, error) {
	if onCommit == nil {
		return nil, ErrCommitCallbackIsRequired
	}

	return &Recognizer{
		onCommit: onCommit,
	}, nil
}

// Dragging reports whether a drag is in progress.
func (r *Recognizer) Dragging() bool {
	return r.dragging
}

// Offset returns the current displacement, clamped to [0, trackLength].
func (r *Recognizer) Offset() float64 {
	return r.offset
}

// Progress returns the displacement as a fraction of the track length, in
// [0, 1]. Returns 0 when no drag has established a track yet.
func (r *Recognizer) Progress() float64 {
	if r.trackLength <= 0 {
		return 0
	}
	return r.offset / r.trackLength
}

// Start begins a drag at the given pointer position over a track of the given
// length. The track length is the draggable range: the container width minus
// the handle size, measured by the caller at drag start.
func (r *Recognizer) Start(pointerX float64, trackLength float64) error {
	if trackLength <= 0 {
		return ErrTrackLengthIsInvalid
	}

	r.trackLength = trackLength
	r.originX = pointerX
	r.offset = 0
	r.dragging = true
	return nil
}

// Move updates the displacement from the drag origin, clamping it to
// [0, trackLength]. Crossing the commit threshold invokes the activation
// callback exactly once, ends the drag, and resets the offset. Move is a
// no-op while no drag is active.
func (r *Recognizer) Move(pointerX float64) {
	if !r.dragging {
		return
	}

	raw := pointerX - r.originX
	if raw < 0 {
		raw = 0
	}
	if raw > r.trackLength {
		raw = r.trackLength
	}
	r.offset = raw

	if r.offset >= r.trackLength*CommitThresholdRatio {
		r.dragging = false
		r.offset = 0
		r.onCommit()
	}
}

// End finishes the drag. A release below the commit threshold rubber-bands
// the offset back to zero; there is no partial-credit commit on release.
// End is a no-op while no drag is active, including after an eager commit
// already ended the drag in Move.
func (r *Recognizer) End() {
	if !r.dragging {
		return
	}

	r.dragging = false
	r.offset = 0
}
