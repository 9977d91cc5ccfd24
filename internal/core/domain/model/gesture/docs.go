// Package gesture provides the slide-to-go-online recognizer of the dispatch
// client. It converts a continuous pointer or touch drag over a bounded track
// into a single discrete "activate" commit, keeping positional feedback
// decoupled from the commit decision.
//
// The recognizer is independent of the session state machine: crossing the
// completion threshold invokes a commit callback exactly once, and the wiring
// of that callback to the go-online operation happens at composition time.
package gesture
