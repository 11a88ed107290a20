package workflow

import (
	"networx-client/internal/match"
	"networx-client/internal/profile"
)

// Phase is the workflow state. There is no terminal phase; the
// workflow loops for the session lifetime.
type Phase string

const (
	// PhaseCollecting gathers profile input. Submission errors are
	// surfaced inline on this phase rather than on a separate screen.
	PhaseCollecting Phase = "collecting"
	// PhaseSubmitting is transient: one request is in flight and
	// further submissions are rejected.
	PhaseSubmitting Phase = "submitting"
	// PhaseShowingResults displays the normalized matches. An empty
	// list is a valid, displayable outcome.
	PhaseShowingResults Phase = "showing_results"
)

// Snapshot is an immutable view of the workflow state handed to the
// presentation layer.
type Snapshot struct {
	Phase   Phase
	Profile profile.Profile
	Matches []match.Match
	Err     string
	Seq     uint64
}
