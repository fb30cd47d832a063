// Package issue provides data structures and error types for referenced forge issues.
package issue

// Issue states reported by the forge that the checker understands.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Reference represents a fully-qualified issue reference.
// All fields are populated when constructed; APIURL is the endpoint used to
// query the issue's status.
type Reference struct {
	Owner      string
	Repository string
	Number     int
	APIURL     string
}

// Status is the classified result of one issue status query. Exactly one of
// the two variants is populated: a state reported by the forge, or a failure
// message from the forge's error response body.
type Status struct {
	known   bool
	state   string
	message string
}

// KnownStatus builds a Status for a state string reported by the forge.
func KnownStatus(state string) Status {
	return Status{known: true, state: state}
}

// FailureStatus builds a Status for a forge-reported error message.
func FailureStatus(message string) Status {
	return Status{message: message}
}

// Known reports whether the forge returned an issue state.
func (s Status) Known() bool {
	return s.known
}

// State returns the raw state string. Only meaningful when Known is true.
func (s Status) State() string {
	return s.state
}

// Message returns the forge-reported error message. Only meaningful when
// Known is false.
func (s Status) Message() string {
	return s.message
}

// Open reports whether the issue is known to be open.
func (s Status) Open() bool {
	return s.known && s.state == StateOpen
}

// Closed reports whether the issue is known to be closed.
func (s Status) Closed() bool {
	return s.known && s.state == StateClosed
}

// Unrecognized reports whether the forge returned a state string that is
// neither open nor closed. Such a state must never be treated as either.
func (s Status) Unrecognized() bool {
	return s.known && s.state != StateOpen && s.state != StateClosed
}
