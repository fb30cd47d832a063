package checker

// Kind classifies the final result of a check.
type Kind int

// Outcome kinds, from most to least benign.
const (
	// Pass means the issue is still open, or the check was intentionally
	// skipped because neither a credential nor a CI signal was present.
	Pass Kind = iota
	// Warn means the issue has been closed. It is advisory, not an error.
	Warn
	// ParseError means the pattern was malformed or the local remote lookup
	// failed, detected before any network access.
	ParseError
	// RuntimeError means the network call or the service response failed,
	// or the issue state was unrecognized.
	RuntimeError
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case ParseError:
		return "parse error"
	case RuntimeError:
		return "runtime error"
	default:
		return "unknown"
	}
}

// Outcome is the final classification of one check.
type Outcome struct {
	Kind    Kind
	Message string
}
