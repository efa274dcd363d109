package ssm

import "github.com/google/uuid"

// Session is the per-call protocol object for one guarded invocation. It is
// created at call entry, discarded at call exit, and never shared across
// calls. While a session is pending, Machine.Current reports its candidate
// destination so re-entrant reads from inside the behavior see the pending
// value.
type Session struct {
	id        string
	event     string
	from      string
	to        string
	cancelled bool
	prev      *Session
}

func newSession(event, from, to string, prev *Session) *Session {
	return &Session{
		id:    "transition-" + uuid.NewString(),
		event: event,
		from:  from,
		to:    to,
		prev:  prev,
	}
}

// ID returns a unique identifier for this invocation, for correlating logs
// and traces.
func (s *Session) ID() string {
	return s.id
}

// Event returns the event name being fired.
func (s *Session) Event() string {
	return s.event
}

// From returns the state the instance was in at call entry.
func (s *Session) From() string {
	return s.from
}

// To returns the candidate destination state looked up from the table.
func (s *Session) To() string {
	return s.to
}

// Cancel suppresses the otherwise-automatic commit for this call. Calling it
// any number of times has the same effect as calling it once.
func (s *Session) Cancel() {
	s.cancelled = true
}

// Cancelled reports whether Cancel was called during this invocation.
func (s *Session) Cancelled() bool {
	return s.cancelled
}
