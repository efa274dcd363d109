package ssm

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrIllegalTransition matches any IllegalTransitionError via errors.Is.
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrConfigNameRequired indicates that a configuration name is required.
	ErrConfigNameRequired = errors.New("config name is required")
	// ErrEventRequired indicates that at least one event is required.
	ErrEventRequired = errors.New("at least one event is required")
	// ErrEventNameRequired indicates that an event name is required.
	ErrEventNameRequired = errors.New("event name is required")
	// ErrEventTransitionsRequired indicates that an event must declare at least one transition.
	ErrEventTransitionsRequired = errors.New("event must declare at least one transition")
	// ErrTransitionFromRequired indicates that a transition from state is required.
	ErrTransitionFromRequired = errors.New("transition from state is required")
	// ErrTransitionToRequired indicates that a transition to state is required.
	ErrTransitionToRequired = errors.New("transition to state is required")
)

// IllegalTransitionError reports an event invoked from a state that has no
// registered destination for it. It carries the event name and the state the
// instance was in for diagnostics.
type IllegalTransitionError struct {
	Event string
	State string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("You cannot '%s' when state is '%s'", e.Event, e.State)
}

// Is lets errors.Is(err, ErrIllegalTransition) match without the caller
// holding the concrete type.
func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// ErrorCollection is a thread-unsafe utility for accumulating multiple
// errors. Host frameworks that prefer error accumulation over failing the
// call can route rejected transitions into one via CollectingIllegalHook
// and read them back after the fact.
type ErrorCollection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *ErrorCollection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *ErrorCollection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *ErrorCollection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, a joined error otherwise.
func (c *ErrorCollection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
