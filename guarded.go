package ssm

import "context"

// Guarded wraps an ordinary behavior returning a value of type T with the
// transition protocol for one event. It stores the original callable and
// the event name; the owning type builds it once at construction time and
// exposes it through its public call surface, so every invocation goes
// through the guarded path and there is no way to reach the unguarded
// behavior from outside the type.
type Guarded[T any] struct {
	machine *Machine
	event   string
	fn      func(context.Context) (T, error)
}

// Guard decorates fn as the guarded behavior for event on m.
func Guard[T any](m *Machine, event string, fn func(context.Context) (T, error)) *Guarded[T] {
	return &Guarded[T]{
		machine: m,
		event:   normalizeName(event),
		fn:      fn,
	}
}

// Event returns the event name this behavior is guarded by.
func (g *Guarded[T]) Event() string {
	return g.event
}

// Call runs the transition protocol around the wrapped behavior and
// propagates its return value. On an illegal transition the behavior never
// runs and Call returns the zero value of T plus whatever the illegal
// transition hook returned. On cancellation the behavior's return value
// comes back unchanged with state left at its pre-call value.
func (g *Guarded[T]) Call(ctx context.Context) (T, error) {
	var out T

	err := g.machine.fire(ctx, g.event, func(ctx context.Context) error {
		var bodyErr error
		out, bodyErr = g.fn(ctx)

		return bodyErr
	})

	return out, err
}
