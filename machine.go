package ssm

import (
	"context"
	"time"
)

// Machine binds one instance's state to a shared Definition. It owns the
// instance's pending session and hook configuration. A machine provides no
// internal locking: each instance is assumed to be manipulated by one
// logical caller at a time, and callers targeting one instance from
// multiple goroutines must synchronize externally.
type Machine struct {
	def         *Definition
	accessor    StateAccessor
	onIllegal   IllegalTransitionHook
	onCommitted CommittedHook
	logger      Logger
	session     *Session
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithLogger sets the transition logger.
func WithLogger(logger Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithIllegalTransitionHook overrides the default fail-fast behavior for
// events fired from a state with no registered destination.
func WithIllegalTransitionHook(hook IllegalTransitionHook) MachineOption {
	return func(m *Machine) {
		m.onIllegal = hook
	}
}

// WithCommittedHook sets the hook invoked after each committed transition.
func WithCommittedHook(hook CommittedHook) MachineOption {
	return func(m *Machine) {
		m.onCommitted = hook
	}
}

// NewMachine binds a definition and a state accessor for one instance.
// The accessor choice is fixed here, before the first guarded call.
func NewMachine(def *Definition, accessor StateAccessor, opts ...MachineOption) *Machine {
	machine := &Machine{
		def:         def,
		accessor:    accessor,
		onIllegal:   defaultIllegalTransitionHook,
		onCommitted: defaultCommittedHook,
	}

	for _, opt := range opts {
		opt(machine)
	}

	if machine.logger == nil {
		machine.logger = NewDefaultLogger()
	}

	return machine
}

// Definition returns the shared transition table this machine consults.
func (m *Machine) Definition() *Definition {
	return m.def
}

// Current returns the instance's state. While a guarded call is pending it
// returns the candidate destination, so predicates evaluated from inside
// the behavior see the pending value rather than the old one.
func (m *Machine) Current() string {
	if m.session != nil {
		return m.session.to
	}

	return m.accessor.Get()
}

// Is reports whether the current state equals the given name. This replaces
// per-state predicate methods; it reflects the pending candidate during a
// guarded call and the committed value otherwise.
func (m *Machine) Is(state string) bool {
	return m.Current() == normalizeName(state)
}

// Pending reports whether a guarded call is currently in flight.
func (m *Machine) Pending() bool {
	return m.session != nil
}

// Cancel requests that the pending transition not be committed. It is only
// meaningful from within the body of the behavior currently being guarded;
// outside a pending call it is a no-op. Calling it repeatedly has the same
// effect as calling it once.
func (m *Machine) Cancel() {
	if m.session != nil {
		m.session.Cancel()
	}
}

// Fire runs the transition protocol for event around body. The body is the
// original behavior; it may read the pending state through Current/Is and
// may call Cancel to keep the pre-call state. A nil body is treated as a
// behavior that does nothing and succeeds.
//
// If no transition is registered for (event, current state), the illegal
// transition hook decides the outcome and the body never runs. If the body
// returns an error it propagates unmodified and no commit happens.
func (m *Machine) Fire(ctx context.Context, event string, body func(context.Context) error) error {
	return m.fire(ctx, event, body)
}

func (m *Machine) fire(ctx context.Context, event string, body func(context.Context) error) error {
	event = normalizeName(event)
	from := m.Current()

	to, ok := m.def.Lookup(event, from)
	if !ok {
		illegalTransitionsTotal.WithLabelValues(sanitizeLabel(event), sanitizeLabel(from)).Inc()
		m.logger.TransitionRejected(ctx, event, from)

		return m.onIllegal(event, from)
	}

	session := newSession(event, from, to, m.session)
	m.session = session

	defer func() {
		m.session = session.prev
	}()

	ctx, span := startTransitionSpan(ctx, session)
	defer span.End()

	start := time.Now()

	var err error
	if body != nil {
		err = body(ctx)
	}

	elapsed := time.Since(start)

	if err != nil {
		// The behavior's fault propagates unmodified; the commit below
		// never runs, so state keeps its pre-call value.
		recordSpanOutcome(span, outcomeError, err)
		observeTransition(event, from, to, outcomeError, elapsed)
		m.logger.TransitionFailed(ctx, event, from, elapsed, err)

		return err
	}

	if session.cancelled {
		recordSpanOutcome(span, outcomeCancelled, nil)
		observeTransition(event, from, to, outcomeCancelled, elapsed)
		m.logger.TransitionCancelled(ctx, event, from, to, elapsed)

		return nil
	}

	m.accessor.Set(to)
	m.onCommitted(to)

	recordSpanOutcome(span, outcomeCommitted, nil)
	observeTransition(event, from, to, outcomeCommitted, elapsed)
	m.logger.TransitionCommitted(ctx, event, from, to, elapsed)

	return nil
}
