// Package ssm attaches transition guards to existing behaviors without
// rewriting them as explicit state-machine actions. A type declares, per
// event, which states permit it and which state it moves to on success; the
// guarded wrapper validates the current state before the behavior runs and
// commits the new state only after the behavior returns normally without
// cancelling.
//
// A Definition is built once per type and shared by reference:
//
//	var subscriptionStates = ssm.NewDefinition().
//		Event("activate", ssm.Transitions{"pending": "active"}).
//		Event("suspend", ssm.Transitions{"active": "suspended"})
//
// Each instance binds a Machine to its own state field and wraps its
// behaviors once at construction time:
//
//	type Subscription struct {
//		state    string
//		machine  *ssm.Machine
//		activate *ssm.Guarded[string]
//	}
//
//	func NewSubscription() *Subscription {
//		s := &Subscription{state: "pending"}
//		s.machine = ssm.NewMachine(subscriptionStates, ssm.NewFieldAccessor(&s.state))
//		s.activate = ssm.Guard(s.machine, "activate", s.doActivate)
//
//		return s
//	}
//
//	func (s *Subscription) Activate(ctx context.Context) (string, error) {
//		return s.activate.Call(ctx)
//	}
//
// Firing an event from a state with no registered destination fails with an
// IllegalTransitionError unless the machine is configured with an illegal
// transition hook; a behavior may call Machine.Cancel to keep the pre-call
// state; an error returned by the behavior propagates unmodified and no
// commit happens.
//
// Machines are not internally synchronized. Each instance is assumed to be
// driven by one logical caller at a time.
package ssm
