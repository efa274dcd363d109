package ssm

// IllegalTransitionHook is invoked when an event has no registered
// destination for the current state. Whatever it returns becomes the return
// value of the guarded call; state is left unchanged either way. The default
// hook fails with an IllegalTransitionError.
type IllegalTransitionHook func(event, state string) error

// CommittedHook is invoked after a candidate state has been committed. The
// default is a no-op; persistence adapters override it to tie the commit to
// a save operation.
type CommittedHook func(newState string)

func defaultIllegalTransitionHook(event, state string) error {
	return &IllegalTransitionError{Event: event, State: state}
}

func defaultCommittedHook(string) {}

// CollectingIllegalHook returns a hook that records rejected transitions
// into the collection and suppresses the error, for host frameworks that
// accumulate validation errors instead of failing the call.
func CollectingIllegalHook(coll *ErrorCollection) IllegalTransitionHook {
	return func(event, state string) error {
		coll.Add(&IllegalTransitionError{Event: event, State: state})

		return nil
	}
}
