package ssm

// StateAccessor reads and writes the current state value of one instance.
// The engine never chooses the initial value; the owning object must have
// set it before the first guarded call.
type StateAccessor interface {
	Get() string
	Set(state string)
}

// fieldAccessor backs the state with a plain string field.
type fieldAccessor struct {
	field *string
}

// NewFieldAccessor binds the state to a string field of the owning struct.
// This is the default way to back a machine's state.
func NewFieldAccessor(field *string) StateAccessor {
	return &fieldAccessor{field: field}
}

func (a *fieldAccessor) Get() string {
	return *a.field
}

func (a *fieldAccessor) Set(state string) {
	*a.field = state
}

// funcAccessor adapts a getter/setter pair into a StateAccessor.
type funcAccessor struct {
	get func() string
	set func(string)
}

// AccessorFunc rebinds the state to an arbitrary getter/setter pair, for
// types whose state lives somewhere other than a plain field (a backing
// record, a computed property). Rebinding must happen at machine
// construction, before the first guarded call.
func AccessorFunc(get func() string, set func(string)) StateAccessor {
	return &funcAccessor{get: get, set: set}
}

func (a *funcAccessor) Get() string {
	return a.get()
}

func (a *funcAccessor) Set(state string) {
	a.set(state)
}
