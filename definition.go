package ssm

import (
	"log/slog"
	"sort"
	"strings"
)

// Transitions maps a from-state to the to-state an event moves it to.
type Transitions map[string]string

// Transition is a single (event, from, to) edge in the transition table.
type Transition struct {
	Event string
	From  string
	To    string
}

// Definition is the transition table for one type. It is built once at
// type-initialization time, typically in a package-level var or init block,
// and shared read-only by every machine bound to it. Registration is not
// safe to interleave with guarded calls; declare everything up front.
type Definition struct {
	table  map[string]Transitions // event -> from -> to
	order  []Transition           // insertion order, for exporters
	index  map[string]int         // (event, from) -> position in order
	states []string               // first-seen order
	known  map[string]struct{}
	events []string // first-seen order
	logger *slog.Logger
}

// DefinitionOption configures a Definition.
type DefinitionOption func(*Definition)

// WithDefinitionLogger sets the logger used for registration warnings.
func WithDefinitionLogger(logger *slog.Logger) DefinitionOption {
	return func(d *Definition) {
		d.logger = logger
	}
}

// NewDefinition creates an empty transition table.
func NewDefinition(opts ...DefinitionOption) *Definition {
	def := &Definition{
		table: make(map[string]Transitions),
		index: make(map[string]int),
		known: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(def)
	}

	if def.logger == nil {
		def.logger = slog.Default()
	}

	return def
}

// Event declares a guarded event with its legal transitions. Declaring the
// same event again merges the new pairs into the existing set. Re-declaring
// an exact (event, from) pair overwrites the destination; last write wins,
// with a warning, since it silently changes behavior.
//
// Returns the definition for chaining.
func (d *Definition) Event(name string, transitions Transitions) *Definition {
	name = normalizeName(name)
	d.ensureEvent(name, len(transitions))

	// Sort from-states so registration order is reproducible; the declared
	// pairs arrive as a map with no order of its own.
	froms := make([]string, 0, len(transitions))
	for from := range transitions {
		froms = append(froms, from)
	}

	sort.Strings(froms)

	for _, from := range froms {
		d.register(name, from, transitions[from])
	}

	return d
}

// ensureEvent creates the per-event map on first use of an event name.
func (d *Definition) ensureEvent(name string, sizeHint int) {
	if _, exists := d.table[name]; exists {
		return
	}

	d.table[name] = make(Transitions, sizeHint)
	d.events = append(d.events, name)
}

// register inserts or overwrites one (event, from) -> to pair. The event
// must already exist in the table.
func (d *Definition) register(event, from, to string) {
	from = normalizeName(from)
	to = normalizeName(to)

	if prev, exists := d.table[event][from]; exists {
		if prev != to {
			d.logger.Warn("Transition overwritten",
				"event", event,
				"from", from,
				"old_to", prev,
				"new_to", to,
			)
		}

		d.table[event][from] = to
		d.order[d.index[pairKey(event, from)]].To = to
		d.noteState(to)

		return
	}

	d.table[event][from] = to
	d.index[pairKey(event, from)] = len(d.order)
	d.order = append(d.order, Transition{Event: event, From: from, To: to})
	d.noteState(from)
	d.noteState(to)
}

// Lookup returns the destination registered for (event, from). A false
// result is the sole illegal-transition signal; Lookup itself never fails.
func (d *Definition) Lookup(event, from string) (string, bool) {
	to, ok := d.table[normalizeName(event)][normalizeName(from)]

	return to, ok
}

// TransitionList returns every registered (event, from, to) triple in
// registration order. Overwriting a pair keeps its original position.
// Used by exporters; the order is stable so output is reproducible.
func (d *Definition) TransitionList() []Transition {
	out := make([]Transition, len(d.order))
	copy(out, d.order)

	return out
}

// States returns every state name ever seen, across all events, in
// first-seen order.
func (d *Definition) States() []string {
	out := make([]string, len(d.states))
	copy(out, d.states)

	return out
}

// Events returns the declared event names in declaration order.
func (d *Definition) Events() []string {
	out := make([]string, len(d.events))
	copy(out, d.events)

	return out
}

// KnowsState reports whether the name appears anywhere in the table as a
// from-state or to-state.
func (d *Definition) KnowsState(name string) bool {
	_, ok := d.known[normalizeName(name)]

	return ok
}

func (d *Definition) noteState(name string) {
	if _, seen := d.known[name]; seen {
		return
	}

	d.known[name] = struct{}{}
	d.states = append(d.states, name)
}

// normalizeName canonicalizes a state or event name so that all callers
// agree on identity regardless of incidental whitespace.
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

func pairKey(event, from string) string {
	return event + "\x00" + from
}
