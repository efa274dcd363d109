package ssm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionLookup(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		Event("activate", Transitions{"pending": "active"})

	to, ok := def.Lookup("activate", "pending")
	require.True(t, ok)
	assert.Equal(t, "active", to)

	_, ok = def.Lookup("activate", "active")
	assert.False(t, ok)

	_, ok = def.Lookup("deactivate", "pending")
	assert.False(t, ok)
}

func TestDefinitionMergesRedeclaredEvent(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		Event("activate", Transitions{"pending": "active"}).
		Event("activate", Transitions{"suspended": "active"})

	// The new pair extends the table without disturbing the old one.
	to, ok := def.Lookup("activate", "pending")
	require.True(t, ok)
	assert.Equal(t, "active", to)

	to, ok = def.Lookup("activate", "suspended")
	require.True(t, ok)
	assert.Equal(t, "active", to)

	assert.Equal(t, []string{"activate"}, def.Events())
}

func TestDefinitionOverwriteLastWriteWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))

	def := NewDefinition(WithDefinitionLogger(logger)).
		Event("activate", Transitions{"pending": "active"}).
		Event("activate", Transitions{"pending": "live"})

	to, ok := def.Lookup("activate", "pending")
	require.True(t, ok)
	assert.Equal(t, "live", to)

	// Overwriting silently changes behavior, so it warns.
	assert.Contains(t, buf.String(), "Transition overwritten")

	// The overwritten pair keeps its original position, once.
	list := def.TransitionList()
	require.Len(t, list, 1)
	assert.Equal(t, Transition{Event: "activate", From: "pending", To: "live"}, list[0])
}

func TestDefinitionEnumerationOrder(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		Event("suspend", Transitions{"active": "suspended"}).
		Event("activate", Transitions{
			"pending":   "active",
			"suspended": "active",
		})

	// Events enumerate in declaration order; pairs declared together
	// enumerate in from-state order.
	expected := []Transition{
		{Event: "suspend", From: "active", To: "suspended"},
		{Event: "activate", From: "pending", To: "active"},
		{Event: "activate", From: "suspended", To: "active"},
	}
	assert.Equal(t, expected, def.TransitionList())
	assert.Equal(t, []string{"suspend", "activate"}, def.Events())
}

func TestDefinitionStates(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		Event("activate", Transitions{"pending": "active"}).
		Event("suspend", Transitions{"active": "suspended"})

	assert.Equal(t, []string{"pending", "active", "suspended"}, def.States())
	assert.True(t, def.KnowsState("suspended"))
	assert.False(t, def.KnowsState("archived"))
}

func TestDefinitionNormalizesNames(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		Event(" activate ", Transitions{" pending ": " active "})

	to, ok := def.Lookup("activate", "pending")
	require.True(t, ok)
	assert.Equal(t, "active", to)

	assert.True(t, def.KnowsState(" active "))
}

func TestDefinitionCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		Event("activate", Transitions{"pending": "active"})

	list := def.TransitionList()
	list[0].To = "mutated"

	states := def.States()
	states[0] = "mutated"

	fresh := def.TransitionList()
	assert.Equal(t, "active", fresh[0].To)
	assert.Equal(t, "pending", def.States()[0])
}
