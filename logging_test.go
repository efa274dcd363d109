package ssm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerReportsOutcomes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	state := "pending"
	machine := NewMachine(subscriptionDefinition(), NewFieldAccessor(&state), WithLogger(logger))

	require.NoError(t, machine.Fire(context.Background(), "activate", nil))
	assert.Contains(t, buf.String(), "Transition committed")
	assert.Contains(t, buf.String(), "event=activate")

	buf.Reset()

	err := machine.Fire(context.Background(), "activate", nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Transition rejected")
	assert.Contains(t, buf.String(), "state=active")

	buf.Reset()

	require.NoError(t, machine.Fire(context.Background(), "suspend", func(context.Context) error {
		machine.Cancel()

		return nil
	}))
	assert.Contains(t, buf.String(), "Transition cancelled")

	buf.Reset()

	err = machine.Fire(context.Background(), "suspend", func(context.Context) error {
		return errors.New("database unavailable") //nolint:err113 // Test-local failure
	})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Transition failed")
	assert.Contains(t, buf.String(), "database unavailable")
}

func TestMachineWithTestLogger(t *testing.T) {
	t.Parallel()

	// slogt routes machine logging through t.Log for debuggable test output.
	logger := NewSlogLogger(slogt.New(t))

	state := "pending"
	machine := NewMachine(subscriptionDefinition(), NewFieldAccessor(&state), WithLogger(logger))

	require.NoError(t, machine.Fire(context.Background(), "activate", nil))
	assert.Equal(t, "active", state)
}
