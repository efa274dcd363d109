package ssmtest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redmar/ssm"
	"github.com/redmar/ssm/ssmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPaymentDeclined = errors.New("payment declined")

func TestRecorderCapturesOutcomes(t *testing.T) {
	t.Parallel()

	def := ssm.NewDefinition().
		Event("activate", ssm.Transitions{"pending": "active"}).
		Event("suspend", ssm.Transitions{"active": "suspended"})

	recorder := ssmtest.NewRecorder()

	state := "pending"
	machine := ssm.NewMachine(def, ssm.NewFieldAccessor(&state), ssm.WithLogger(recorder))

	ctx := context.Background()

	require.NoError(t, machine.Fire(ctx, "activate", nil))
	recorder.AssertCommitted(t, "activate", "pending", "active")

	require.Error(t, machine.Fire(ctx, "activate", nil))
	recorder.AssertRejected(t, "activate", "active")

	require.NoError(t, machine.Fire(ctx, "suspend", func(context.Context) error {
		machine.Cancel()

		return nil
	}))
	recorder.AssertCancelled(t, "suspend", "active", "suspended")

	err := machine.Fire(ctx, "suspend", func(context.Context) error {
		return errPaymentDeclined
	})
	require.ErrorIs(t, err, errPaymentDeclined)
	require.Len(t, recorder.Failed, 1)
	assert.Equal(t, "suspend", recorder.Failed[0].Event)

	recorder.Reset()
	recorder.AssertNothingCommitted(t)
	assert.Empty(t, recorder.Rejected)
}
