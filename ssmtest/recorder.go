// Package ssmtest provides testing utilities for guarded state machines.
package ssmtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Edge is one observed transition.
type Edge struct {
	Event string
	From  string
	To    string
}

// Rejection is one observed illegal-transition attempt.
type Rejection struct {
	Event string
	State string
}

// Failure is one observed behavior fault.
type Failure struct {
	Event string
	From  string
	Err   error
}

// Recorder implements ssm.Logger and captures every outcome of the guarded
// calls made against a machine, so tests can assert on what happened rather
// than on log output. Wire it in with ssm.WithLogger(recorder).
type Recorder struct {
	Committed []Edge
	Cancelled []Edge
	Rejected  []Rejection
	Failed    []Failure
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) TransitionCommitted(_ context.Context, event, from, to string, _ time.Duration) {
	r.Committed = append(r.Committed, Edge{Event: event, From: from, To: to})
}

func (r *Recorder) TransitionRejected(_ context.Context, event, state string) {
	r.Rejected = append(r.Rejected, Rejection{Event: event, State: state})
}

func (r *Recorder) TransitionCancelled(_ context.Context, event, from, to string, _ time.Duration) {
	r.Cancelled = append(r.Cancelled, Edge{Event: event, From: from, To: to})
}

func (r *Recorder) TransitionFailed(_ context.Context, event, from string, _ time.Duration, err error) {
	r.Failed = append(r.Failed, Failure{Event: event, From: from, Err: err})
}

// Reset clears everything recorded so far.
func (r *Recorder) Reset() {
	r.Committed = nil
	r.Cancelled = nil
	r.Rejected = nil
	r.Failed = nil
}

// AssertCommitted fails the test unless the exact edge was committed.
func (r *Recorder) AssertCommitted(t *testing.T, event, from, to string) {
	t.Helper()

	require.Contains(t, r.Committed, Edge{Event: event, From: from, To: to},
		"expected committed transition %s: %s -> %s", event, from, to)
}

// AssertRejected fails the test unless the event was rejected in the state.
func (r *Recorder) AssertRejected(t *testing.T, event, state string) {
	t.Helper()

	require.Contains(t, r.Rejected, Rejection{Event: event, State: state},
		"expected rejected transition %s in state %s", event, state)
}

// AssertCancelled fails the test unless the exact edge was cancelled.
func (r *Recorder) AssertCancelled(t *testing.T, event, from, to string) {
	t.Helper()

	require.Contains(t, r.Cancelled, Edge{Event: event, From: from, To: to},
		"expected cancelled transition %s: %s -> %s", event, from, to)
}

// AssertNothingCommitted fails the test if any transition was committed.
func (r *Recorder) AssertNothingCommitted(t *testing.T) {
	t.Helper()

	require.Empty(t, r.Committed, "expected no committed transitions")
}
