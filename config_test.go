package ssm

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subscriptionYAML = `
name: subscription
events:
  - name: activate
    transitions:
      - from: pending
        to: active
      - from: suspended
        to: active
  - name: suspend
    transitions:
      - from: active
        to: suspended
`

func TestLoadConfigFromBytes(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(subscriptionYAML))
	require.NoError(t, err)

	assert.Equal(t, "subscription", config.Name)
	require.Len(t, config.Events, 2)
	assert.Equal(t, "activate", config.Events[0].Name)
	assert.Len(t, config.Events[0].Transitions, 2)
}

func TestLoadConfigFromBytesRejectsBadYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFromBytes([]byte("events: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadConfigFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"machines/subscription.yaml": &fstest.MapFile{Data: []byte(subscriptionYAML)},
	}

	config, err := LoadConfigFromFS(fsys, "machines/subscription.yaml")
	require.NoError(t, err)
	assert.Equal(t, "subscription", config.Name)

	_, err = LoadConfigFromFS(fsys, "machines/missing.yaml")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "missing name",
			config:  Config{Events: []EventConfig{{Name: "activate"}}},
			wantErr: ErrConfigNameRequired,
		},
		{
			name:    "no events",
			config:  Config{Name: "subscription"},
			wantErr: ErrEventRequired,
		},
		{
			name: "missing event name",
			config: Config{Name: "subscription", Events: []EventConfig{
				{Transitions: []TransitionConfig{{From: "a", To: "b"}}},
			}},
			wantErr: ErrEventNameRequired,
		},
		{
			name: "event without transitions",
			config: Config{Name: "subscription", Events: []EventConfig{
				{Name: "activate"},
			}},
			wantErr: ErrEventTransitionsRequired,
		},
		{
			name: "missing from state",
			config: Config{Name: "subscription", Events: []EventConfig{
				{Name: "activate", Transitions: []TransitionConfig{{To: "active"}}},
			}},
			wantErr: ErrTransitionFromRequired,
		},
		{
			name: "missing to state",
			config: Config{Name: "subscription", Events: []EventConfig{
				{Name: "activate", Transitions: []TransitionConfig{{From: "pending"}}},
			}},
			wantErr: ErrTransitionToRequired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefinitionFromConfigPreservesFileOrder(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(subscriptionYAML))
	require.NoError(t, err)

	def, err := DefinitionFromConfig(config)
	require.NoError(t, err)

	expected := []Transition{
		{Event: "activate", From: "pending", To: "active"},
		{Event: "activate", From: "suspended", To: "active"},
		{Event: "suspend", From: "active", To: "suspended"},
	}
	assert.Equal(t, expected, def.TransitionList())
	assert.Equal(t, []string{"pending", "active", "suspended"}, def.States())

	to, ok := def.Lookup("suspend", "active")
	require.True(t, ok)
	assert.Equal(t, "suspended", to)
}

func TestDefinitionFromConfigValidates(t *testing.T) {
	t.Parallel()

	_, err := DefinitionFromConfig(&Config{})
	assert.ErrorIs(t, err, ErrConfigNameRequired)
}
