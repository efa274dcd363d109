package ssm

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of a transition table. It restores the
// table-at-a-glance flavor of an inline declaration for teams that keep
// machine definitions in files next to the code that uses them.
type Config struct {
	Name   string        `json:"name"   yaml:"name"`
	Events []EventConfig `json:"events" yaml:"events"`
}

// EventConfig declares one event and its legal transitions.
type EventConfig struct {
	Name        string             `json:"name"        yaml:"name"`
	Transitions []TransitionConfig `json:"transitions" yaml:"transitions"`
}

// TransitionConfig declares one (from, to) pair.
type TransitionConfig struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

// LoadConfig loads a transition table configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes loads a transition table configuration from YAML bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var config Config

	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigFromFS loads a configuration from an embedded filesystem.
// This is a convenience function for loading from embed.FS.
func LoadConfigFromFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS: %w", err)
	}

	return LoadConfigFromBytes(data)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrConfigNameRequired
	}

	if len(c.Events) == 0 {
		return ErrEventRequired
	}

	for i, event := range c.Events {
		if normalizeName(event.Name) == "" {
			return fmt.Errorf("event %d: %w", i, ErrEventNameRequired)
		}

		if len(event.Transitions) == 0 {
			return fmt.Errorf("event %s: %w", event.Name, ErrEventTransitionsRequired)
		}

		for j, transition := range event.Transitions {
			if normalizeName(transition.From) == "" {
				return fmt.Errorf("event %s, transition %d: %w", event.Name, j, ErrTransitionFromRequired)
			}

			if normalizeName(transition.To) == "" {
				return fmt.Errorf("event %s, transition %d: %w", event.Name, j, ErrTransitionToRequired)
			}
		}
	}

	return nil
}

// DefinitionFromConfig builds a Definition from a validated configuration.
// Transitions register in file order, so exports enumerate in file order.
func DefinitionFromConfig(config *Config, opts ...DefinitionOption) (*Definition, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	def := NewDefinition(opts...)

	for _, event := range config.Events {
		name := normalizeName(event.Name)
		def.ensureEvent(name, len(event.Transitions))

		for _, transition := range event.Transitions {
			def.register(name, transition.From, transition.To)
		}
	}

	return def, nil
}
