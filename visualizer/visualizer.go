// Package visualizer generates visual diagrams from transition tables.
//
// Output is driven entirely by Definition.TransitionList, so a table
// enumerates the same way every run and diagrams are reproducible.
package visualizer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/redmar/ssm"
)

// Visualizer errors.
var (
	ErrDefinitionNil = errors.New("definition cannot be nil")
	ErrNoTransitions = errors.New("definition has no transitions")
)

// GenerateMermaid converts a Definition to a Mermaid state diagram.
func GenerateMermaid(def *ssm.Definition) (string, error) {
	return GenerateMermaidWithOptions(def, DefaultOptions())
}

// GenerateMermaidFromFile loads a config from a YAML file and generates a
// Mermaid diagram.
func GenerateMermaidFromFile(path string) (string, error) {
	def, opts, err := loadDefinition(path)
	if err != nil {
		return "", err
	}

	return GenerateMermaidWithOptions(def, opts)
}

// GenerateMermaidWithOptions generates a Mermaid diagram with custom options.
func GenerateMermaidWithOptions(def *ssm.Definition, opts Options) (string, error) {
	transitions, err := enumerate(def)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	// Header
	sb.WriteString("```mermaid\n")
	sb.WriteString(fmt.Sprintf("stateDiagram-%s\n", opts.Direction))

	// Build highlight map for quick lookup
	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightStates {
		highlightMap[state] = true
	}

	for _, state := range def.States() {
		if highlightMap[state] {
			sb.WriteString(fmt.Sprintf("    class %s highlighted\n", state))
		}
	}

	for _, transition := range transitions {
		label := ""
		if opts.ShowEvents {
			label = ": " + transition.Event
		}

		sb.WriteString(fmt.Sprintf("    %s --> %s%s\n", transition.From, transition.To, label))
	}

	if len(opts.HighlightStates) > 0 {
		sb.WriteString("\n")
		sb.WriteString("    classDef highlighted fill:#fff9c4,stroke:#f57f17,stroke-width:3px\n")
	}

	sb.WriteString("```\n")

	return sb.String(), nil
}

// GenerateDOT converts a Definition to a Graphviz digraph.
func GenerateDOT(def *ssm.Definition, opts Options) (string, error) {
	transitions, err := enumerate(def)
	if err != nil {
		return "", err
	}

	rankdir := "TB"
	if opts.Direction == "LR" {
		rankdir = "LR"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph %q {\n", opts.Title))
	sb.WriteString(fmt.Sprintf("    rankdir=%s;\n", rankdir))
	sb.WriteString("    node [shape=ellipse];\n")

	for _, state := range opts.HighlightStates {
		sb.WriteString(fmt.Sprintf("    %q [style=filled, fillcolor=yellow];\n", state))
	}

	for _, transition := range transitions {
		if opts.ShowEvents {
			sb.WriteString(fmt.Sprintf("    %q -> %q [label=%q];\n",
				transition.From, transition.To, transition.Event))
		} else {
			sb.WriteString(fmt.Sprintf("    %q -> %q;\n", transition.From, transition.To))
		}
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

// ChartURL builds a Google Chart API URL rendering the transition graph,
// for embedding a diagram link in docs without a local Graphviz install.
func ChartURL(def *ssm.Definition, opts Options) (string, error) {
	dot, err := GenerateDOT(def, opts)
	if err != nil {
		return "", err
	}

	values := url.Values{}
	values.Set("cht", "gv")
	values.Set("chl", dot)

	return "https://chart.googleapis.com/chart?" + values.Encode(), nil
}

// enumerate validates the definition and returns its ordered transitions.
func enumerate(def *ssm.Definition) ([]ssm.Transition, error) {
	if def == nil {
		return nil, ErrDefinitionNil
	}

	transitions := def.TransitionList()
	if len(transitions) == 0 {
		return nil, ErrNoTransitions
	}

	return transitions, nil
}

// loadDefinition loads a transition table config from a YAML file and
// derives display options from it.
func loadDefinition(path string) (*ssm.Definition, Options, error) {
	config, err := ssm.LoadConfig(path)
	if err != nil {
		return nil, Options{}, fmt.Errorf("failed to load config: %w", err)
	}

	def, err := ssm.DefinitionFromConfig(config)
	if err != nil {
		return nil, Options{}, err
	}

	return def, DefaultOptions().WithTitle(config.Name), nil
}
