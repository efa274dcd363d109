package main

import (
	"fmt"
	"os"

	"github.com/redmar/ssm"
	"github.com/redmar/ssm/visualizer"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ssmviz",
	Short: "ssmviz renders state machine definitions as diagrams",
	Long:  `ssmviz loads a transition table from a YAML config and exports it as a Mermaid diagram, a Graphviz digraph, or a Google Chart URL.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "machine.yaml", "Path to the transition table config")
	rootCmd.PersistentFlags().String("direction", "TD", "Diagram direction: TD or LR")
	rootCmd.PersistentFlags().Bool("no-events", false, "Omit event labels on edges")
}

// loadDefinition reads the config named by the command's flags and derives
// the export options from it.
func loadDefinition(cmd *cobra.Command) (*ssm.Definition, visualizer.Options, error) {
	path, _ := cmd.Flags().GetString("file")
	direction, _ := cmd.Flags().GetString("direction")
	noEvents, _ := cmd.Flags().GetBool("no-events")

	config, err := ssm.LoadConfig(path)
	if err != nil {
		return nil, visualizer.Options{}, err
	}

	def, err := ssm.DefinitionFromConfig(config)
	if err != nil {
		return nil, visualizer.Options{}, err
	}

	opts := visualizer.DefaultOptions().
		WithTitle(config.Name).
		WithDirection(direction).
		WithShowEvents(!noEvents)

	return def, opts, nil
}
