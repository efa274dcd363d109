package main

import (
	"fmt"

	"github.com/redmar/ssm"
	"github.com/redmar/ssm/visualizer"
	"github.com/spf13/cobra"
)

// mermaidCmd represents the mermaid command.
var mermaidCmd = &cobra.Command{
	Use:   "mermaid",
	Short: "Export the transition graph as a Mermaid state diagram",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return export(cmd, visualizer.GenerateMermaidWithOptions)
	},
}

// dotCmd represents the dot command.
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Export the transition graph as a Graphviz digraph",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return export(cmd, visualizer.GenerateDOT)
	},
}

// chartCmd represents the chart command.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export the transition graph as a Google Chart URL",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return export(cmd, visualizer.ChartURL)
	},
}

func export(
	cmd *cobra.Command,
	generate func(*ssm.Definition, visualizer.Options) (string, error),
) error {
	def, opts, err := loadDefinition(cmd)
	if err != nil {
		return err
	}

	out, err := generate(def, opts)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}

func init() {
	rootCmd.AddCommand(mermaidCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(chartCmd)
}
