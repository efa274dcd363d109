// Command ssmviz renders a transition table config as a diagram.
//
// It is an exporter layered on top of the library: the config file names the
// machine's events and transitions, and ssmviz prints a Mermaid diagram, a
// Graphviz digraph, or a Google Chart URL for it.
package main

func main() {
	Execute()
}
