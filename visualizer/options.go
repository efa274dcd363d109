package visualizer

// Options configures the visualization output.
type Options struct {
	// Title names the graph in formats that support it (DOT, chart URL)
	Title string

	// ShowEvents labels edges with the event that drives them
	ShowEvents bool

	// Direction controls diagram flow: "TD" (top-down) or "LR" (left-right)
	Direction string

	// HighlightStates highlights specific states in the diagram
	HighlightStates []string
}

// DefaultOptions returns sensible defaults for visualization.
func DefaultOptions() Options {
	return Options{
		Title:      "ssm",
		ShowEvents: true,
		Direction:  "TD",
	}
}

// WithTitle sets the graph title.
func (o Options) WithTitle(title string) Options {
	o.Title = title

	return o
}

// WithShowEvents enables/disables event labels on edges.
func (o Options) WithShowEvents(show bool) Options {
	o.ShowEvents = show

	return o
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}

// WithHighlightStates sets states to highlight.
func (o Options) WithHighlightStates(states ...string) Options {
	o.HighlightStates = states

	return o
}
