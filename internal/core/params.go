package core

// Parameter describes a single value exposed for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by the game.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines flattens the snapshot into "Label: Value" lines, one group header per group.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name != "" {
			lines = append(lines, g.Name)
		}
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, "  "+label+": "+p.Value)
		}
	}
	return lines
}
