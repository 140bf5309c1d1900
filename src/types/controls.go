package types

import "strings"

// ControlType is a single key binding and what it does.
type ControlType struct {
	Name string // Human-readable action, e.g. "select"
	Key  string // Key label, e.g. "enter"
}

// ControlSet is the group of bindings active in one view or pane.
type ControlSet struct {
	Controls []ControlType
}

// Hint renders the set as a single hint line, "enter select · esc back".
func (cs ControlSet) Hint() string {
	parts := make([]string, 0, len(cs.Controls))
	for _, c := range cs.Controls {
		parts = append(parts, c.Key+" "+c.Name)
	}
	return strings.Join(parts, " · ")
}

// HintLines renders each set on its own line.
func HintLines(sets []ControlSet) []string {
	lines := make([]string, 0, len(sets))
	for _, cs := range sets {
		if h := cs.Hint(); h != "" {
			lines = append(lines, h)
		}
	}
	return lines
}

// GlobalControlSet holds the bindings available on every screen.
var GlobalControlSet = ControlSet{
	Controls: []ControlType{
		{Name: "quit", Key: "ctrl+c"},
	},
}
