package ui

import (
	"fmt"
	"strings"

	"ripple/internal/core"
)

// statusLines formats a status block for the panel.
func statusLines(st core.Status) []string {
	return []string{
		"state: " + st.State,
		fmt.Sprintf("ticks: %d", st.Ticks),
		fmt.Sprintf("amplitude: %.2f", st.Amplitude),
		fmt.Sprintf("energy: %.0f", st.Energy),
	}
}

// parameterLines flattens a snapshot into headed "label: value" lines.
func parameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.ToUpper(g.Name))
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

func buildTitle(name string) string {
	if name == "" {
		return "Surface"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

var helpLines = []string{
	"click  impulse",
	"d      random drop",
	"space  pause",
	"n      single tick",
	"r      reset",
	"1      rest line",
	"2      help",
	"q      quit",
}
