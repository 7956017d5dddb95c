package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one time slot of a lane
type Cell struct {
	Symbol rune
	Color  [3]uint8
}

// RenderCell renders a single colored cell
func RenderCell(c Cell) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(c.Color)))
	return style.Render(string(c.Symbol))
}

// RenderLane renders a label column followed by the cells, split into bars
// of cellsPerBar with a thin separator
func RenderLane(label string, labelWidth int, cells []Cell, cellsPerBar int) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("%-*s ", labelWidth, truncate(label, labelWidth)))
	for i, c := range cells {
		if cellsPerBar > 0 && i > 0 && i%cellsPerBar == 0 {
			out.WriteString("│")
		}
		out.WriteString(RenderCell(c))
	}
	return out.String()
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(c Cell, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderCell(c), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
