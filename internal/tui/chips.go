package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/store"
)

// chipBar renders one toggle chip per topic label. Membership lives in the
// filter state; the bar only keeps its own cursor for chip mode.
type chipBar struct {
	labels   []string
	chipMode bool
	cursor   int
}

func newChipBar(labels []string) chipBar {
	return chipBar{labels: labels}
}

func (c *chipBar) current() string {
	if c.cursor < len(c.labels) {
		return c.labels[c.cursor]
	}
	return ""
}

func (c *chipBar) render(st styles, state *store.State, width int) string {
	sep := c.renderSep(st)
	var parts []string

	for i, label := range c.labels {
		style := st.chipOff
		if state.IsActive(label) {
			style = st.chipOn
		}
		text := label
		if c.chipMode && i == c.cursor {
			text = "[" + label + "]"
		}
		parts = append(parts, style.Render(text))
	}

	// Reset control appears only while any topic filter is active.
	if state.ActiveCount() > 0 {
		parts = append(parts, st.chipReset.Render("✕ nulstil"))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return st.chipBar.Width(width).Render(row)
}

func (c *chipBar) renderSep(st styles) string {
	return st.chipSep.Render(" · ")
}

// activeLabel summarizes the active set for the status bar.
func (c *chipBar) activeLabel(state *store.State) string {
	if state.ActiveCount() == 0 {
		return "Alle"
	}
	var active []string
	for _, label := range c.labels {
		if state.IsActive(label) {
			active = append(active, label)
		}
	}
	return strings.Join(active, ", ")
}
