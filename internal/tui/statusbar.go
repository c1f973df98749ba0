package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/prefs"
)

// pagerLabel is the "Showing K of N" counter. When everything is visible it
// flips to the all-shown wording and the load-more hint disappears.
func pagerLabel(shown, total int) string {
	if shown < total {
		return fmt.Sprintf("Viser %d af %d", shown, total)
	}
	return fmt.Sprintf("Alle %d vist", total)
}

// themeHint names the mode the toggle key would switch TO, not the current one.
func themeHint(current prefs.Theme) string {
	if current == prefs.ThemeDark {
		return "t lys"
	}
	return "t mørk"
}

func renderStatusBar(st styles, shown, total int, filterLabel string, theme prefs.Theme, width int, searching bool) string {
	left := " " + pagerLabel(shown, total)
	if filterLabel != "Alle" {
		left += " · " + filterLabel
	}

	right := " o åbn  / søg  f emner  " + themeHint(theme) + "  q afslut "
	if shown < total {
		right = " m flere  " + right[1:]
	}
	if searching {
		right = " esc annullér  enter søg "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return st.statusBar.Width(width).Render(bar)
}
