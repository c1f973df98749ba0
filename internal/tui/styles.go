package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/prefs"
)

// palette is one theme's color set. Two fixed palettes exist; the active one
// is chosen by the persisted preference and swapped live by the theme toggle.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	dim       lipgloss.Color
	accent    lipgloss.Color
	green     lipgloss.Color
	surface   lipgloss.Color
	statusBg  lipgloss.Color
	statusFg  lipgloss.Color
	chipBg    lipgloss.Color
}

func darkPalette() palette {
	return palette{
		primary:   lipgloss.Color("#7571F9"),
		secondary: lipgloss.Color("#ABABAB"),
		dim:       lipgloss.Color("#626262"),
		accent:    lipgloss.Color("#F25D94"),
		green:     lipgloss.Color("#25D366"),
		surface:   lipgloss.Color("#2A2A3E"),
		statusBg:  lipgloss.Color("#16213E"),
		statusFg:  lipgloss.Color("#ABABAB"),
		chipBg:    lipgloss.Color("#2A2A3E"),
	}
}

func lightPalette() palette {
	return palette{
		primary:   lipgloss.Color("#5A56E0"),
		secondary: lipgloss.Color("#3D3D3D"),
		dim:       lipgloss.Color("#9B9B9B"),
		accent:    lipgloss.Color("#F25D94"),
		green:     lipgloss.Color("#04B575"),
		surface:   lipgloss.Color("#EEEEEE"),
		statusBg:  lipgloss.Color("#E8E8E8"),
		statusFg:  lipgloss.Color("#3D3D3D"),
		chipBg:    lipgloss.Color("#EEEEEE"),
	}
}

type styles struct {
	header        lipgloss.Style
	headerUpdated lipgloss.Style

	cardTitle    lipgloss.Style
	cardSelected lipgloss.Style
	cardSource   lipgloss.Style
	cardTime     lipgloss.Style
	cardSummary  lipgloss.Style
	tag          lipgloss.Style

	chipOn    lipgloss.Style
	chipOff   lipgloss.Style
	chipReset lipgloss.Style
	chipSep   lipgloss.Style
	chipBar   lipgloss.Style

	statusBar    lipgloss.Style
	spinner      lipgloss.Style
	searchPrompt lipgloss.Style
	empty        lipgloss.Style
	errText      lipgloss.Style
}

func newStyles(theme prefs.Theme) styles {
	p := darkPalette()
	if theme == prefs.ThemeLight {
		p = lightPalette()
	}

	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(1),
		headerUpdated: lipgloss.NewStyle().
			Foreground(p.dim).
			Align(lipgloss.Right),

		cardTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		cardSelected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		cardSource: lipgloss.NewStyle().
			Foreground(p.green),
		cardTime: lipgloss.NewStyle().
			Foreground(p.dim),
		cardSummary: lipgloss.NewStyle().
			Foreground(p.secondary),
		tag: lipgloss.NewStyle().
			Foreground(p.secondary).
			Background(p.chipBg).
			Padding(0, 1),

		chipOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.primary).
			Padding(0, 1).
			Bold(true),
		chipOff: lipgloss.NewStyle().
			Foreground(p.secondary).
			Background(p.chipBg).
			Padding(0, 1),
		chipReset: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.accent).
			Padding(0, 1),
		chipSep: lipgloss.NewStyle().
			Foreground(p.dim),
		chipBar: lipgloss.NewStyle().
			Background(p.surface).
			PaddingLeft(1),

		statusBar: lipgloss.NewStyle().
			Background(p.statusBg).
			Foreground(p.statusFg).
			PaddingLeft(1).
			PaddingRight(1),
		spinner: lipgloss.NewStyle().
			Foreground(p.accent),
		searchPrompt: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		empty: lipgloss.NewStyle().
			Foreground(p.dim).
			Italic(true),
		errText: lipgloss.NewStyle().
			Foreground(p.accent),
	}
}
