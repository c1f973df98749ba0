package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/browser"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/classify"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/loader"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/news"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/prefs"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/store"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/update"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeChips
	modeHelp
)

// App is the page controller: it owns the one filter-state record and the
// one article collection, and every render pass reads from those.
type App struct {
	state    *store.State
	loader   *loader.Loader
	prefs    *prefs.Store
	pageSize int
	version  string

	theme prefs.Theme
	st    styles

	mode   mode
	cursor int
	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model
	chips       chipBar

	loading       bool
	lastUpdated   time.Time
	hasUpdated    bool
	updateVersion string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Loader   *loader.Loader
	Prefs    *prefs.Store
	PageSize int
	Version  string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Søg i artikler..."
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	theme := prefs.ThemeDark
	if opts.Prefs != nil {
		theme = opts.Prefs.Theme()
	}

	a := &App{
		state:       store.New(),
		loader:      opts.Loader,
		prefs:       opts.Prefs,
		pageSize:    opts.PageSize,
		version:     opts.Version,
		theme:       theme,
		st:          newStyles(theme),
		searchInput: ti,
		spinner:     sp,
		chips:       newChipBar(classify.Labels()),
		loading:     true,
	}
	a.searchInput.Prompt = a.st.searchPrompt.Render("/ ")
	a.spinner.Style = a.st.spinner
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadFeedCmd(), a.spinner.Tick, a.checkUpdateCmd())
}

// loadFeedCmd issues the one startup fetch. It cannot fail: the loader
// substitutes the fallback sample on any error.
func (a *App) loadFeedCmd() tea.Cmd {
	l := a.loader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return feedLoadedMsg{result: l.Load(ctx)}
	}
}

func (a *App) checkUpdateCmd() tea.Cmd {
	version := a.version
	return func() tea.Msg {
		result := update.Check(context.Background(), version)
		if result == nil {
			return nil
		}
		return updateAvailableMsg{version: result.LatestVersion}
	}
}

func (a *App) saveThemeCmd(theme prefs.Theme) tea.Cmd {
	p := a.prefs
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		if err := p.SetTheme(theme); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case feedLoadedMsg:
		a.loading = false
		a.state.SetItems(msg.result.Articles)
		a.cursor = 0
		if t, ok := news.MostRecent(msg.result.Articles); ok {
			a.lastUpdated = t
			a.hasUpdated = true
		}
		return a, nil

	case updateAvailableMsg:
		a.updateVersion = msg.version
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeChips:
		return a.handleChipKey(msg)
	case modeHelp:
		if s := msg.String(); s == "?" || s == "esc" || s == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	window, total := a.state.Window(a.pageSize)

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(window)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "m":
		// Load more: extends the window without touching scroll or data.
		if len(window) < total {
			a.state.More()
		}
		return a, nil
	case "o", "enter":
		if a.cursor < len(window) {
			return a, openBrowserCmd(window[a.cursor].Link)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeChips
		a.chips.chipMode = true
		return a, nil
	case "x":
		if a.state.ActiveCount() > 0 {
			a.state.ClearTopics()
			a.cursor = 0
		}
		return a, nil
	case "t":
		return a, a.toggleTheme()
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

// toggleTheme flips the display mode, restyles, and persists the choice.
func (a *App) toggleTheme() tea.Cmd {
	if a.theme == prefs.ThemeDark {
		a.theme = prefs.ThemeLight
	} else {
		a.theme = prefs.ThemeDark
	}
	a.st = newStyles(a.theme)
	a.searchInput.Prompt = a.st.searchPrompt.Render("/ ")
	a.spinner.Style = a.st.spinner
	return a.saveThemeCmd(a.theme)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.state.SetQuery("")
		a.cursor = 0
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Query and page reset happen together, before the next render.
	if a.searchInput.Value() != a.state.Query() {
		a.state.SetQuery(a.searchInput.Value())
		a.cursor = 0
	}
	return a, cmd
}

func (a *App) handleChipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
		a.chips.chipMode = false
		return a, nil
	case "left", "h":
		if a.chips.cursor > 0 {
			a.chips.cursor--
		}
		return a, nil
	case "right", "l":
		if a.chips.cursor < len(a.chips.labels)-1 {
			a.chips.cursor++
		}
		return a, nil
	case " ", "enter":
		if label := a.chips.current(); label != "" {
			a.state.Toggle(label)
			a.cursor = 0
		}
		return a, nil
	case "x":
		a.state.ClearTopics()
		a.cursor = 0
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.chips.labels) {
			a.state.Toggle(a.chips.labels[idx])
			a.cursor = 0
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return a.st.errText.Render("  Femalefoundersfeed")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	headerHeight := 1
	chipsHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - chipsHeight - statusHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header: title left, "last updated" right.
	headerLeft := a.st.header.Render("Female Founders Feed")
	var updatedLabel string
	if a.hasUpdated {
		updatedLabel = "Opdateret " + relativeTime(a.lastUpdated)
	}
	if a.updateVersion != "" {
		updatedLabel += "  ny version v" + a.updateVersion
	}
	headerRight := a.st.headerUpdated.Render(updatedLabel + " ")
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Chip bar, replaced by the search input while searching.
	chipRow := a.chips.render(a.st, a.state, a.width)
	if a.mode == modeSearch {
		chipRow = a.searchInput.View()
	}

	window, total := a.state.Window(a.pageSize)
	if a.cursor >= len(window) && len(window) > 0 {
		a.cursor = len(window) - 1
	}

	var content string
	switch {
	case a.loading:
		content = centerText(a.spinner.View()+" Henter nyheder...", a.width, contentHeight)
	case total == 0:
		// Empty state replaces the card grid entirely.
		content = centerText(a.st.empty.Render("Ingen artikler matcher din søgning."), a.width, contentHeight)
	default:
		content = renderCards(window, a.cursor, contentHeight, a.width, a.st)
	}
	content = padToHeight(content, contentHeight)

	status := renderStatusBar(a.st, len(window), total, a.chips.activeLabel(a.state), a.theme, a.width, a.mode == modeSearch)
	if a.err != nil {
		status = a.st.errText.Render(" " + a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, chipRow, content, status)
}

func padToHeight(content string, height int) string {
	lines := 1
	for _, r := range content {
		if r == '\n' {
			lines++
		}
	}
	for ; lines < height; lines++ {
		content += "\n"
	}
	return content
}

func (a *App) renderHelp() string {
	title := a.st.errText.Bold(true).Render("Female Founders Feed")
	dim := a.st.empty

	help := title + dim.Render(" · Genveje") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Flyt markering\n" +
		"  m             Indlæs flere artikler\n\n" +
		dim.Render("Handlinger") + "\n" +
		"  o, enter      Åbn artikel i browser\n" +
		"  /             Søg i artikler\n" +
		"  f             Emne-filtre (chips)\n" +
		"  x             Nulstil emne-filtre\n" +
		"  t             Skift mellem mørkt og lyst tema\n\n" +
		dim.Render("Generelt") + "\n" +
		"  ?             Denne hjælp\n" +
		"  q, ctrl+c    Afslut"

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, help)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
