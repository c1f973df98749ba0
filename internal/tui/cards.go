package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/classify"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/news"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "lige nu"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dt", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("2. Jan 2006")
	}
}

// formatPublished renders the card timestamp; unparseable dates fall back to
// the raw feed text rather than breaking the card.
func formatPublished(a news.Article) string {
	if t, ok := a.PublishedTime(); ok {
		return relativeTime(t)
	}
	return a.Published
}

// renderCard draws one article card: linked title, source/date meta line,
// optional summary and one tag per classified topic.
func renderCard(a news.Article, selected bool, width int, st styles) string {
	if width < 10 {
		width = 30
	}

	var lines []string

	if selected {
		lines = append(lines, st.cardSelected.Render("> "+truncateStr(a.Title, width-4)))
	} else {
		lines = append(lines, st.cardTitle.Render("  "+truncateStr(a.Title, width-4)))
	}

	source := a.Source
	if source == "" {
		source = "Kilde"
	}
	meta := "  " + st.cardSource.Render(source)
	if published := formatPublished(a); published != "" {
		meta += " " + st.cardTime.Render("· "+published)
	}
	lines = append(lines, meta)

	if a.Summary != "" {
		for _, l := range summaryLines(a.Summary, width-4, 2) {
			lines = append(lines, "  "+st.cardSummary.Render(l))
		}
	}

	if topics := classify.Topics(a); len(topics) > 0 {
		tags := make([]string, len(topics))
		for i, label := range topics {
			tags[i] = st.tag.Render(label)
		}
		lines = append(lines, "  "+strings.Join(tags, " "))
	}

	return strings.Join(lines, "\n")
}

// summaryLines wraps the summary and caps it at maxLines, ellipsizing the
// last line when it overflows.
func summaryLines(s string, width, maxLines int) []string {
	wrapped := strings.Split(wrapText(s, width), "\n")
	if len(wrapped) <= maxLines {
		return wrapped
	}
	wrapped = wrapped[:maxLines]
	wrapped[maxLines-1] = truncateStr(wrapped[maxLines-1]+"...", width)
	return wrapped
}

// renderCards draws the visible window of cards, scrolled so the selected
// card stays on screen. The whole block is rebuilt every pass.
func renderCards(articles []news.Article, cursor, height, width int, st styles) string {
	if len(articles) == 0 {
		return ""
	}

	var lines []string
	starts := make([]int, len(articles))
	ends := make([]int, len(articles))
	for i, a := range articles {
		starts[i] = len(lines)
		lines = append(lines, strings.Split(renderCard(a, i == cursor, width, st), "\n")...)
		ends[i] = len(lines)
		if i < len(articles)-1 {
			lines = append(lines, "")
		}
	}

	// Scroll so the cursor card is fully visible.
	offset := 0
	if cursor >= 0 && cursor < len(articles) {
		if ends[cursor] > height {
			offset = ends[cursor] - height
		}
		if starts[cursor] < offset {
			offset = starts[cursor]
		}
	}

	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	visible := lines[offset:]
	if len(visible) > height {
		visible = visible[:height]
	}
	return strings.Join(visible, "\n")
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func centerText(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", max(0, height/3)) + strings.Repeat(" ", pad) + s
}
