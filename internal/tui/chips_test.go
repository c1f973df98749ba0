package tui

import (
	"strings"
	"testing"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/classify"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/prefs"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/store"
)

func TestChipBarShowsAllLabels(t *testing.T) {
	st := newStyles(prefs.ThemeDark)
	bar := newChipBar(classify.Labels())
	out := bar.render(st, store.New(), 200)

	for _, label := range classify.Labels() {
		if !strings.Contains(out, label) {
			t.Errorf("chip bar missing label %q", label)
		}
	}
}

func TestChipBarResetOnlyWhenActive(t *testing.T) {
	st := newStyles(prefs.ThemeDark)
	bar := newChipBar(classify.Labels())
	state := store.New()

	out := bar.render(st, state, 200)
	if strings.Contains(out, "nulstil") {
		t.Error("reset chip should be hidden with no active topics")
	}

	state.Toggle("Kapital")
	out = bar.render(st, state, 200)
	if !strings.Contains(out, "nulstil") {
		t.Error("reset chip should appear when a topic is active")
	}
}

func TestChipBarCursorMarker(t *testing.T) {
	st := newStyles(prefs.ThemeDark)
	bar := newChipBar(classify.Labels())
	bar.chipMode = true
	bar.cursor = 1

	out := bar.render(st, store.New(), 200)
	if !strings.Contains(out, "["+classify.Labels()[1]+"]") {
		t.Errorf("expected cursor marker on second chip:\n%s", out)
	}
}

func TestActiveLabel(t *testing.T) {
	bar := newChipBar(classify.Labels())
	state := store.New()

	if got := bar.activeLabel(state); got != "Alle" {
		t.Errorf("activeLabel = %q, want Alle", got)
	}

	state.Toggle("Vækst")
	state.Toggle("Kapital")
	got := bar.activeLabel(state)
	// Rule order, not toggle order
	if got != "Kapital, Vækst" {
		t.Errorf("activeLabel = %q, want %q", got, "Kapital, Vækst")
	}
}

func TestChipCurrent(t *testing.T) {
	bar := newChipBar([]string{"A", "B"})
	if got := bar.current(); got != "A" {
		t.Errorf("current = %q, want A", got)
	}
	bar.cursor = 5
	if got := bar.current(); got != "" {
		t.Errorf("current out of range = %q, want empty", got)
	}
}
