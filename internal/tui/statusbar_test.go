package tui

import (
	"strings"
	"testing"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/prefs"
)

func TestPagerLabel(t *testing.T) {
	tests := []struct {
		shown, total int
		want         string
	}{
		{30, 35, "Viser 30 af 35"},
		{35, 35, "Alle 35 vist"},
		{0, 0, "Alle 0 vist"},
		{1, 10, "Viser 1 af 10"},
	}
	for _, tt := range tests {
		if got := pagerLabel(tt.shown, tt.total); got != tt.want {
			t.Errorf("pagerLabel(%d, %d) = %q, want %q", tt.shown, tt.total, got, tt.want)
		}
	}
}

func TestThemeHintNamesTargetMode(t *testing.T) {
	if got := themeHint(prefs.ThemeDark); got != "t lys" {
		t.Errorf("dark hint = %q, want 't lys'", got)
	}
	if got := themeHint(prefs.ThemeLight); got != "t mørk" {
		t.Errorf("light hint = %q, want 't mørk'", got)
	}
}

func TestStatusBarLoadMoreHint(t *testing.T) {
	st := newStyles(prefs.ThemeDark)

	withMore := renderStatusBar(st, 30, 35, "Alle", prefs.ThemeDark, 120, false)
	if !strings.Contains(withMore, "m flere") {
		t.Error("expected load-more hint while more articles exist")
	}

	allShown := renderStatusBar(st, 35, 35, "Alle", prefs.ThemeDark, 120, false)
	if strings.Contains(allShown, "m flere") {
		t.Error("load-more hint should be hidden when everything is shown")
	}
}

func TestStatusBarSearchHints(t *testing.T) {
	st := newStyles(prefs.ThemeDark)
	out := renderStatusBar(st, 10, 10, "Alle", prefs.ThemeDark, 120, true)
	if !strings.Contains(out, "esc annullér") {
		t.Error("expected search-mode hints")
	}
}
