package news

import (
	"testing"
	"time"
)

func TestPublishedTime(t *testing.T) {
	tests := []struct {
		published string
		wantOK    bool
		wantYear  int
	}{
		{"2026-03-01T08:15:00Z", true, 2026},
		{"2026-03-01T08:15:00+01:00", true, 2026},
		{"2026-03-01T08:15:00", true, 2026},
		{"Mon, 02 Jan 2026 15:04:05 +0100", true, 2026},
		{"2026-03-01", true, 2026},
		{"", false, 0},
		{"sidste tirsdag", false, 0},
		{"2026-99-99", false, 0},
	}
	for _, tt := range tests {
		a := Article{Published: tt.published}
		got, ok := a.PublishedTime()
		if ok != tt.wantOK {
			t.Errorf("PublishedTime(%q) ok = %v, want %v", tt.published, ok, tt.wantOK)
			continue
		}
		if ok && got.Year() != tt.wantYear {
			t.Errorf("PublishedTime(%q) year = %d, want %d", tt.published, got.Year(), tt.wantYear)
		}
	}
}

func TestMostRecent(t *testing.T) {
	articles := []Article{
		{Title: "a", Published: "2026-01-10T00:00:00Z"},
		{Title: "b", Published: "ugyldig dato"},
		{Title: "c", Published: "2026-02-20T12:00:00Z"},
		{Title: "d"},
	}
	got, ok := MostRecent(articles)
	if !ok {
		t.Fatal("expected a most recent timestamp")
	}
	want := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MostRecent = %v, want %v", got, want)
	}
}

func TestMostRecentNoValidDates(t *testing.T) {
	articles := []Article{
		{Title: "a"},
		{Title: "b", Published: "not a date"},
	}
	if _, ok := MostRecent(articles); ok {
		t.Error("expected no timestamp when nothing parses")
	}
}

func TestMostRecentEmpty(t *testing.T) {
	if _, ok := MostRecent(nil); ok {
		t.Error("expected no timestamp for empty list")
	}
}
