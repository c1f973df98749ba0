package news

import (
	"time"
)

// Article is one entry of news.json. Title and Link are required; everything
// else may be missing and must never break classification or rendering.
type Article struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Summary   string `json:"summary,omitempty"`
	Published string `json:"published,omitempty"`
	Source    string `json:"source,omitempty"`
}

// publishedLayouts are tried in order when parsing Article.Published. The
// aggregator writes RFC3339, but feeds upstream occasionally leak RFC1123
// dates straight through.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// PublishedTime parses the Published field. The second return is false when
// the field is absent or unparseable; callers fall back to the raw text.
func (a Article) PublishedTime() (time.Time, bool) {
	if a.Published == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, a.Published); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MostRecent returns the latest valid published timestamp across articles.
// The second return is false when no article carries a parseable date.
func MostRecent(articles []Article) (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)
	for _, a := range articles {
		t, ok := a.PublishedTime()
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	return latest, found
}
