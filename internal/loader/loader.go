package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/news"
)

// Result is the outcome of one feed load. Fallback is true when the endpoint
// could not be used and the built-in sample was substituted.
type Result struct {
	Articles []news.Article
	Fallback bool
}

// Loader fetches news.json from a fixed endpoint. The fetch always bypasses
// caches so a freshly aggregated file is picked up immediately.
type Loader struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
}

func New(endpoint string) *Loader {
	return &Loader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		now:      time.Now,
	}
}

// Load fetches and decodes the article list. It never returns an error:
// network failures, non-2xx statuses and malformed payloads all degrade to
// the fallback sample so the view always has something to show. A valid
// empty list is a successful load, not a failure.
func (l *Loader) Load(ctx context.Context) Result {
	articles, err := l.fetch(ctx)
	if err != nil {
		return Result{Articles: Fallback(), Fallback: true}
	}
	return Result{Articles: articles}
}

func (l *Loader) fetch(ctx context.Context) ([]news.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cacheBustedURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching feed: status %d", resp.StatusCode)
	}

	var articles []news.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	return articles, nil
}

// cacheBustedURL appends a timestamp query parameter for intermediaries
// that ignore the no-cache headers.
func (l *Loader) cacheBustedURL() string {
	u, err := url.Parse(l.endpoint)
	if err != nil {
		return l.endpoint
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(l.now().Unix(), 10))
	u.RawQuery = q.Encode()
	return u.String()
}

// Fallback is the built-in sample shown when the endpoint fails. Kept small
// but realistic so the page never opens empty.
func Fallback() []news.Article {
	return []news.Article{
		{
			Title:     "Dansk founder henter seed-runde til klima-startup",
			Link:      "https://example.com/seed-runde-klima",
			Summary:   "Selskabet vil bruge kapitalen på at skalere sin platform i Norden.",
			Published: "2026-08-01T08:00:00Z",
			Source:    "Eksempel Medie",
		},
		{
			Title:     "Kvindelige stiftere står bag rekordmange nye virksomheder",
			Link:      "https://example.com/rekord-stiftere",
			Summary:   "Ny opgørelse viser fremgang i andelen af kvindelige founders.",
			Published: "2026-07-28T06:30:00Z",
			Source:    "Eksempel Medie",
		},
		{
			Title:     "Investorer efterlyser flere kvindelige iværksættere",
			Link:      "https://example.com/investorer-efterlyser",
			Published: "2026-07-21T12:00:00Z",
		},
	}
}
