package aggregate

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/config"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/news"
)

// Keywords holds the compiled editorial filter. An entry passes when it hits
// at least one gender word AND at least one startup or business word.
type Keywords struct {
	gender   *regexp.Regexp
	startup  *regexp.Regexp
	business *regexp.Regexp
}

func CompileKeywords(a config.Aggregator) Keywords {
	return Keywords{
		gender:   compileGroup(a.KeywordsGender),
		startup:  compileGroup(a.KeywordsStartup),
		business: compileGroup(a.KeywordsBusiness),
	}
}

func compileGroup(words []string) *regexp.Regexp {
	if len(words) == 0 {
		return nil
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile("(?i)(" + strings.Join(escaped, "|") + ")")
}

// Match reports whether title+summary passes the editorial filter.
func (k Keywords) Match(title, summary string) bool {
	hay := title + "\n" + summary
	if k.gender == nil || !k.gender.MatchString(hay) {
		return false
	}
	if k.startup != nil && k.startup.MatchString(hay) {
		return true
	}
	return k.business != nil && k.business.MatchString(hay)
}

// Fetcher pulls one RSS/Atom feed and converts matching entries to articles.
// Fetchers share one rate limiter so a long feed list does not hammer
// publishers.
type Fetcher struct {
	parser  *gofeed.Parser
	limiter *rate.Limiter
}

func NewFetcher(limiter *rate.Limiter) *Fetcher {
	return &Fetcher{parser: gofeed.NewParser(), limiter: limiter}
}

func (f *Fetcher) Fetch(ctx context.Context, url string, kw Keywords) ([]news.Article, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	sourceName := parsed.Title
	if sourceName == "" {
		sourceName = parsed.Link
	}
	if sourceName == "" {
		sourceName = url
	}

	now := time.Now().UTC().Truncate(time.Second)
	var articles []news.Article
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		summary := CleanHTML(desc)

		if !kw.Match(title, summary) {
			continue
		}

		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else if item.UpdatedParsed != nil {
			published = item.UpdatedParsed.UTC().Format(time.RFC3339)
		} else if published == "" {
			published = item.Updated
		}
		if published == "" {
			published = now.Format(time.RFC3339)
		}

		articles = append(articles, news.Article{
			Title:     title,
			Link:      link,
			Summary:   summary,
			Published: published,
			Source:    sourceName,
		})
	}
	return articles, nil
}

// CleanHTML flattens markup to plain text with collapsed whitespace.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func articleID(link, title string) string {
	h := sha256.Sum256([]byte(link + "|" + title))
	return fmt.Sprintf("%x", h)
}

// Result holds the outcome of one aggregation run. Per-feed failures are
// collected as warnings, never aborting the run.
type Result struct {
	Articles []news.Article
	Errors   []error
}

// FetchAll pulls every configured feed concurrently and keeps the entries
// passing the keyword filter, deduplicated by (link, title). Results are
// assembled in configured feed order, so the surviving duplicate and the
// order among equal timestamps are stable across runs.
func FetchAll(ctx context.Context, feeds []string, kw Keywords) Result {
	perFeed := make([][]news.Article, len(feeds))
	errs := make([]error, len(feeds))
	var wg sync.WaitGroup

	fetcher := NewFetcher(rate.NewLimiter(rate.Every(200*time.Millisecond), 2))

	for i, url := range feeds {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			perFeed[i], errs[i] = fetcher.Fetch(ctx, u, kw)
		}(i, url)
	}
	wg.Wait()

	var result Result
	for i := range feeds {
		if errs[i] != nil {
			result.Errors = append(result.Errors, errs[i])
			continue
		}
		result.Articles = append(result.Articles, perFeed[i]...)
	}
	result.Articles = Dedupe(result.Articles)
	return result
}

// Dedupe drops repeated (link, title) pairs, keeping the first occurrence.
func Dedupe(articles []news.Article) []news.Article {
	seen := make(map[string]bool, len(articles))
	var out []news.Article
	for _, a := range articles {
		id := articleID(a.Link, a.Title)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, a)
	}
	return out
}

// SortNewestFirst orders articles by published timestamp descending.
// Unparseable dates sink to the bottom.
func SortNewestFirst(articles []news.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, _ := articles[i].PublishedTime()
		tj, _ := articles[j].PublishedTime()
		return ti.After(tj)
	})
}

// Write exports articles as indented JSON, capped at limit.
func Write(path string, articles []news.Article, limit int) error {
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
