package store

import (
	"strings"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/classify"
	"github.com/MNE-FFF/Femalefoundersfeed/internal/news"
)

// State is the single filter-state record for the page view: the raw article
// list, the free-text query, the active topic set and the 1-based pagination
// cursor. Any mutation of query or topics resets the cursor to the first page.
type State struct {
	items  []news.Article
	query  string
	active map[string]bool
	page   int
}

func New() *State {
	return &State{active: make(map[string]bool), page: 1}
}

// SetItems replaces the raw list wholesale. Items are never merged or patched.
func (s *State) SetItems(items []news.Article) {
	s.items = items
	s.page = 1
}

func (s *State) Items() []news.Article { return s.items }

func (s *State) Query() string { return s.query }

func (s *State) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.page = 1
}

// Toggle flips a topic label's membership in the active set.
func (s *State) Toggle(label string) {
	if s.active[label] {
		delete(s.active, label)
	} else {
		s.active[label] = true
	}
	s.page = 1
}

func (s *State) ClearTopics() {
	s.active = make(map[string]bool)
	s.page = 1
}

func (s *State) IsActive(label string) bool { return s.active[label] }

func (s *State) ActiveCount() int { return len(s.active) }

func (s *State) Page() int { return s.page }

// More advances the pagination cursor by one page.
func (s *State) More() { s.page++ }

// Filtered returns the articles passing both the text predicate and the topic
// predicate, in raw-list order. Pure with respect to the current state: the
// same items, query and active set always produce the same list.
func (s *State) Filtered() []news.Article {
	q := strings.ToLower(s.query)
	var out []news.Article
	for _, a := range s.items {
		if q != "" && !matchesQuery(a, q) {
			continue
		}
		if len(s.active) > 0 && !s.matchesTopics(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Window returns the Filtered prefix visible at the current cursor, clamped
// to the list length, plus the filtered total.
func (s *State) Window(pageSize int) ([]news.Article, int) {
	filtered := s.Filtered()
	end := s.page * pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[:end], len(filtered)
}

func matchesQuery(a news.Article, q string) bool {
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Summary), q) ||
		strings.Contains(strings.ToLower(a.Source), q)
}

func (s *State) matchesTopics(a news.Article) bool {
	for _, label := range classify.Topics(a) {
		if s.active[label] {
			return true
		}
	}
	return false
}
