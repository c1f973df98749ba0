package classify

import (
	"regexp"

	"github.com/MNE-FFF/Femalefoundersfeed/internal/news"
)

// Rule pairs a topic label with the pattern that assigns it. Rules are
// evaluated independently, so one article can carry several labels.
type Rule struct {
	Label   string
	Pattern *regexp.Regexp
}

// rules is the fixed rule set. Declaration order is chip display order and
// the order labels appear on cards. Patterns mix Danish and English stems so
// inflected forms match without tokenization.
var rules = []Rule{
	{"Kapital", regexp.MustCompile(`(?i)seed|series [a-c]|funding|invester|kapital|venture|runde|mio\.|million`)},
	{"Teknologi", regexp.MustCompile(`(?i)tech|software|\bapp\b|platform|digital|\bai\b|kunstig intelligens|saas`)},
	{"Vækst", regexp.MustCompile(`(?i)vækst|growth|skaler|scale|ekspan|expand|internationalis`)},
	{"Ledelse", regexp.MustCompile(`(?i)\bceo\b|direktør|stifter|founder|bestyrelse|leder`)},
	{"Bæredygtighed", regexp.MustCompile(`(?i)bæredygtig|sustainab|klima|climate|grøn|green ?tech|impact`)},
	{"Politik", regexp.MustCompile(`(?i)politik|policy|regering|lovgiv|tilskud|pulje`)},
}

// Labels returns every topic label in rule order.
func Labels() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Label
	}
	return out
}

// Topics returns the labels whose pattern matches the article's title and
// summary, in rule order. Deterministic; missing summary is treated as empty.
func Topics(a news.Article) []string {
	hay := a.Title + " " + a.Summary
	var out []string
	for _, r := range rules {
		if r.Pattern.MatchString(hay) {
			out = append(out, r.Label)
		}
	}
	return out
}
