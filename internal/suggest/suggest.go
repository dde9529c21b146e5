// Package suggest provides autocomplete suggestions drawn from document
// titles and keywords.
package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
)

const (
	DefaultMaxSuggestions = 5
	DefaultMinLength      = 2
)

type entry struct {
	text   string
	folded string
}

// Suggester matches partial input against a fixed pool of titles and
// keywords, deduplicated case-insensitively.
type Suggester struct {
	pool      []entry
	max       int
	minLength int
}

// Option configures a Suggester.
type Option func(*Suggester)

// WithMaxSuggestions caps the number of suggestions returned.
func WithMaxSuggestions(n int) Option {
	return func(s *Suggester) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithMinLength sets the minimum trimmed input length in runes.
func WithMinLength(n int) Option {
	return func(s *Suggester) {
		if n > 0 {
			s.minLength = n
		}
	}
}

// New builds the suggestion pool of snap.
func New(snap *corpus.Snapshot, opts ...Option) *Suggester {
	s := &Suggester{max: DefaultMaxSuggestions, minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(s)
	}

	byFolded := make(map[string]string)
	add := func(text string) {
		text = indexer.Normalize(text)
		if text == "" {
			return
		}
		folded := indexer.Fold(text)
		// keep one spelling per folded form, the lexically smallest
		if prev, ok := byFolded[folded]; !ok || text < prev {
			byFolded[folded] = text
		}
	}
	for _, doc := range snap.Documents() {
		add(doc.Title)
		for _, kw := range doc.Keywords {
			add(kw)
		}
	}

	s.pool = make([]entry, 0, len(byFolded))
	for folded, text := range byFolded {
		s.pool = append(s.pool, entry{text: text, folded: folded})
	}
	sort.Slice(s.pool, func(i, j int) bool { return less(s.pool[i], s.pool[j]) })
	return s
}

// Suggest returns up to the configured maximum of titles and keywords
// containing partial, prefix matches first. Input shorter than the minimum
// length yields an empty list.
func (s *Suggester) Suggest(partial string) []string {
	term := indexer.Fold(indexer.Normalize(partial))
	if utf8.RuneCountInString(term) < s.minLength {
		return []string{}
	}

	var prefix, substring []string
	for _, e := range s.pool {
		switch {
		case strings.HasPrefix(e.folded, term):
			prefix = append(prefix, e.text)
		case strings.Contains(e.folded, term):
			substring = append(substring, e.text)
		}
		if len(prefix) >= s.max {
			break
		}
	}

	out := make([]string, 0, s.max)
	out = append(out, prefix...)
	out = append(out, substring...)
	if len(out) > s.max {
		out = out[:s.max]
	}
	return out
}

func less(a, b entry) bool {
	if a.folded != b.folded {
		return a.folded < b.folded
	}
	return a.text < b.text
}
