// Package findreplace implements the find-next / replace-all operations over
// a document's plain-text projection. Matching is exact (case-sensitive, no
// normalization) and results are reported in rune offsets because the editor
// widget addresses content by character index, not by byte.
package findreplace

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// Span is one match in rune offsets. End is exclusive.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Searcher matches a single query string against document text.
type Searcher struct {
	query string
	ac    *ahocorasick.Automaton
}

// New compiles a searcher for the query. An empty query is rejected by the
// caller's validation; compiling it anyway yields a searcher that never
// matches.
func New(query string) (*Searcher, error) {
	if query == "" {
		return &Searcher{query: query}, nil
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings([]string{query}).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	return &Searcher{query: query, ac: automaton}, nil
}

// FindAll returns every non-overlapping occurrence in leftmost order.
func (s *Searcher) FindAll(text string) []Span {
	if s.ac == nil || text == "" {
		return nil
	}

	matches := s.ac.FindAllOverlapping([]byte(text))
	spans := make([]Span, 0, len(matches))

	// A single pattern can still yield overlapping occurrences ("aa" in
	// "aaa"); keep leftmost non-overlapping ones, which is what replace-all
	// operates on.
	lastEnd := -1
	for _, m := range matches {
		if m.Start < lastEnd {
			continue
		}
		spans = append(spans, Span{
			Start: utf8.RuneCountInString(text[:m.Start]),
			End:   utf8.RuneCountInString(text[:m.End]),
		})
		lastEnd = m.End
	}
	return spans
}

// FindFrom finds the first occurrence at or after the given rune offset,
// wrapping to the start of the text when nothing follows the cursor.
// wrapped reports whether the hit came from wrapping.
func (s *Searcher) FindFrom(text string, from int) (span Span, found, wrapped bool) {
	spans := s.FindAll(text)
	if len(spans) == 0 {
		return Span{}, false, false
	}
	for _, sp := range spans {
		if sp.Start >= from {
			return sp, true, false
		}
	}
	return spans[0], true, true
}

// Count returns the number of non-overlapping occurrences.
func (s *Searcher) Count(text string) int {
	return len(s.FindAll(text))
}

// ReplaceAll substitutes every occurrence of query with repl and reports the
// replacement count. Plain substring replacement, same non-overlapping
// semantics as FindAll.
func ReplaceAll(text, query, repl string) (string, int) {
	if query == "" {
		return text, 0
	}
	n := strings.Count(text, query)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, query, repl), n
}
