// Package textstat computes the document statistics shown in the status bar
// and the statistics dialog.
package textstat

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/orsinium-labs/stopwords"
)

// charsPerPage approximates pagination; it is not tied to real layout.
const charsPerPage = 3000

// wordsPerMinute is the assumed reading speed.
const wordsPerMinute = 200

// Stats holds the derived counts for one document.
type Stats struct {
	Words        int `json:"words"`
	Chars        int `json:"chars"`
	CharsNoSpace int `json:"charsNoSpace"`
	Paragraphs   int `json:"paragraphs"`
	Pages        int `json:"pages"`
	ReadMinutes  int `json:"readMinutes"`
}

// Count derives statistics from the plain-text projection and the rendered
// HTML of a document. Word count is whitespace-delimited; character counts
// are in runes, matching the character indices the editor widget reports.
func Count(text, html string) Stats {
	words := len(strings.Fields(text))
	chars := utf8.RuneCountInString(text)

	noSpace := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			noSpace++
		}
	}

	paragraphs := strings.Count(html, "<p")
	if paragraphs == 0 {
		paragraphs = 1
	}

	return Stats{
		Words:        words,
		Chars:        chars,
		CharsNoSpace: noSpace,
		Paragraphs:   paragraphs,
		Pages:        ceilDiv(chars, charsPerPage),
		ReadMinutes:  ceilDiv(words, wordsPerMinute),
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// WordFreq is one entry of a top-words ranking.
type WordFreq struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// english filters common English words out of rankings; Vietnamese and Khmer
// are not covered by the stopwords corpus, so they get small custom lists.
var english = stopwords.MustGet("en")

// customStop holds function words for the app's own languages.
var customStop = map[string]bool{
	// Vietnamese
	"và": true, "là": true, "của": true, "có": true, "không": true,
	"được": true, "các": true, "một": true, "này": true, "cho": true,
	"với": true, "trong": true, "đã": true, "những": true, "khi": true,
	// Khmer
	"និង": true, "ជា": true, "របស់": true, "មាន": true, "នេះ": true,
	"ដែល": true, "នៅ": true, "បាន": true, "ក្នុង": true, "គឺ": true,
}

func isStopword(w string) bool {
	if customStop[w] {
		return true
	}
	return english.Contains(w)
}

// TopWords ranks the most frequent non-stopword tokens of the plain text.
// Ties break alphabetically so the ranking is stable.
func TopWords(text string, limit int) []WordFreq {
	if limit <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, tok := range strings.Fields(text) {
		w := strings.ToLower(strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
		if w == "" || isStopword(w) {
			continue
		}
		counts[w]++
	}

	ranked := make([]WordFreq, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordFreq{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
