package textstat

import (
	"strings"
	"testing"
)

func TestCountBasics(t *testing.T) {
	s := Count("hello world  foo", "<p>hello world  foo</p>")

	if s.Words != 3 {
		t.Errorf("Words = %d, want 3", s.Words)
	}
	if s.Chars != 16 {
		t.Errorf("Chars = %d, want 16", s.Chars)
	}
	if s.CharsNoSpace != 13 {
		t.Errorf("CharsNoSpace = %d, want 13", s.CharsNoSpace)
	}
	if s.Paragraphs != 1 {
		t.Errorf("Paragraphs = %d, want 1", s.Paragraphs)
	}
	if s.Pages != 1 {
		t.Errorf("Pages = %d, want 1", s.Pages)
	}
	if s.ReadMinutes != 1 {
		t.Errorf("ReadMinutes = %d, want 1", s.ReadMinutes)
	}
}

func TestCountRunesNotBytes(t *testing.T) {
	// Vietnamese text: multi-byte UTF-8, counts must be character-based.
	s := Count("xin chào", "<p>xin chào</p>")
	if s.Chars != 8 {
		t.Errorf("Chars = %d, want 8", s.Chars)
	}
	if s.Words != 2 {
		t.Errorf("Words = %d, want 2", s.Words)
	}
}

func TestPageEstimateBoundaries(t *testing.T) {
	at6000 := Count(strings.Repeat("a", 6000), "")
	if at6000.Pages != 2 {
		t.Errorf("6000 chars: Pages = %d, want 2", at6000.Pages)
	}

	at6001 := Count(strings.Repeat("a", 6001), "")
	if at6001.Pages != 3 {
		t.Errorf("6001 chars: Pages = %d, want 3", at6001.Pages)
	}

	empty := Count("", "")
	if empty.Pages != 0 {
		t.Errorf("empty: Pages = %d, want 0", empty.Pages)
	}
}

func TestParagraphsFromHTML(t *testing.T) {
	s := Count("a\nb\nc", "<p>a</p><p>b</p><p class=\"x\">c</p>")
	if s.Paragraphs != 3 {
		t.Errorf("Paragraphs = %d, want 3", s.Paragraphs)
	}
}

func TestTopWords(t *testing.T) {
	text := "mekong mekong mekong delta delta and the of hà nội hà nội và của"
	top := TopWords(text, 3)

	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if top[0].Word != "mekong" || top[0].Count != 3 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Word != "delta" || top[1].Count != 2 {
		t.Errorf("top[1] = %+v", top[1])
	}
	// English and Vietnamese stopwords must not appear.
	for _, w := range top {
		switch w.Word {
		case "and", "the", "of", "và", "của":
			t.Errorf("stopword %q in ranking", w.Word)
		}
	}
}

func TestTopWordsLimit(t *testing.T) {
	if got := TopWords("one two three", 0); got != nil {
		t.Errorf("limit 0 = %v, want nil", got)
	}
}
