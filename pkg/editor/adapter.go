package editor

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vietkhmer/vkedit/pkg/findreplace"
	"github.com/vietkhmer/vkedit/pkg/textstat"
)

// Table size limits. Larger tables are unusable in the editor viewport.
const (
	MinTableRows = 1
	MaxTableRows = 20
	MinTableCols = 1
	MaxTableCols = 10
)

var (
	ErrTableSize  = errors.New("table size out of range")
	ErrInvalidURL = errors.New("invalid link URL")
	ErrEmptyQuery = errors.New("empty search query")
)

// Adapter drives a Widget with application-level operations.
type Adapter struct {
	w Widget
}

// NewAdapter wraps a widget.
func NewAdapter(w Widget) *Adapter {
	return &Adapter{w: w}
}

// GetContent snapshots the widget.
func (a *Adapter) GetContent() Content { return a.w.Content() }

// SetContent replaces the document with a stored blob.
func (a *Adapter) SetContent(c Content) { a.w.SetDelta(c.Delta) }

// Clear empties the document.
func (a *Adapter) Clear() { a.w.Clear() }

// Stats derives the status-bar statistics from the current content.
func (a *Adapter) Stats() textstat.Stats {
	c := a.w.Content()
	return textstat.Count(c.Text, c.HTML)
}

// TopWords ranks the most frequent words of the document.
func (a *Adapter) TopWords(limit int) []textstat.WordFreq {
	return textstat.TopWords(a.w.Content().Text, limit)
}

// ToggleFormat flips a boolean attribute like bold, italic or underline on
// the current selection.
func (a *Adapter) ToggleFormat(name string) {
	active, _ := a.w.CurrentFormat()[name].(bool)
	if active {
		a.w.ApplyFormat(name, nil)
	} else {
		a.w.ApplyFormat(name, true)
	}
}

// SetFormat applies a valued attribute: font, size, color, background, align.
// An empty value removes the attribute.
func (a *Adapter) SetFormat(name, value string) {
	if value == "" {
		a.w.ApplyFormat(name, nil)
		return
	}
	a.w.ApplyFormat(name, value)
}

// ToggleList switches the current block between no list and the given kind
// ("ordered" or "bullet").
func (a *Adapter) ToggleList(kind string) {
	current, _ := a.w.CurrentFormat()["list"].(string)
	if current == kind {
		a.w.ApplyFormat("list", nil)
	} else {
		a.w.ApplyFormat("list", kind)
	}
}

// InsertTable places an empty rows x cols table at the cursor.
func (a *Adapter) InsertTable(rows, cols int) error {
	if rows < MinTableRows || rows > MaxTableRows || cols < MinTableCols || cols > MaxTableCols {
		return ErrTableSize
	}

	var b strings.Builder
	b.WriteString(`<table border="1" style="border-collapse: collapse; width: 100%;">`)
	for r := 0; r < rows; r++ {
		b.WriteString("<tr>")
		for c := 0; c < cols; c++ {
			b.WriteString(`<td style="padding: 8px; border: 1px solid #ccc;">&nbsp;</td>`)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table><p><br></p>")

	a.w.InsertHTML(a.cursor(), b.String())
	return nil
}

// InsertLink inserts linked text at the cursor. A missing scheme defaults to
// https; only http and https links are accepted.
func (a *Adapter) InsertLink(text, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ErrInvalidURL
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	if text == "" {
		text = rawURL
	}

	at := a.cursor()
	a.w.InsertText(at, text, map[string]interface{}{"link": u.String()})
	a.w.Select(at+len([]rune(text)), 0)
	return nil
}

// InsertImage embeds an image (a URL or data URI) at the cursor.
func (a *Adapter) InsertImage(src string) error {
	if strings.TrimSpace(src) == "" {
		return fmt.Errorf("empty image source")
	}
	a.w.InsertEmbed(a.cursor(), "image", src)
	return nil
}

// FindNext selects the next occurrence after the cursor, wrapping to the
// start of the document. wrapped reports that the search wrapped.
func (a *Adapter) FindNext(query string) (found, wrapped bool, err error) {
	if query == "" {
		return false, false, ErrEmptyQuery
	}
	s, err := findreplace.New(query)
	if err != nil {
		return false, false, err
	}

	from := 0
	if sel, ok := a.w.Selection(); ok {
		from = sel.Index + sel.Length
	}
	span, found, wrapped := s.FindFrom(a.w.Content().Text, from)
	if !found {
		return false, false, nil
	}
	a.w.Select(span.Start, span.End-span.Start)
	return true, wrapped, nil
}

// ReplaceCurrent replaces the selected occurrence and advances to the next
// one. When the selection does not match the query it only advances.
func (a *Adapter) ReplaceCurrent(query, repl string) (replaced bool, err error) {
	if query == "" {
		return false, ErrEmptyQuery
	}

	if sel, ok := a.w.Selection(); ok && sel.Length > 0 {
		text := []rune(a.w.Content().Text)
		if sel.Index+sel.Length <= len(text) && string(text[sel.Index:sel.Index+sel.Length]) == query {
			a.w.DeleteText(sel.Index, sel.Length)
			a.w.InsertText(sel.Index, repl, nil)
			a.w.Select(sel.Index+len([]rune(repl)), 0)
			replaced = true
		}
	}

	_, _, err = a.FindNext(query)
	return replaced, err
}

// ReplaceAll replaces every occurrence in the document, editing in place so
// surrounding formatting survives, and reports the replacement count.
func (a *Adapter) ReplaceAll(query, repl string) (int, error) {
	if query == "" {
		return 0, ErrEmptyQuery
	}
	s, err := findreplace.New(query)
	if err != nil {
		return 0, err
	}

	spans := s.FindAll(a.w.Content().Text)
	// Back to front keeps earlier offsets valid while editing.
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		a.w.DeleteText(sp.Start, sp.End-sp.Start)
		a.w.InsertText(sp.Start, repl, nil)
	}
	return len(spans), nil
}

// cursor returns the insertion point, end of document when the widget has no
// selection.
func (a *Adapter) cursor() int {
	if sel, ok := a.w.Selection(); ok {
		return sel.Index
	}
	return len([]rune(a.w.Content().Text))
}
