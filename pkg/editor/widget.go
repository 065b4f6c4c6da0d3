// Package editor adapts the rich-text widget to the rest of the app. The
// widget owns the document's visual state; this package translates
// application operations (toggle a format, insert a table, find text) into
// widget calls and snapshots the widget's content for persistence.
package editor

import "encoding/json"

// Content is a full snapshot of the widget state. Delta is the widget's
// native content encoding and is treated as an opaque blob everywhere
// outside the widget itself.
type Content struct {
	Delta json.RawMessage `json:"delta"`
	HTML  string          `json:"html"`
	Text  string          `json:"text"`
}

// Selection is the cursor state in character offsets.
type Selection struct {
	Index  int `json:"index"`
	Length int `json:"length"`
}

// Widget is the rich-text control surface. The browser build implements it
// over Quill; tests use a fake.
type Widget interface {
	// Content snapshots the current document.
	Content() Content
	// SetDelta replaces the document with a previously snapshotted blob.
	SetDelta(delta json.RawMessage)
	// Clear empties the document.
	Clear()

	// Selection reports the cursor, false when the widget has no focus.
	Selection() (Selection, bool)
	// Select moves the cursor, selecting length characters.
	Select(index, length int)

	// ApplyFormat sets a formatting attribute on the current selection.
	// A nil value removes the attribute.
	ApplyFormat(name string, value interface{})
	// CurrentFormat reports the formatting attributes at the cursor.
	CurrentFormat() map[string]interface{}

	// InsertText inserts plain text with optional attributes.
	InsertText(index int, text string, attrs map[string]interface{})
	// DeleteText removes a character range.
	DeleteText(index, length int)
	// InsertHTML pastes an HTML fragment at the given position.
	InsertHTML(index int, html string)
	// InsertEmbed places a non-text leaf such as an image.
	InsertEmbed(index int, kind, value string)

	Focus()
}
