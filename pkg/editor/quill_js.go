//go:build js && wasm

package editor

import (
	"encoding/json"
	"errors"
	"strings"
	"syscall/js"
)

// QuillWidget implements Widget over a Quill instance created by the host
// page. Quill addresses content in UTF-16 code units; Vietnamese and Khmer
// are BMP scripts, so those indices coincide with the rune offsets used
// elsewhere.
type QuillWidget struct {
	q         js.Value
	callbacks []js.Func
}

// BindGlobalQuill attaches to the Quill instance the page exposes as
// window.quill. The page constructs the editor before loading the wasm
// module; a missing instance means the bootstrap order is broken.
func BindGlobalQuill() (*QuillWidget, error) {
	q := js.Global().Get("quill")
	if !q.Truthy() {
		return nil, errors.New("window.quill is not set")
	}
	return &QuillWidget{q: q}, nil
}

func (w *QuillWidget) Content() Content {
	contents := w.q.Call("getContents")
	delta := js.Global().Get("JSON").Call("stringify", contents).String()

	text := w.q.Call("getText").String()
	// Quill keeps a trailing newline even when empty.
	text = strings.TrimSuffix(text, "\n")

	return Content{
		Delta: json.RawMessage(delta),
		HTML:  w.q.Get("root").Get("innerHTML").String(),
		Text:  text,
	}
}

func (w *QuillWidget) SetDelta(delta json.RawMessage) {
	if len(delta) == 0 {
		w.Clear()
		return
	}
	parsed := js.Global().Get("JSON").Call("parse", string(delta))
	w.q.Call("setContents", parsed)
}

func (w *QuillWidget) Clear() {
	w.q.Call("setText", "")
}

func (w *QuillWidget) Selection() (Selection, bool) {
	sel := w.q.Call("getSelection")
	if !sel.Truthy() {
		return Selection{}, false
	}
	return Selection{
		Index:  sel.Get("index").Int(),
		Length: sel.Get("length").Int(),
	}, true
}

func (w *QuillWidget) Select(index, length int) {
	w.q.Call("setSelection", index, length)
}

func (w *QuillWidget) ApplyFormat(name string, value interface{}) {
	if value == nil {
		w.q.Call("format", name, false)
		return
	}
	w.q.Call("format", name, js.ValueOf(value))
}

func (w *QuillWidget) CurrentFormat() map[string]interface{} {
	format := w.q.Call("getFormat")
	out := map[string]interface{}{}
	if !format.Truthy() {
		return out
	}
	keys := js.Global().Get("Object").Call("keys", format)
	for i := 0; i < keys.Length(); i++ {
		key := keys.Index(i).String()
		v := format.Get(key)
		switch v.Type() {
		case js.TypeBoolean:
			out[key] = v.Bool()
		case js.TypeNumber:
			out[key] = v.Float()
		case js.TypeString:
			out[key] = v.String()
		}
	}
	return out
}

func (w *QuillWidget) InsertText(index int, text string, attrs map[string]interface{}) {
	if attrs == nil {
		w.q.Call("insertText", index, text)
		return
	}
	w.q.Call("insertText", index, text, js.ValueOf(attrs))
}

func (w *QuillWidget) DeleteText(index, length int) {
	w.q.Call("deleteText", index, length)
}

func (w *QuillWidget) InsertHTML(index int, html string) {
	w.q.Get("clipboard").Call("dangerouslyPasteHTML", index, html)
}

func (w *QuillWidget) InsertEmbed(index int, kind, value string) {
	w.q.Call("insertEmbed", index, kind, value)
}

func (w *QuillWidget) Focus() {
	w.q.Call("focus")
}

// OnTextChange registers fn for the widget's text-change event. Released by
// Release.
func (w *QuillWidget) OnTextChange(fn func()) {
	cb := js.FuncOf(func(js.Value, []js.Value) interface{} {
		fn()
		return nil
	})
	w.callbacks = append(w.callbacks, cb)
	w.q.Call("on", "text-change", cb)
}

// Release frees the registered event callbacks.
func (w *QuillWidget) Release() {
	for _, cb := range w.callbacks {
		cb.Release()
	}
	w.callbacks = nil
}
