// Package command maps keyboard chords to application commands. The shell
// feeds it key events; handlers are registered per command, so the binding
// table stays separate from what the commands do.
package command

import "strings"

// Command identifies one application action.
type Command int

const (
	None Command = iota
	Save
	NewDocument
	Print
	Find
	Bold
	Italic
	Underline
	Statistics
	InsertLink
	Fullscreen
	CloseOverlay
)

func (c Command) String() string {
	switch c {
	case Save:
		return "save"
	case NewDocument:
		return "new_document"
	case Print:
		return "print"
	case Find:
		return "find"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Statistics:
		return "statistics"
	case InsertLink:
		return "insert_link"
	case Fullscreen:
		return "fullscreen"
	case CloseOverlay:
		return "close_overlay"
	default:
		return "none"
	}
}

// Chord is a normalized key event. Key is the lowercase KeyboardEvent.key
// value; Ctrl covers the platform accelerator (Cmd on macOS).
type Chord struct {
	Key   string
	Ctrl  bool
	Shift bool
}

// bindings is the fixed shortcut table.
var bindings = map[Chord]Command{
	{Key: "s", Ctrl: true}:              Save,
	{Key: "s", Ctrl: true, Shift: true}: Statistics,
	{Key: "n", Ctrl: true}:              NewDocument,
	{Key: "p", Ctrl: true}:              Print,
	{Key: "f", Ctrl: true}:              Find,
	{Key: "b", Ctrl: true}:              Bold,
	{Key: "i", Ctrl: true}:              Italic,
	{Key: "u", Ctrl: true}:              Underline,
	{Key: "k", Ctrl: true}:              InsertLink,
	{Key: "f11"}:                        Fullscreen,
	{Key: "escape"}:                     CloseOverlay,
}

// Lookup resolves a key event to a command, None when unbound.
func Lookup(key string, ctrl, shift bool) Command {
	chord := Chord{Key: strings.ToLower(key), Ctrl: ctrl, Shift: shift}
	if cmd, ok := bindings[chord]; ok {
		return cmd
	}
	// Shift only matters where a shifted binding exists.
	if chord.Shift {
		chord.Shift = false
		if cmd, ok := bindings[chord]; ok {
			return cmd
		}
	}
	return None
}

// Dispatcher routes commands to registered handlers.
type Dispatcher struct {
	handlers map[Command]func()
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Command]func())}
}

// Handle registers the handler for a command, replacing any previous one.
func (d *Dispatcher) Handle(cmd Command, fn func()) {
	d.handlers[cmd] = fn
}

// Dispatch resolves the key event and runs its handler. It reports whether a
// bound command with a handler ran, which tells the shell to suppress the
// browser default.
func (d *Dispatcher) Dispatch(key string, ctrl, shift bool) bool {
	cmd := Lookup(key, ctrl, shift)
	if cmd == None {
		return false
	}
	fn, ok := d.handlers[cmd]
	if !ok {
		return false
	}
	fn()
	return true
}
