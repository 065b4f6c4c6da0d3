package command

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		key         string
		ctrl, shift bool
		want        Command
	}{
		{"s", true, false, Save},
		{"S", true, false, Save}, // browsers report uppercase with shift off for caps lock
		{"s", true, true, Statistics},
		{"n", true, false, NewDocument},
		{"p", true, false, Print},
		{"f", true, false, Find},
		{"b", true, false, Bold},
		{"i", true, false, Italic},
		{"u", true, false, Underline},
		{"k", true, false, InsertLink},
		{"F11", false, false, Fullscreen},
		{"Escape", false, false, CloseOverlay},
		{"s", false, false, None},
		{"x", true, false, None},
		{"Escape", true, false, None},
	}
	for _, c := range cases {
		if got := Lookup(c.key, c.ctrl, c.shift); got != c.want {
			t.Errorf("Lookup(%q, ctrl=%v, shift=%v) = %v, want %v",
				c.key, c.ctrl, c.shift, got, c.want)
		}
	}
}

func TestShiftFallsBack(t *testing.T) {
	// Ctrl+Shift+B has no binding of its own; it falls back to Bold so
	// holding shift does not silently disable formatting shortcuts.
	if got := Lookup("b", true, true); got != Bold {
		t.Errorf("got %v, want Bold", got)
	}
}

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	var ran []Command
	for _, cmd := range []Command{Save, Bold, CloseOverlay} {
		cmd := cmd
		d.Handle(cmd, func() { ran = append(ran, cmd) })
	}

	if !d.Dispatch("s", true, false) {
		t.Error("Save not dispatched")
	}
	if !d.Dispatch("Escape", false, false) {
		t.Error("Escape not dispatched")
	}
	// Bound command without a handler is not consumed.
	if d.Dispatch("p", true, false) {
		t.Error("Print consumed without handler")
	}
	if d.Dispatch("x", true, false) {
		t.Error("unbound chord consumed")
	}

	if len(ran) != 2 || ran[0] != Save || ran[1] != CloseOverlay {
		t.Errorf("ran = %v", ran)
	}
}

func TestCommandStrings(t *testing.T) {
	if Save.String() != "save" || None.String() != "none" {
		t.Error("unexpected command names")
	}
}
