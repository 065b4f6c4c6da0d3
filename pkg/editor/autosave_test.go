package editor

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAutosaveDebounceCoalesces(t *testing.T) {
	var saves atomic.Int32
	a := NewAutosave(func() { saves.Add(1) }, 30*time.Millisecond, time.Hour)

	// A burst of edits must produce exactly one save.
	for i := 0; i < 10; i++ {
		a.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	deadline := time.Now().Add(2 * time.Second)
	for saves.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	// Allow any stray timer to fire before counting.
	time.Sleep(60 * time.Millisecond)

	if n := saves.Load(); n != 1 {
		t.Errorf("saves = %d, want 1", n)
	}
}

func TestAutosaveIntervalSavesWhenDirty(t *testing.T) {
	var saves atomic.Int32
	a := NewAutosave(func() { saves.Add(1) }, time.Hour, 20*time.Millisecond)
	a.Start()
	defer a.Stop()

	a.Trigger() // debounce is an hour away; only the ticker can save

	deadline := time.Now().Add(2 * time.Second)
	for saves.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if saves.Load() == 0 {
		t.Fatal("interval save never fired")
	}

	// Once clean, further ticks stay quiet.
	n := saves.Load()
	time.Sleep(80 * time.Millisecond)
	if saves.Load() != n {
		t.Errorf("saved again while clean: %d -> %d", n, saves.Load())
	}
}

func TestAutosaveFlush(t *testing.T) {
	var saves atomic.Int32
	a := NewAutosave(func() { saves.Add(1) }, time.Hour, time.Hour)

	a.Flush()
	if saves.Load() != 0 {
		t.Error("flush saved while clean")
	}

	a.Trigger()
	a.Flush()
	if saves.Load() != 1 {
		t.Errorf("saves = %d, want 1", saves.Load())
	}
}

func TestAutosaveStopCancelsPending(t *testing.T) {
	var saves atomic.Int32
	a := NewAutosave(func() { saves.Add(1) }, 20*time.Millisecond, time.Hour)
	a.Start()

	a.Trigger()
	a.Stop()

	time.Sleep(60 * time.Millisecond)
	if saves.Load() != 0 {
		t.Errorf("save fired after Stop: %d", saves.Load())
	}
}
