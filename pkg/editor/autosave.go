package editor

import (
	"sync"
	"time"
)

// Default autosave timings. The debounce catches a pause in typing; the
// interval is a safety net for long uninterrupted sessions.
const (
	DefaultDebounce = 2 * time.Second
	DefaultInterval = 30 * time.Second
)

// Autosave coalesces content-change events into periodic saves. A change
// schedules a save after the debounce window; an independent ticker saves
// any still-dirty state every interval. Saves only fire while dirty, so an
// idle editor stays quiet.
type Autosave struct {
	save     func()
	debounce time.Duration
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	dirty bool
	done  chan struct{}
}

// NewAutosave builds a stopped autosaver. Non-positive durations fall back
// to the defaults.
func NewAutosave(save func(), debounce, interval time.Duration) *Autosave {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autosave{save: save, debounce: debounce, interval: interval}
}

// Start begins the interval ticker. Calling Start on a running autosaver is
// a no-op.
func (a *Autosave) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done != nil {
		return
	}
	a.done = make(chan struct{})
	go a.loop(a.done)
}

func (a *Autosave) loop(done chan struct{}) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.flushIfDirty()
		case <-done:
			return
		}
	}
}

// Trigger records a content change and (re)schedules the debounced save.
func (a *Autosave) Trigger() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirty = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.debounce, a.flushIfDirty)
}

// Flush saves immediately when dirty, for explicit saves and shutdown.
func (a *Autosave) Flush() {
	a.flushIfDirty()
}

func (a *Autosave) flushIfDirty() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	a.dirty = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	a.save()
}

// Stop halts the ticker and cancels any pending debounced save. Dirty state
// is not flushed; callers that need that call Flush first.
func (a *Autosave) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done != nil {
		close(a.done)
		a.done = nil
	}
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.dirty = false
}
