//go:build js && wasm

package store

import (
	"errors"
	"fmt"
	"syscall/js"
)

// LocalStorageBackend persists through window.localStorage. Exceptions thrown
// by the browser surface as errors, with QuotaExceededError mapped to
// ErrQuotaExceeded.
type LocalStorageBackend struct {
	storage js.Value
}

// NewLocalStorageBackend binds to window.localStorage. It fails when the
// browser blocks storage access, for example in private mode with storage
// disabled.
func NewLocalStorageBackend() (*LocalStorageBackend, error) {
	ls := js.Global().Get("localStorage")
	if !ls.Truthy() {
		return nil, errors.New("localStorage is not available")
	}
	return &LocalStorageBackend{storage: ls}, nil
}

func (b *LocalStorageBackend) Get(key string) (value string, ok bool, err error) {
	defer catchJS(&err)
	item := b.storage.Call("getItem", key)
	if item.IsNull() || item.IsUndefined() {
		return "", false, nil
	}
	return item.String(), true, nil
}

func (b *LocalStorageBackend) Set(key, value string) (err error) {
	defer catchJS(&err)
	b.storage.Call("setItem", key, value)
	return nil
}

func (b *LocalStorageBackend) Remove(key string) (err error) {
	defer catchJS(&err)
	b.storage.Call("removeItem", key)
	return nil
}

// catchJS converts a panicking JS exception into an error return.
func catchJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		name := jsErr.Value.Get("name")
		if name.Type() == js.TypeString && name.String() == "QuotaExceededError" {
			*err = ErrQuotaExceeded
			return
		}
		*err = jsErr
		return
	}
	*err = fmt.Errorf("localStorage: %v", r)
}
