// Package store provides the localStorage-backed persistence layer of
// VKEdit: a JSON mapping of document id -> record under a single key, plus a
// settings record under another. The rich-text content is an opaque blob
// owned by the editor; the store never inspects it.
package store

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage keys. They match the original web app so existing documents load
// unchanged.
const (
	DocumentsKey = "viet_khmer_documents"
	SettingsKey  = "viet_khmer_settings"
	LanguageKey  = "app_language"
)

// Document is the sole persisted entity.
type Document struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Content      json.RawMessage `json:"content"`
	HTML         string          `json:"html"`
	CreatedAt    string          `json:"createdAt"`
	LastModified string          `json:"lastModified"`
}

// Patch carries the fields of a save. Nil pointers leave the stored value
// untouched.
type Patch struct {
	Title   *string
	Content json.RawMessage
	HTML    *string
}

// Settings is the single global configuration record.
type Settings struct {
	Language         string `json:"language"`
	AutoSave         bool   `json:"autoSave"`
	AutoSaveInterval int    `json:"autoSaveInterval"` // milliseconds
	DefaultFont      string `json:"defaultFont"`
	DefaultFontSize  string `json:"defaultFontSize"`
	DarkMode         bool   `json:"darkMode"`
	CompactToolbar   bool   `json:"compactToolbar"`
}

// DefaultSettings returns the configuration used when nothing is stored or
// the stored record does not parse.
func DefaultSettings() Settings {
	return Settings{
		Language:         "vi",
		AutoSave:         true,
		AutoSaveInterval: 30000,
		DefaultFont:      "Arial",
		DefaultFontSize:  "14px",
	}
}

// Backup is the full-export envelope.
type Backup struct {
	Version   string              `json:"version"`
	Timestamp string              `json:"timestamp"`
	Documents map[string]Document `json:"documents"`
}

// BackupVersion is written into every backup envelope.
const BackupVersion = "1.0"

const idPrefix = "doc_"

// NewDocumentID generates a document id: prefix, creation time in unix
// milliseconds and a short random suffix. Uniqueness is probabilistic, which
// is enough for a single-user, single-device store.
func NewDocumentID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return idPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix
}

// timeLayout matches the JS Date.toISOString format the original records use.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders a timestamp in the stored format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime reads a stored timestamp. Unparseable values sort as the zero
// time instead of failing the whole listing.
func ParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Status classifies the outcome of a store operation. Callers can tell
// "not found" from "storage unavailable" from "quota exceeded" instead of
// getting a collapsed boolean.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusUnavailable
	StatusQuotaExceeded
	StatusCorrupt
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusUnavailable:
		return "unavailable"
	case StatusQuotaExceeded:
		return "quota_exceeded"
	case StatusCorrupt:
		return "corrupt"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// OK reports whether the operation succeeded.
func (s Status) OK() bool { return s == StatusOK }

// Usage summarizes storage consumption.
type Usage struct {
	Bytes         int `json:"bytes"`
	DocumentCount int `json:"documentCount"`
}
