// Package i18n provides the Vietnamese/Khmer string tables and locale
// negotiation for VKEdit. Lookup falls back to Vietnamese, the app's
// default language.
package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLanguage is the fallback for missing translations and unknown
// locale preferences.
const DefaultLanguage = "vi"

// supported holds the app languages in priority order. The matcher's first
// tag doubles as the fallback.
var supported = []language.Tag{
	language.Vietnamese,
	language.Khmer,
}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys for the active language.
type Translator struct {
	lang   string
	tables map[string]map[string]string
}

// New creates a Translator starting in the default language.
func New() *Translator {
	return &Translator{
		lang: DefaultLanguage,
		tables: map[string]map[string]string{
			"vi": tableVI,
			"km": tableKM,
		},
	}
}

// Language returns the active language code ("vi" or "km").
func (t *Translator) Language() string {
	return t.lang
}

// SetLanguage switches the active language. Unknown codes are rejected so a
// corrupt stored preference cannot blank the UI.
func (t *Translator) SetLanguage(lang string) bool {
	if _, ok := t.tables[lang]; !ok {
		return false
	}
	t.lang = lang
	return true
}

// Match picks the best supported language for a list of BCP 47 preferences
// (e.g. navigator.languages). Falls back to Vietnamese.
func Match(prefs ...string) string {
	if len(prefs) == 0 {
		return DefaultLanguage
	}
	_, index := language.MatchStrings(matcher, prefs...)
	if index == 1 {
		return "km"
	}
	return DefaultLanguage
}

// T returns the translation for key in the active language, falling back to
// Vietnamese, then to the key itself so missing entries stay visible.
func (t *Translator) T(key string) string {
	if s, ok := t.tables[t.lang][key]; ok {
		return s
	}
	if s, ok := t.tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// DefaultTitle builds the "untitled + date" title for new documents.
func (t *Translator) DefaultTitle(now time.Time) string {
	return t.T("untitledDocument") + " " + now.Format("02/01/2006")
}

// RelativeTime renders a document timestamp the way the sidebar shows it:
// just now, N minutes/hours/days ago, then a plain date.
func (t *Translator) RelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return t.T("justNow")
	case diff < time.Hour:
		return fmt.Sprintf("%d %s", int(diff.Minutes()), t.T("minutesAgo"))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d %s", int(diff.Hours()), t.T("hoursAgo"))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d %s", int(diff.Hours()/24), t.T("daysAgo"))
	default:
		return ts.Format("02/01/2006")
	}
}
