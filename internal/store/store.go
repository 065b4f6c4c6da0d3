package store

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// quotaBytes is the assumed localStorage budget. Browsers do not expose the
// real limit, so the usual 5MB floor stands in for it.
const quotaBytes = 5 * 1024 * 1024

// quotaWarnBytes is the level at which saves start warning. Writes are never
// refused below the real quota; the browser itself enforces that.
const quotaWarnBytes = quotaBytes * 9 / 10

const untitledFallback = "Untitled Document"

// NoticeLevel grades user-facing notifications emitted by the store.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notifier receives user-facing notices. The key is a translation-table key;
// rendering and localization happen in the shell.
type Notifier interface {
	Notify(level NoticeLevel, key string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(NoticeLevel, string) {}

// Store persists documents and settings through a Backend.
type Store struct {
	backend Backend
	notify  Notifier
	log     *zap.Logger
	now     func() time.Time
	newID   func(time.Time) string
}

// New builds a store over the given backend. A nil notifier or logger is
// replaced with a no-op.
func New(backend Backend, notify Notifier, log *zap.Logger) *Store {
	if notify == nil {
		notify = nopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		backend: backend,
		notify:  notify,
		log:     log,
		now:     time.Now,
		newID:   NewDocumentID,
	}
}

// SetClock overrides the time source, for tests.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// SetIDFunc overrides id generation, for tests.
func (s *Store) SetIDFunc(f func(time.Time) string) { s.newID = f }

// NewID returns a fresh document id stamped with the current time.
func (s *Store) NewID() string { return s.newID(s.now()) }

// loadDocs reads the document mapping. A missing key yields an empty map. A
// corrupt payload is logged and yields an empty map under StatusCorrupt, so
// bulk reads stay fail-soft while single lookups can report what happened.
func (s *Store) loadDocs() (map[string]Document, Status) {
	raw, ok, err := s.backend.Get(DocumentsKey)
	if err != nil {
		s.log.Error("read documents", zap.Error(err))
		return map[string]Document{}, StatusUnavailable
	}
	if !ok || raw == "" {
		return map[string]Document{}, StatusOK
	}

	docs := map[string]Document{}
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		s.log.Warn("documents payload corrupt, starting empty", zap.Error(err))
		return map[string]Document{}, StatusCorrupt
	}
	return docs, StatusOK
}

func (s *Store) writeDocs(docs map[string]Document) Status {
	blob, err := json.Marshal(docs)
	if err != nil {
		s.log.Error("marshal documents", zap.Error(err))
		return StatusInvalid
	}

	if len(blob) >= quotaWarnBytes {
		s.notify.Notify(NoticeWarning, "storageWarning")
	}

	if err := s.backend.Set(DocumentsKey, string(blob)); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			s.notify.Notify(NoticeError, "storageQuotaExceeded")
			return StatusQuotaExceeded
		}
		s.log.Error("write documents", zap.Error(err))
		return StatusUnavailable
	}
	return StatusOK
}

// GetAll returns the full document mapping. It never fails; an unreadable
// store reads as empty.
func (s *Store) GetAll() map[string]Document {
	docs, _ := s.loadDocs()
	return docs
}

// Get looks up one document.
func (s *Store) Get(id string) (Document, Status) {
	docs, st := s.loadDocs()
	if st != StatusOK {
		return Document{}, st
	}
	doc, ok := docs[id]
	if !ok {
		return Document{}, StatusNotFound
	}
	return doc, StatusOK
}

// Save applies a patch to the document, creating it if the id is unknown.
// Creation stamps createdAt; every save stamps lastModified.
func (s *Store) Save(id string, p Patch) Status {
	if id == "" {
		return StatusInvalid
	}

	// Writing over a corrupt payload starts from empty and replaces it.
	docs, st := s.loadDocs()
	if st != StatusOK && st != StatusCorrupt {
		return st
	}

	now := FormatTime(s.now())
	doc, exists := docs[id]
	if !exists {
		doc = Document{ID: id, Title: untitledFallback, CreatedAt: now}
	}
	if p.Title != nil {
		doc.Title = *p.Title
		if doc.Title == "" {
			doc.Title = untitledFallback
		}
	}
	if p.Content != nil {
		doc.Content = p.Content
	}
	if p.HTML != nil {
		doc.HTML = *p.HTML
	}
	doc.LastModified = now
	docs[id] = doc

	return s.writeDocs(docs)
}

// Delete removes the document.
func (s *Store) Delete(id string) Status {
	docs, st := s.loadDocs()
	if st != StatusOK && st != StatusCorrupt {
		return st
	}
	if _, ok := docs[id]; !ok {
		return StatusNotFound
	}
	delete(docs, id)
	return s.writeDocs(docs)
}

// Duplicate copies a document under a fresh id. The copy's title appends the
// localized suffix in parentheses, and both timestamps are reset to now.
func (s *Store) Duplicate(id, copySuffix string) (string, Status) {
	docs, st := s.loadDocs()
	if st != StatusOK {
		return "", st
	}
	src, ok := docs[id]
	if !ok {
		return "", StatusNotFound
	}

	now := s.now()
	stamp := FormatTime(now)
	dup := Document{
		ID:           s.newID(now),
		Title:        src.Title + " (" + copySuffix + ")",
		Content:      src.Content,
		HTML:         src.HTML,
		CreatedAt:    stamp,
		LastModified: stamp,
	}
	docs[dup.ID] = dup

	if st := s.writeDocs(docs); st != StatusOK {
		return "", st
	}
	return dup.ID, StatusOK
}

// ListSorted returns all documents, most recently modified first.
func (s *Store) ListSorted() []Document {
	docs, _ := s.loadDocs()
	list := make([]Document, 0, len(docs))
	for _, d := range docs {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		ti := ParseTime(list[i].LastModified)
		tj := ParseTime(list[j].LastModified)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// Search matches the query case-insensitively against titles only; body text
// is the content index's job. A blank query returns the full sorted listing.
func (s *Store) Search(query string) []Document {
	all := s.ListSorted()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	matched := make([]Document, 0, len(all))
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.Title), q) {
			matched = append(matched, d)
		}
	}
	return matched
}

// ClearAll removes every document. Settings are kept.
func (s *Store) ClearAll() Status {
	if err := s.backend.Remove(DocumentsKey); err != nil {
		s.log.Error("clear documents", zap.Error(err))
		return StatusUnavailable
	}
	return StatusOK
}

// UsageInfo reports the serialized size of the document mapping and the
// document count. Settings are not counted.
func (s *Store) UsageInfo() Usage {
	var u Usage
	docs, _ := s.loadDocs()
	u.DocumentCount = len(docs)

	if raw, ok, err := s.backend.Get(DocumentsKey); err == nil && ok {
		u.Bytes = len(raw)
	}
	return u
}

// QuotaBytes returns the assumed storage budget.
func (s *Store) QuotaBytes() int { return quotaBytes }

// GetSettings reads the settings record, falling back to defaults when the
// record is absent or unparseable.
func (s *Store) GetSettings() Settings {
	raw, ok, err := s.backend.Get(SettingsKey)
	if err != nil || !ok || raw == "" {
		return DefaultSettings()
	}
	cfg := DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		s.log.Warn("settings payload corrupt, using defaults", zap.Error(err))
		return DefaultSettings()
	}
	return cfg
}

// SaveSettings persists the settings record.
func (s *Store) SaveSettings(cfg Settings) Status {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return StatusInvalid
	}
	if err := s.backend.Set(SettingsKey, string(blob)); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			return StatusQuotaExceeded
		}
		s.log.Error("write settings", zap.Error(err))
		return StatusUnavailable
	}
	return StatusOK
}

// GetLanguage reads the stored UI language preference, empty when unset.
func (s *Store) GetLanguage() string {
	raw, ok, err := s.backend.Get(LanguageKey)
	if err != nil || !ok {
		return ""
	}
	return raw
}

// SetLanguage persists the UI language preference.
func (s *Store) SetLanguage(lang string) Status {
	if err := s.backend.Set(LanguageKey, lang); err != nil {
		return StatusUnavailable
	}
	return StatusOK
}

// ExportDocumentJSON serializes one document for download.
func (s *Store) ExportDocumentJSON(id string) ([]byte, Status) {
	doc, st := s.Get(id)
	if st != StatusOK {
		return nil, st
	}
	blob, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, StatusInvalid
	}
	return blob, StatusOK
}

// ImportDocumentJSON creates a new document from an exported payload. The
// imported record gets a fresh id and fresh timestamps so it cannot collide
// with or masquerade as an existing document.
func (s *Store) ImportDocumentJSON(data []byte) (string, Status) {
	var in struct {
		Title   string          `json:"title"`
		Content json.RawMessage `json:"content"`
		HTML    string          `json:"html"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return "", StatusInvalid
	}
	if in.Title == "" {
		in.Title = "Imported Document"
	}

	id := s.NewID()
	st := s.Save(id, Patch{Title: &in.Title, Content: in.Content, HTML: &in.HTML})
	if st != StatusOK {
		return "", st
	}
	return id, StatusOK
}

// BackupAll serializes every document into a versioned envelope.
func (s *Store) BackupAll() ([]byte, Status) {
	docs, st := s.loadDocs()
	if st != StatusOK {
		return nil, st
	}
	env := Backup{
		Version:   BackupVersion,
		Timestamp: FormatTime(s.now()),
		Documents: docs,
	}
	blob, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, StatusInvalid
	}
	return blob, StatusOK
}

// Restore replaces the entire document mapping with the envelope's contents.
func (s *Store) Restore(data []byte) Status {
	var env Backup
	if err := json.Unmarshal(data, &env); err != nil {
		return StatusInvalid
	}
	if env.Documents == nil {
		return StatusInvalid
	}
	return s.writeDocs(env.Documents)
}

