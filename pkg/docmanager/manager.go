// Package docmanager owns the document lifecycle: which document is open,
// creating, loading, deleting and duplicating documents, and keeping the
// search index in step with the store.
package docmanager

import (
	"time"

	"go.uber.org/zap"

	"github.com/vietkhmer/vkedit/internal/index"
	"github.com/vietkhmer/vkedit/internal/store"
	"github.com/vietkhmer/vkedit/pkg/editor"
	"github.com/vietkhmer/vkedit/pkg/i18n"
)

// EditorPort is what the manager needs from the editor adapter.
type EditorPort interface {
	GetContent() editor.Content
	SetContent(editor.Content)
	Clear()
}

// Confirmer asks the user to confirm a destructive action. The key is a
// translation-table key; the shell renders and localizes the prompt.
type Confirmer interface {
	Confirm(key string) bool
}

type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }

// Manager coordinates the store, the search index and the editor.
type Manager struct {
	store   *store.Store
	index   *index.Index
	ed      EditorPort
	tr      *i18n.Translator
	notify  store.Notifier
	confirm Confirmer
	log     *zap.Logger
	now     func() time.Time

	currentID string
}

// New wires a manager. The index may be nil; content search then reports
// no results and everything else still works. Nil notifier, confirmer and
// logger fall back to no-ops (the confirmer confirming everything).
func New(st *store.Store, ix *index.Index, ed EditorPort, tr *i18n.Translator,
	notify store.Notifier, confirm Confirmer, log *zap.Logger) *Manager {
	if notify == nil {
		notify = nopNotifier{}
	}
	if confirm == nil {
		confirm = alwaysConfirm{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:   st,
		index:   ix,
		ed:      ed,
		tr:      tr,
		notify:  notify,
		confirm: confirm,
		log:     log,
		now:     time.Now,
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(store.NoticeLevel, string) {}

// SetClock overrides the time source, for tests.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// CurrentID returns the id of the open document, empty before Init.
func (m *Manager) CurrentID() string { return m.currentID }

// Init opens the most recently modified document, creating a fresh one when
// the store is empty, and rebuilds the search index. It returns the id of
// the open document.
func (m *Manager) Init() string {
	if m.index != nil {
		if err := m.index.Rebuild(m.store.GetAll()); err != nil {
			m.log.Warn("index rebuild failed", zap.Error(err))
		}
	}

	docs := m.store.ListSorted()
	if len(docs) == 0 {
		return m.CreateNew()
	}
	m.open(docs[0])
	return m.currentID
}

// CreateNew persists the open document, then starts a new one with a dated
// default title and an empty body.
func (m *Manager) CreateNew() string {
	m.persistCurrent("")

	id := m.store.NewID()
	title := m.tr.DefaultTitle(m.now())
	st := m.store.Save(id, store.Patch{Title: &title})
	if !st.OK() {
		m.log.Error("create document", zap.String("status", st.String()))
		m.notify.Notify(store.NoticeError, "errorSaving")
		return ""
	}

	m.ed.Clear()
	m.currentID = id
	m.reindex(id)
	m.log.Info("document created", zap.String("id", id))
	return id
}

// SaveCurrent snapshots the editor into the open document under the given
// title. With no document open it creates one first.
func (m *Manager) SaveCurrent(title string) store.Status {
	if m.currentID == "" {
		m.currentID = m.store.NewID()
	}
	if title == "" {
		title = m.tr.DefaultTitle(m.now())
	}

	c := m.ed.GetContent()
	st := m.store.Save(m.currentID, store.Patch{
		Title:   &title,
		Content: c.Delta,
		HTML:    &c.HTML,
	})
	if !st.OK() {
		m.notify.Notify(store.NoticeError, "errorSaving")
		return st
	}
	m.reindex(m.currentID)
	return st
}

// Load persists the open document, then opens the requested one.
func (m *Manager) Load(id string) store.Status {
	if id == m.currentID {
		return store.StatusOK
	}
	m.persistCurrent("")

	doc, st := m.store.Get(id)
	if !st.OK() {
		m.notify.Notify(store.NoticeError, "documentNotFound")
		return st
	}
	m.open(doc)
	return store.StatusOK
}

// Delete removes a document after confirmation. Deleting the open document
// falls back to the most recent remaining one, or to a fresh document when
// none remain.
func (m *Manager) Delete(id string) store.Status {
	if !m.confirm.Confirm("confirmDelete") {
		return store.StatusOK
	}

	st := m.store.Delete(id)
	if !st.OK() {
		return st
	}
	if m.index != nil {
		if err := m.index.Remove(id); err != nil {
			m.log.Warn("index remove failed", zap.Error(err))
		}
	}
	m.notify.Notify(store.NoticeSuccess, "documentDeleted")

	if id == m.currentID {
		m.currentID = ""
		if docs := m.store.ListSorted(); len(docs) > 0 {
			m.open(docs[0])
		} else {
			m.ed.Clear()
			m.CreateNew()
		}
	}
	return store.StatusOK
}

// Duplicate copies a document under a localized "(Copy)" title.
func (m *Manager) Duplicate(id string) (string, store.Status) {
	dupID, st := m.store.Duplicate(id, m.tr.T("copy"))
	if !st.OK() {
		return "", st
	}
	m.reindex(dupID)
	return dupID, st
}

// List returns all documents, most recently modified first.
func (m *Manager) List() []store.Document {
	return m.store.ListSorted()
}

// Search filters the listing by title substring. A blank query returns the
// full listing; body text goes through SearchContent.
func (m *Manager) Search(query string) []store.Document {
	return m.store.Search(query)
}

// SearchContent runs a ranked full-text query over document bodies.
func (m *Manager) SearchContent(query string, limit int) []index.Hit {
	if m.index == nil {
		return nil
	}
	hits, err := m.index.Search(query, limit)
	if err != nil {
		m.log.Warn("content search failed", zap.Error(err))
		return nil
	}
	return hits
}

// open sets a stored document as current and pushes it into the editor.
func (m *Manager) open(doc store.Document) {
	m.currentID = doc.ID
	m.ed.SetContent(editor.Content{Delta: doc.Content, HTML: doc.HTML})
	m.log.Info("document opened", zap.String("id", doc.ID))
}

// persistCurrent saves the open document before switching away, keeping its
// stored title when none is given.
func (m *Manager) persistCurrent(title string) {
	if m.currentID == "" {
		return
	}
	var titlePtr *string
	if title != "" {
		titlePtr = &title
	}
	c := m.ed.GetContent()
	st := m.store.Save(m.currentID, store.Patch{
		Title:   titlePtr,
		Content: c.Delta,
		HTML:    &c.HTML,
	})
	if !st.OK() {
		m.log.Warn("persist before switch failed",
			zap.String("id", m.currentID), zap.String("status", st.String()))
		return
	}
	m.reindex(m.currentID)
}

func (m *Manager) reindex(id string) {
	if m.index == nil {
		return
	}
	if doc, st := m.store.Get(id); st.OK() {
		if err := m.index.Update(doc); err != nil {
			m.log.Warn("index update failed", zap.Error(err))
		}
	}
}
