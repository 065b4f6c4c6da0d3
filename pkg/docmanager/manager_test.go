package docmanager

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/vietkhmer/vkedit/internal/index"
	"github.com/vietkhmer/vkedit/internal/store"
	"github.com/vietkhmer/vkedit/pkg/editor"
	"github.com/vietkhmer/vkedit/pkg/i18n"
)

type fakeEditor struct {
	content editor.Content
	cleared int
}

func (f *fakeEditor) GetContent() editor.Content  { return f.content }
func (f *fakeEditor) SetContent(c editor.Content) { f.content = c }
func (f *fakeEditor) Clear()                      { f.content = editor.Content{}; f.cleared++ }

type fakeConfirm struct{ answer bool }

func (f fakeConfirm) Confirm(string) bool { return f.answer }

type fakeNotify struct{ keys []string }

func (f *fakeNotify) Notify(_ store.NoticeLevel, key string) { f.keys = append(f.keys, key) }

func testManager(t *testing.T) (*Manager, *store.Store, *fakeEditor, *fakeNotify) {
	t.Helper()

	st := store.New(store.NewMemoryBackend(), nil, nil)
	base := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	st.SetClock(clock)

	ix, err := index.New()
	if err != nil {
		t.Fatalf("index.New: %v", err)
	}
	t.Cleanup(func() { ix.Close() })

	ed := &fakeEditor{}
	notes := &fakeNotify{}
	m := New(st, ix, ed, i18n.New(), notes, fakeConfirm{answer: true}, nil)
	m.SetClock(clock)
	return m, st, ed, notes
}

func TestInitEmptyStoreCreatesDocument(t *testing.T) {
	m, st, ed, _ := testManager(t)

	id := m.Init()
	if id == "" {
		t.Fatal("no document created")
	}
	if m.CurrentID() != id {
		t.Errorf("CurrentID = %q, want %q", m.CurrentID(), id)
	}
	if ed.cleared != 1 {
		t.Errorf("editor cleared %d times", ed.cleared)
	}

	doc, status := st.Get(id)
	if !status.OK() {
		t.Fatalf("Get: %v", status)
	}
	// Dated default title in the UI language.
	want := "Tài liệu chưa có tên 09/03/2025"
	if doc.Title != want {
		t.Errorf("title = %q, want %q", doc.Title, want)
	}
}

func TestInitOpensMostRecent(t *testing.T) {
	m, st, ed, _ := testManager(t)

	older := st.NewID()
	title := "older"
	st.Save(older, store.Patch{Title: &title})
	newer := st.NewID()
	title2 := "newer"
	html := "<p>body</p>"
	st.Save(newer, store.Patch{Title: &title2, HTML: &html})

	id := m.Init()
	if id != newer {
		t.Errorf("opened %q, want %q", id, newer)
	}
	if ed.content.HTML != "<p>body</p>" {
		t.Errorf("editor content = %q", ed.content.HTML)
	}
}

func TestSaveCurrentSnapshotsEditor(t *testing.T) {
	m, st, ed, _ := testManager(t)
	id := m.Init()

	ed.content = editor.Content{
		Delta: json.RawMessage(`{"ops":[{"insert":"xin chào\n"}]}`),
		HTML:  "<p>xin chào</p>",
		Text:  "xin chào",
	}
	if status := m.SaveCurrent("Thư nháp"); !status.OK() {
		t.Fatalf("SaveCurrent: %v", status)
	}

	doc, _ := st.Get(id)
	if doc.Title != "Thư nháp" || doc.HTML != "<p>xin chào</p>" {
		t.Errorf("doc = %+v", doc)
	}

	// The save is immediately findable by content.
	hits := m.SearchContent("chào", 10)
	if len(hits) != 1 || hits[0].ID != id {
		t.Errorf("hits = %v", hits)
	}
}

func TestLoadPersistsCurrentFirst(t *testing.T) {
	m, st, ed, _ := testManager(t)
	first := m.Init()

	ed.content = editor.Content{HTML: "<p>chưa lưu</p>", Text: "chưa lưu"}
	second := m.CreateNew()
	if second == first {
		t.Fatal("CreateNew reused id")
	}

	// The unsaved body of the first document was persisted on switch.
	doc, _ := st.Get(first)
	if doc.HTML != "<p>chưa lưu</p>" {
		t.Errorf("first doc HTML = %q", doc.HTML)
	}

	// Loading back restores the body.
	if status := m.Load(first); !status.OK() {
		t.Fatalf("Load: %v", status)
	}
	if ed.content.HTML != "<p>chưa lưu</p>" {
		t.Errorf("editor = %q", ed.content.HTML)
	}
}

func TestLoadMissing(t *testing.T) {
	m, _, _, notes := testManager(t)
	m.Init()

	if status := m.Load("doc_nope"); status != store.StatusNotFound {
		t.Errorf("status = %v", status)
	}
	found := false
	for _, k := range notes.keys {
		if k == "documentNotFound" {
			found = true
		}
	}
	if !found {
		t.Errorf("no notification, got %v", notes.keys)
	}
}

func TestDeleteCurrentFallsBack(t *testing.T) {
	m, st, _, _ := testManager(t)
	first := m.Init()
	second := m.CreateNew()

	if status := m.Delete(second); !status.OK() {
		t.Fatalf("Delete: %v", status)
	}
	if m.CurrentID() != first {
		t.Errorf("fell back to %q, want %q", m.CurrentID(), first)
	}

	// Deleting the last document starts a fresh one.
	if status := m.Delete(first); !status.OK() {
		t.Fatalf("Delete: %v", status)
	}
	if m.CurrentID() == "" || m.CurrentID() == first {
		t.Errorf("CurrentID = %q", m.CurrentID())
	}
	if len(st.GetAll()) != 1 {
		t.Errorf("store has %d documents", len(st.GetAll()))
	}
}

func TestDeleteDeclined(t *testing.T) {
	m, st, ed, _ := testManager(t)
	id := m.Init()

	declined := New(st, nil, ed, i18n.New(), nil, fakeConfirm{answer: false}, nil)
	if status := declined.Delete(id); !status.OK() {
		t.Fatalf("Delete: %v", status)
	}
	if _, status := st.Get(id); !status.OK() {
		t.Error("document deleted despite declined confirmation")
	}
}

func TestDuplicate(t *testing.T) {
	m, st, ed, _ := testManager(t)
	id := m.Init()
	ed.content = editor.Content{HTML: "<p>gốc</p>", Text: "gốc"}
	m.SaveCurrent("Gốc")

	dupID, status := m.Duplicate(id)
	if !status.OK() {
		t.Fatalf("Duplicate: %v", status)
	}
	dup, _ := st.Get(dupID)
	if dup.Title != "Gốc (Bản sao)" {
		t.Errorf("title = %q", dup.Title)
	}

	// Both the original and the copy are indexed.
	if hits := m.SearchContent("gốc", 10); len(hits) != 2 {
		t.Errorf("hits = %v", hits)
	}
}

func TestSearchBlankReturnsAll(t *testing.T) {
	m, _, _, _ := testManager(t)
	m.Init()
	m.CreateNew()

	if got := len(m.Search("")); got != 2 {
		t.Errorf("blank search returned %d", got)
	}
	if got := len(m.List()); got != 2 {
		t.Errorf("List returned %d", got)
	}
}

func TestNilIndexDegrades(t *testing.T) {
	st := store.New(store.NewMemoryBackend(), nil, nil)
	m := New(st, nil, &fakeEditor{}, i18n.New(), nil, nil, nil)
	m.Init()

	if hits := m.SearchContent("anything", 10); hits != nil {
		t.Errorf("hits = %v", hits)
	}
}
