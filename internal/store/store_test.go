package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	levels []NoticeLevel
	keys   []string
}

func (c *captureNotifier) Notify(level NoticeLevel, key string) {
	c.levels = append(c.levels, level)
	c.keys = append(c.keys, key)
}

// testStore builds a store over a memory backend with a deterministic clock
// that advances one second per call and sequential ids.
func testStore(t *testing.T) (*Store, *MemoryBackend, *captureNotifier) {
	t.Helper()
	backend := NewMemoryBackend()
	notes := &captureNotifier{}
	s := New(backend, notes, nil)

	base := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})
	seq := 0
	s.SetIDFunc(func(time.Time) string {
		seq++
		return "doc_" + strings.Repeat("0", seq) // doc_0, doc_00, ...
	})
	return s, backend, notes
}

func str(s string) *string { return &s }

func TestSaveCreatesAndUpdates(t *testing.T) {
	s, _, _ := testStore(t)

	id := s.NewID()
	st := s.Save(id, Patch{
		Title:   str("Ghi chú"),
		Content: json.RawMessage(`{"ops":[{"insert":"xin chào\n"}]}`),
		HTML:    str("<p>xin chào</p>"),
	})
	require.True(t, st.OK())

	doc, st := s.Get(id)
	require.True(t, st.OK())
	assert.Equal(t, "Ghi chú", doc.Title)
	assert.Equal(t, "<p>xin chào</p>", doc.HTML)
	assert.NotEmpty(t, doc.CreatedAt)
	assert.Equal(t, doc.CreatedAt, doc.LastModified)

	// Partial save: only the title changes, content survives.
	st = s.Save(id, Patch{Title: str("Đổi tên")})
	require.True(t, st.OK())

	doc2, _ := s.Get(id)
	assert.Equal(t, "Đổi tên", doc2.Title)
	assert.JSONEq(t, `{"ops":[{"insert":"xin chào\n"}]}`, string(doc2.Content))
	assert.Equal(t, doc.CreatedAt, doc2.CreatedAt)
	assert.NotEqual(t, doc.LastModified, doc2.LastModified)
}

func TestSaveEmptyTitleFallsBack(t *testing.T) {
	s, _, _ := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{Title: str("")}).OK())

	doc, _ := s.Get(id)
	assert.Equal(t, untitledFallback, doc.Title)
}

func TestTimestampFormat(t *testing.T) {
	s, _, _ := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{Title: str("x")}).OK())

	doc, _ := s.Get(id)
	// ISO 8601 with milliseconds and a Z suffix, as the web app wrote.
	assert.Equal(t, "2025-03-09T10:00:02.000Z", doc.CreatedAt)
}

func TestGetMissing(t *testing.T) {
	s, _, _ := testStore(t)
	_, st := s.Get("doc_nope")
	assert.Equal(t, StatusNotFound, st)
}

func TestDelete(t *testing.T) {
	s, _, _ := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{Title: str("x")}).OK())

	assert.Equal(t, StatusOK, s.Delete(id))
	assert.Equal(t, StatusNotFound, s.Delete(id))
	_, st := s.Get(id)
	assert.Equal(t, StatusNotFound, st)
}

func TestDuplicate(t *testing.T) {
	s, _, _ := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{Title: str("Báo cáo"), HTML: str("<p>a</p>")}).OK())

	dupID, st := s.Duplicate(id, "Bản sao")
	require.True(t, st.OK())
	require.NotEqual(t, id, dupID)

	dup, _ := s.Get(dupID)
	assert.Equal(t, "Báo cáo (Bản sao)", dup.Title)
	assert.Equal(t, "<p>a</p>", dup.HTML)

	orig, _ := s.Get(id)
	assert.NotEqual(t, orig.CreatedAt, dup.CreatedAt)
}

func TestDuplicateMissing(t *testing.T) {
	s, _, _ := testStore(t)
	_, st := s.Duplicate("doc_nope", "Copy")
	assert.Equal(t, StatusNotFound, st)
}

func TestListSortedNewestFirst(t *testing.T) {
	s, _, _ := testStore(t)

	a := s.NewID()
	require.True(t, s.Save(a, Patch{Title: str("first")}).OK())
	b := s.NewID()
	require.True(t, s.Save(b, Patch{Title: str("second")}).OK())

	// Touching the older document moves it to the front.
	require.True(t, s.Save(a, Patch{Title: str("first touched")}).OK())

	list := s.ListSorted()
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].ID)
	assert.Equal(t, b, list[1].ID)
}

func TestSearch(t *testing.T) {
	s, _, _ := testStore(t)

	a := s.NewID()
	require.True(t, s.Save(a, Patch{Title: str("Kế hoạch quý"), HTML: str("<p>doanh thu</p>")}).OK())
	b := s.NewID()
	require.True(t, s.Save(b, Patch{Title: str("Nhật ký"), HTML: str("<p>chuyến đi Siem Reap</p>")}).OK())

	byTitle := s.Search("kế hoạch")
	require.Len(t, byTitle, 1)
	assert.Equal(t, a, byTitle[0].ID)

	assert.Len(t, s.Search("nhật"), 1)

	// Body text is out of scope here; the content index covers it.
	assert.Empty(t, s.Search("siem reap"))

	// Blank query returns the full listing.
	assert.Len(t, s.Search("   "), 2)
}

func TestCorruptPayloadReadsEmpty(t *testing.T) {
	s, backend, _ := testStore(t)
	require.NoError(t, backend.Set(DocumentsKey, "{not json"))

	assert.Empty(t, s.GetAll())

	// Single lookups report the corruption instead of a plain miss.
	_, st := s.Get("doc_x")
	assert.Equal(t, StatusCorrupt, st)

	// Writes still work afterwards, replacing the corrupt payload.
	id := s.NewID()
	assert.True(t, s.Save(id, Patch{Title: str("x")}).OK())
	_, st = s.Get(id)
	assert.Equal(t, StatusOK, st)
}

func TestBackendUnavailable(t *testing.T) {
	s, backend, _ := testStore(t)
	backend.Err = assert.AnError

	assert.Empty(t, s.GetAll())
	assert.Equal(t, StatusUnavailable, s.Save("doc_x", Patch{Title: str("x")}))
	_, st := s.Get("doc_x")
	assert.Equal(t, StatusUnavailable, st)
}

func TestQuotaExceededMapsToStatus(t *testing.T) {
	s, backend, notes := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{Title: str("x")}).OK())

	backend.Err = ErrQuotaExceeded
	assert.Equal(t, StatusUnavailable, s.Save(id, Patch{Title: str("y")}))

	// Quota mapping requires the read to succeed and only the write to fail;
	// simulate with a backend whose Set alone fails.
	qb := &quotaBackend{MemoryBackend: NewMemoryBackend()}
	s2 := New(qb, notes, nil)
	st := s2.Save("doc_q", Patch{Title: str("x")})
	assert.Equal(t, StatusQuotaExceeded, st)
	assert.Contains(t, notes.keys, "storageQuotaExceeded")
}

type quotaBackend struct {
	*MemoryBackend
}

func (b *quotaBackend) Set(string, string) error { return ErrQuotaExceeded }

func TestUsageInfo(t *testing.T) {
	s, backend, _ := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{Title: str("x"), HTML: str("<p>hello</p>")}).OK())

	raw, ok, err := backend.Get(DocumentsKey)
	require.NoError(t, err)
	require.True(t, ok)

	u := s.UsageInfo()
	assert.Equal(t, 1, u.DocumentCount)
	assert.Equal(t, len(raw), u.Bytes)

	// Settings do not count against the documents figure.
	require.True(t, s.SaveSettings(DefaultSettings()).OK())
	assert.Equal(t, len(raw), s.UsageInfo().Bytes)

	assert.Equal(t, 5*1024*1024, s.QuotaBytes())
}

func TestClearAll(t *testing.T) {
	s, _, _ := testStore(t)
	require.True(t, s.Save(s.NewID(), Patch{Title: str("x")}).OK())
	require.True(t, s.SaveSettings(DefaultSettings()).OK())

	assert.Equal(t, StatusOK, s.ClearAll())
	assert.Empty(t, s.GetAll())
	// Settings survive a document wipe.
	assert.Equal(t, DefaultSettings(), s.GetSettings())
}

func TestSettingsRoundTrip(t *testing.T) {
	s, _, _ := testStore(t)

	assert.Equal(t, DefaultSettings(), s.GetSettings())

	cfg := DefaultSettings()
	cfg.Language = "km"
	cfg.DarkMode = true
	cfg.AutoSaveInterval = 60000
	require.True(t, s.SaveSettings(cfg).OK())
	assert.Equal(t, cfg, s.GetSettings())
}

func TestSettingsCorruptFallsBack(t *testing.T) {
	s, backend, _ := testStore(t)
	require.NoError(t, backend.Set(SettingsKey, "??"))
	assert.Equal(t, DefaultSettings(), s.GetSettings())
}

func TestLanguagePreference(t *testing.T) {
	s, _, _ := testStore(t)
	assert.Equal(t, "", s.GetLanguage())
	require.True(t, s.SetLanguage("km").OK())
	assert.Equal(t, "km", s.GetLanguage())
}

func TestExportImportDocument(t *testing.T) {
	s, _, _ := testStore(t)
	id := s.NewID()
	require.True(t, s.Save(id, Patch{
		Title:   str("Xuất thử"),
		Content: json.RawMessage(`{"ops":[]}`),
		HTML:    str("<p></p>"),
	}).OK())

	blob, st := s.ExportDocumentJSON(id)
	require.True(t, st.OK())

	newID, st := s.ImportDocumentJSON(blob)
	require.True(t, st.OK())
	require.NotEqual(t, id, newID)

	imported, _ := s.Get(newID)
	assert.Equal(t, "Xuất thử", imported.Title)

	// Imported timestamps are fresh, not the original's.
	orig, _ := s.Get(id)
	assert.NotEqual(t, orig.CreatedAt, imported.CreatedAt)
}

func TestImportRejectsGarbage(t *testing.T) {
	s, _, _ := testStore(t)
	_, st := s.ImportDocumentJSON([]byte("not json"))
	assert.Equal(t, StatusInvalid, st)
}

func TestImportDefaultsTitle(t *testing.T) {
	s, _, _ := testStore(t)
	id, st := s.ImportDocumentJSON([]byte(`{"html":"<p>x</p>"}`))
	require.True(t, st.OK())
	doc, _ := s.Get(id)
	assert.Equal(t, "Imported Document", doc.Title)
}

func TestBackupRestore(t *testing.T) {
	s, _, _ := testStore(t)
	a := s.NewID()
	require.True(t, s.Save(a, Patch{Title: str("một")}).OK())
	b := s.NewID()
	require.True(t, s.Save(b, Patch{Title: str("hai")}).OK())

	blob, st := s.BackupAll()
	require.True(t, st.OK())

	var env Backup
	require.NoError(t, json.Unmarshal(blob, &env))
	assert.Equal(t, BackupVersion, env.Version)
	assert.Len(t, env.Documents, 2)
	assert.NotEmpty(t, env.Timestamp)

	// Restore replaces the mapping wholesale.
	require.True(t, s.Delete(a).OK())
	require.True(t, s.Save(s.NewID(), Patch{Title: str("kẻ lạ")}).OK())

	require.Equal(t, StatusOK, s.Restore(blob))
	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "một", all[a].Title)
	assert.Equal(t, "hai", all[b].Title)
}

func TestRestoreRejectsInvalid(t *testing.T) {
	s, _, _ := testStore(t)
	assert.Equal(t, StatusInvalid, s.Restore([]byte("nope")))
	assert.Equal(t, StatusInvalid, s.Restore([]byte(`{"version":"1.0"}`)))
}

