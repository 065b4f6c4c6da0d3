package index

import (
	"strings"
	"testing"

	"github.com/vietkhmer/vkedit/internal/store"
)

func mustIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func doc(id, title, html string) store.Document {
	return store.Document{ID: id, Title: title, HTML: html}
}

func TestSearchRanksAndSnippets(t *testing.T) {
	ix := mustIndex(t)

	err := ix.Rebuild(map[string]store.Document{
		"doc_1": doc("doc_1", "Sông Mekong", "<p>Sông Mekong chảy qua sáu nước. Mekong là nguồn sống.</p>"),
		"doc_2": doc("doc_2", "Nhật ký", "<p>Hôm nay trời đẹp.</p>"),
	})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	hits, err := ix.Search("Mekong", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].ID != "doc_1" {
		t.Errorf("hit = %q", hits[0].ID)
	}
	if !strings.Contains(hits[0].Snippet, "<mark>") {
		t.Errorf("snippet %q has no highlight", hits[0].Snippet)
	}
}

func TestDiacriticsAreSignificant(t *testing.T) {
	ix := mustIndex(t)
	err := ix.Rebuild(map[string]store.Document{
		"doc_1": doc("doc_1", "a", "<p>bán hàng</p>"),
		"doc_2": doc("doc_2", "b", "<p>bàn làm việc</p>"),
	})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	hits, err := ix.Search("bán", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "doc_1" {
		t.Errorf("bán matched %v, want only doc_1", hits)
	}
}

func TestMultiTokenIsAnd(t *testing.T) {
	ix := mustIndex(t)
	err := ix.Rebuild(map[string]store.Document{
		"doc_1": doc("doc_1", "a", "<p>xuất khẩu gạo</p>"),
		"doc_2": doc("doc_2", "b", "<p>xuất bản sách</p>"),
	})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	hits, err := ix.Search("xuất gạo", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "doc_1" {
		t.Errorf("got %v", hits)
	}
}

func TestPunctuationInQueryIsSafe(t *testing.T) {
	ix := mustIndex(t)
	if err := ix.Rebuild(nil); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	for _, q := range []string{`"`, `* OR (`, `NEAR(`, "   "} {
		if _, err := ix.Search(q, 10); err != nil {
			t.Errorf("Search(%q): %v", q, err)
		}
	}
}

func TestUpdateAndRemove(t *testing.T) {
	ix := mustIndex(t)
	if err := ix.Update(doc("doc_1", "t", "<p>cũ kỹ</p>")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Re-index with new body: the old text must no longer match.
	if err := ix.Update(doc("doc_1", "t", "<p>mới tinh</p>")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if hits, _ := ix.Search("cũ", 10); len(hits) != 0 {
		t.Errorf("stale text still indexed: %v", hits)
	}
	if hits, _ := ix.Search("mới", 10); len(hits) != 1 {
		t.Errorf("new text not indexed: %v", hits)
	}

	if err := ix.Remove("doc_1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if n, _ := ix.Count(); n != 0 {
		t.Errorf("Count = %d after remove", n)
	}
}

func TestRebuildReplaces(t *testing.T) {
	ix := mustIndex(t)
	if err := ix.Update(doc("doc_old", "t", "<p>trước</p>")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	err := ix.Rebuild(map[string]store.Document{
		"doc_new": doc("doc_new", "t", "<p>sau</p>"),
	})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	if hits, _ := ix.Search("trước", 10); len(hits) != 0 {
		t.Errorf("old doc survived rebuild: %v", hits)
	}
	if n, _ := ix.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
