package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(id string, createdAt time.Time) Record {
	return Record{
		ID:            id,
		CreatedAt:     createdAt,
		PurchasePrice: 500000,
		Score:         4,
		Grade:         "HOLD",
		InputJSON:     `{"purchase_price":500000}`,
		AnalysisJSON:  `{"property_price":500000}`,
		SummaryJSON:   `{"roi":43.67}`,
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)

	want := sampleRecord("rec-1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := s.Get("rec-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("record not found after save")
	}
	if got.ID != want.ID || got.PurchasePrice != want.PurchasePrice || got.Score != want.Score {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Grade != "HOLD" {
		t.Errorf("grade = %q", got.Grade)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if got.SummaryJSON != want.SummaryJSON {
		t.Errorf("summary_json = %q", got.SummaryJSON)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("found a record that was never saved")
	}
}

func TestListOrderingAndPaging(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := sampleRecord(
			string(rune('a'+i)),
			base.Add(time.Duration(i)*time.Hour),
		)
		if err := s.Save(r); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	items, total, err := s.List(2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	// Newest first.
	if items[0].ID != "e" || items[1].ID != "d" {
		t.Errorf("page 1 = [%s %s], want [e d]", items[0].ID, items[1].ID)
	}

	items, _, err = s.List(2, 4)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(items) != 1 || items[0].ID != "a" {
		t.Errorf("last page = %+v, want single record a", items)
	}
}

func TestSaveDuplicateID(t *testing.T) {
	s := openTestStore(t)

	r := sampleRecord("dup", time.Now())
	if err := s.Save(r); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := s.Save(r); err == nil {
		t.Error("duplicate id accepted")
	}
}
