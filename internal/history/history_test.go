package history

import (
	"os"
	"testing"
	"time"

	"github.com/starford/findvisor/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "findvisor-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM commands`).Scan(&count); err != nil {
		t.Fatalf("commands table missing: %v", err)
	}
}

func TestRecordAndRecent(t *testing.T) {
	db := testDB(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	lines := []string{"list", "find n/alex", "addtag 1 t/vip"}
	for i, l := range lines {
		err := db.Record(models.CommandRecord{Session: "s1", Line: l, Result: "ok", OK: true, ExecutedAt: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := db.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Line != "addtag 1 t/vip" || got[1].Line != "find n/alex" {
		t.Errorf("order = %q, %q", got[0].Line, got[1].Line)
	}
	if !got[0].OK || got[0].Session != "s1" {
		t.Errorf("record fields not round-tripped: %+v", got[0])
	}
	if !got[0].ExecutedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("executed_at = %v", got[0].ExecutedAt)
	}
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	_ = db.Record(models.CommandRecord{Line: "find n/Alex", OK: true})
	_ = db.Record(models.CommandRecord{Line: "reschedule 1 s/01-01-2030T10:00", OK: false})
	_ = db.Record(models.CommandRecord{Line: "find t/100%", OK: true})

	got, err := db.Search("FIND", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	got, err = db.Search("100%", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Line != "find t/100%" {
		t.Errorf("wildcard not escaped: %+v", got)
	}

	got, err = db.Search("  ", 10)
	if err != nil {
		t.Fatalf("Search blank: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("blank keyword returned %d, want 3", len(got))
	}
}

func TestCount(t *testing.T) {
	db := testDB(t)
	for range 3 {
		_ = db.Record(models.CommandRecord{Line: "list"})
	}
	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}
