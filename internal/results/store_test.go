package results

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/robalobadob/letterleap/assets"
)

func openTestDB(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db, assets.Migrations()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return NewStore(db)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "m.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte(`CREATE TABLE a (id INTEGER);`)},
		"002_b.sql": {Data: []byte(`INSERT INTO a VALUES (1);`)},
		"notes.txt": {Data: []byte(`ignored`)},
	}
	for i := 0; i < 2; i++ {
		if err := Migrate(db, fsys); err != nil {
			t.Fatalf("Migrate #%d: %v", i, err)
		}
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(1) FROM a`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("rows = %d, want 1 (002 applied once)", n)
	}
	if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("_migrations = %d, want 2", n)
	}
}

func TestMigrate_BadSQL(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "bad.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := Migrate(db, fstest.MapFS{"001.sql": {Data: []byte(`CREATE NONSENSE`)}}); err == nil {
		t.Fatal("expected error")
	}
}

func TestStore_InsertAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	for _, r := range []Result{
		{GameID: "g1", Start: "state", Target: "leash", Steps: 2, Tier: 1, ElapsedMs: 900},
		{GameID: "g2", Start: "state", Target: "leash", Steps: 4, Tier: 1, ElapsedMs: 1200},
		{GameID: "g3", Start: "state", Target: "leash", Steps: 12, Tier: 3, ElapsedMs: 5000},
		{GameID: "g4", Start: "stone", Target: "leash", Steps: 3, Tier: 1, ElapsedMs: 100},
	} {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatalf("Insert %s: %v", r.GameID, err)
		}
	}
	// Duplicate game IDs are ignored.
	if err := s.Insert(ctx, Result{GameID: "g1", Start: "state", Target: "leash", Steps: 20, Tier: 4}); err != nil {
		t.Fatalf("duplicate Insert: %v", err)
	}

	st, err := s.Stats(ctx, "state", "leash")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Completed != 3 || st.BestSteps != 2 {
		t.Fatalf("Stats = %+v", st)
	}
	if st.Tiers[1] != 2 || st.Tiers[2] != 0 || st.Tiers[3] != 1 || st.Tiers[4] != 0 {
		t.Fatalf("Tiers = %v", st.Tiers)
	}
}

func TestStore_StatsEmpty(t *testing.T) {
	st, err := openTestDB(t).Stats(context.Background(), "state", "leash")
	if err != nil {
		t.Fatal(err)
	}
	if st.Completed != 0 || len(st.Tiers) != 4 {
		t.Fatalf("Stats = %+v", st)
	}
}
