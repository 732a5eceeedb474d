package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := OpenSQL("sqlite", filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQL(sqlite): %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStoreSaveLatestList(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Latest(ctx, "a"); err != nil || ok {
				t.Fatalf("Latest on empty store = %v, %v", ok, err)
			}
			for _, src := range []string{"1 + 1", "2 * 3", "true ? 1 : 2"} {
				if err := s.Save(ctx, "a", src); err != nil {
					t.Fatalf("Save: %v", err)
				}
			}
			if err := s.Save(ctx, "b", "null"); err != nil {
				t.Fatalf("Save: %v", err)
			}

			src, ok, err := s.Latest(ctx, "a")
			if err != nil || !ok || src != "true ? 1 : 2" {
				t.Errorf("Latest(a) = %q, %v, %v", src, ok, err)
			}

			all, err := s.List(ctx, "a", 0)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := []string{"true ? 1 : 2", "2 * 3", "1 + 1"}
			if len(all) != len(want) {
				t.Fatalf("List(a) has %d entries, want %d", len(all), len(want))
			}
			for i, e := range all {
				if e.Source != want[i] || e.Session != "a" {
					t.Errorf("List(a)[%d] = %+v, want source %q", i, e, want[i])
				}
			}

			two, err := s.List(ctx, "a", 2)
			if err != nil || len(two) != 2 || two[0].Source != "true ? 1 : 2" {
				t.Errorf("List(a, 2) = %+v, %v", two, err)
			}
		})
	}
}

func TestLatestOr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if src, err := LatestOr(ctx, s, "x", "1 + 1"); err != nil || src != "1 + 1" {
		t.Errorf("LatestOr(empty) = %q, %v", src, err)
	}
	s.Save(ctx, "x", "42")
	if src, err := LatestOr(ctx, s, "x", "1 + 1"); err != nil || src != "42" {
		t.Errorf("LatestOr = %q, %v", src, err)
	}
}

func TestSQLStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := OpenSQL("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "sess", "[1, 2]"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQL("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	src, ok, err := s.Latest(ctx, "sess")
	if err != nil || !ok || src != "[1, 2]" {
		t.Errorf("Latest after reopen = %q, %v, %v", src, ok, err)
	}
}

// setClock pins the time the store stamps on saved entries.
func setClock(s Store, now time.Time) {
	switch s := s.(type) {
	case *MemoryStore:
		s.now = func() time.Time { return now }
	case *SQLStore:
		s.now = func() time.Time { return now }
	}
}

func TestStorePrune(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			setClock(s, base)
			s.Save(ctx, "a", "old")
			s.Save(ctx, "b", "gone")
			setClock(s, base.Add(time.Hour))
			s.Save(ctx, "a", "new")

			n, err := s.Prune(ctx, base.Add(time.Minute))
			if err != nil || n != 2 {
				t.Fatalf("Prune = %d, %v, want 2", n, err)
			}
			all, _ := s.List(ctx, "a", 0)
			if len(all) != 1 || all[0].Source != "new" || !all[0].SavedAt.Equal(base.Add(time.Hour)) {
				t.Errorf("after prune = %+v", all)
			}
			if _, ok, _ := s.Latest(ctx, "b"); ok {
				t.Error("pruned session b still has history")
			}
		})
	}
}

func TestOpen(t *testing.T) {
	if _, err := Open("postgres", "x"); err == nil {
		t.Error("Open(postgres) succeeded")
	}
	s, err := Open("memory", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Open(memory) = %T", s)
	}
}
