package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGetSetRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, KeyNotes); err != nil {
		t.Fatalf("Get error: %v", err)
	} else if ok {
		t.Fatalf("expected absent key")
	}

	if err := s.Set(ctx, KeyNotes, `[{"id":1}]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, ok, err := s.Get(ctx, KeyNotes)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !ok || v != `[{"id":1}]` {
		t.Fatalf("got %q ok=%v", v, ok)
	}

	// Last write wins.
	if err := s.Set(ctx, KeyNotes, `[]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, _, _ = s.Get(ctx, KeyNotes)
	if v != `[]` {
		t.Fatalf("got %q, want []", v)
	}
}

func TestSetMany(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	err := s.SetMany(ctx, map[string]string{
		KeyNotes:  `[]`,
		KeyGroups: `[]`,
		KeyTheme:  "dark",
	})
	if err != nil {
		t.Fatalf("SetMany error: %v", err)
	}
	for _, k := range []string{KeyNotes, KeyGroups, KeyTheme} {
		if _, ok, _ := s.Get(ctx, k); !ok {
			t.Errorf("key %s missing after SetMany", k)
		}
	}
}

func TestDeleteMissingKey(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Delete(context.Background(), "nope"); err != nil {
		t.Fatalf("Delete of missing key should be nil, got %v", err)
	}
}

func TestDiscoverDir(t *testing.T) {
	root := t.TempDir()
	storeDir := filepath.Join(root, ".notes")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok := DiscoverDir(nested)
	if !ok || got != storeDir {
		t.Fatalf("DiscoverDir = %q ok=%v, want %q", got, ok, storeDir)
	}

	if _, ok := DiscoverDir(t.TempDir()); ok {
		t.Fatalf("expected no discovery in empty tree")
	}
}
