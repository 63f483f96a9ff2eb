package repo

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wrathitsfinest/notes/internal/model"
	"github.com/wrathitsfinest/notes/internal/storage"
)

func newTestRepo(t *testing.T) (*Repository, storage.Store) {
	t.Helper()
	s := storage.Store{Dir: t.TempDir()}
	return New(s, zerolog.Nop()), s
}

func TestCreateNotePrependsAndPersists(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	first := r.CreateNote(ctx, st, model.DefaultGroupID)
	second := r.CreateNote(ctx, st, model.DefaultGroupID)

	if len(st.Notes) != 2 {
		t.Fatalf("got %d notes", len(st.Notes))
	}
	if st.Notes[0].ID != second.ID {
		t.Fatalf("newest note must be first")
	}
	if first.ID == second.ID {
		t.Fatalf("note ids must be unique")
	}
	if first.GroupID != model.DefaultGroupID {
		t.Fatalf("groupId = %q", first.GroupID)
	}

	// A fresh load sees both notes.
	st2 := r.Load(ctx)
	if len(st2.Notes) != 2 {
		t.Fatalf("reload got %d notes", len(st2.Notes))
	}
}

func TestCreateNoteUnknownGroupFallsBackToDefault(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	n := r.CreateNote(ctx, st, "group-gone")
	if n.GroupID != model.DefaultGroupID {
		t.Fatalf("groupId = %q, want default", n.GroupID)
	}
}

func TestUpdateNoteContent(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	a := r.CreateNote(ctx, st, model.DefaultGroupID)
	b := r.CreateNote(ctx, st, model.DefaultGroupID)

	res := r.UpdateNoteContent(ctx, st, a.ID, "  Shopping  ", "<div>Milk</div>")
	if !res.Changed {
		t.Fatalf("expected changed")
	}
	if res.Note.Title != "Shopping" {
		t.Fatalf("title not trimmed: %q", res.Note.Title)
	}
	if !res.Note.UpdatedAt.After(a.UpdatedAt) && res.Note.UpdatedAt == a.UpdatedAt {
		t.Logf("updatedAt unchanged within clock resolution; acceptable")
	}
	// Updating must not reorder: b (newest) stays first.
	if st.Notes[0].ID != b.ID {
		t.Fatalf("update reordered the collection")
	}

	// Stale id: silent no-op.
	if res := r.UpdateNoteContent(ctx, st, 42, "x", "y"); res.Changed {
		t.Fatalf("expected no-op for unknown id")
	}
}

func TestDeleteNote(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	n := r.CreateNote(ctx, st, model.DefaultGroupID)
	if !r.DeleteNote(ctx, st, n.ID) {
		t.Fatalf("expected delete to succeed")
	}
	if len(st.Notes) != 0 {
		t.Fatalf("note still present")
	}
	if r.DeleteNote(ctx, st, n.ID) {
		t.Fatalf("second delete must be a no-op")
	}
}

func TestMoveNote(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	g, err := r.CreateGroup(ctx, st, "Work", model.ColorBlue)
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	n := r.CreateNote(ctx, st, model.DefaultGroupID)

	if res := r.MoveNote(ctx, st, n.ID, g.ID); !res.Changed {
		t.Fatalf("expected move to succeed")
	}
	got, _ := st.FindNote(n.ID)
	if got.GroupID != g.ID {
		t.Fatalf("groupId = %q", got.GroupID)
	}

	// Unknown target group: silent no-op.
	if res := r.MoveNote(ctx, st, n.ID, "group-gone"); res.Changed {
		t.Fatalf("expected no-op for unknown group")
	}
}

func TestCreateGroupRejectsEmptyName(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	if _, err := r.CreateGroup(ctx, st, "   ", model.ColorNone); err == nil {
		t.Fatalf("expected EmptyNameError")
	}
	if len(st.Groups) != 0 {
		t.Fatalf("rejected create must not mutate state")
	}
}

func TestCreateGroupSelectsIt(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	g, err := r.CreateGroup(ctx, st, "Ideas", model.ColorNone)
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if st.CurrentGroupID != g.ID {
		t.Fatalf("current group = %q, want %q", st.CurrentGroupID, g.ID)
	}
}

func TestGroupIDsUnique(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		g, err := r.CreateGroup(ctx, st, "G", model.ColorNone)
		if err != nil {
			t.Fatalf("CreateGroup: %v", err)
		}
		if seen[g.ID] {
			t.Fatalf("id %s reused", g.ID)
		}
		seen[g.ID] = true
	}

	// Deleting the newest group must not free its id for the next create.
	last := st.Groups[len(st.Groups)-1]
	if _, err := r.DeleteGroup(ctx, st, last.ID); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	g, _ := r.CreateGroup(ctx, st, "G", model.ColorNone)
	if seen[g.ID] && g.ID == last.ID {
		t.Fatalf("id %s of deleted group reused", g.ID)
	}
}

func TestRenameGroup(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	g, _ := r.CreateGroup(ctx, st, "Work", model.ColorNone)

	if err := r.RenameGroup(ctx, st, model.DefaultGroupID, "X", model.ColorNone); err == nil {
		t.Fatalf("renaming the default bucket must be rejected")
	}
	if err := r.RenameGroup(ctx, st, g.ID, " ", model.ColorNone); err == nil {
		t.Fatalf("empty name must be rejected")
	}
	if err := r.RenameGroup(ctx, st, g.ID, "Projects", model.ColorGreen); err != nil {
		t.Fatalf("RenameGroup: %v", err)
	}
	got, _ := st.FindGroup(g.ID)
	if got.Name != "Projects" || got.Color != model.ColorGreen {
		t.Fatalf("group = %+v", got)
	}
	// Stale id: silent no-op.
	if err := r.RenameGroup(ctx, st, "group-gone", "X", model.ColorNone); err != nil {
		t.Fatalf("stale id must be a silent no-op, got %v", err)
	}
}

func TestDeleteGroupCascade(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	st := r.Load(ctx)

	a, _ := r.CreateGroup(ctx, st, "A", model.ColorNone)
	b, _ := r.CreateGroup(ctx, st, "B", model.ColorNone)
	n1 := r.CreateNote(ctx, st, a.ID)
	n2 := r.CreateNote(ctx, st, b.ID)
	n3 := r.CreateNote(ctx, st, a.ID)

	res, err := r.DeleteGroup(ctx, st, a.ID)
	if err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if res.Reassigned != 2 {
		t.Fatalf("reassigned = %d, want 2", res.Reassigned)
	}
	if len(st.Groups) != 1 || st.Groups[0].ID != b.ID {
		t.Fatalf("groups = %+v", st.Groups)
	}
	for _, tc := range []struct {
		id   int64
		want string
	}{
		{n1.ID, model.DefaultGroupID},
		{n2.ID, b.ID},
		{n3.ID, model.DefaultGroupID},
	} {
		n, _ := st.FindNote(tc.id)
		if n.GroupID != tc.want {
			t.Errorf("note %d group = %q, want %q", tc.id, n.GroupID, tc.want)
		}
	}

	// Both collections persisted together.
	st2 := r.Load(ctx)
	if len(st2.Groups) != 1 || len(st2.NotesInGroup(model.DefaultGroupID)) != 2 {
		t.Fatalf("cascade not persisted: %+v", st2)
	}

	// The default bucket cannot be deleted.
	if _, err := r.DeleteGroup(ctx, st, model.DefaultGroupID); err == nil {
		t.Fatalf("expected DefaultGroupError")
	}
	// Stale id: silent no-op.
	res, err = r.DeleteGroup(ctx, st, "group-gone")
	if err != nil || res.Deleted {
		t.Fatalf("stale id: res=%+v err=%v", res, err)
	}
}

func TestLoadToleratesCorruption(t *testing.T) {
	r, s := newTestRepo(t)
	ctx := context.Background()

	if err := s.Set(ctx, storage.KeyNotes, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	st := r.Load(ctx)
	if len(st.Notes) != 0 {
		t.Fatalf("corrupted collection must load empty")
	}
}

func TestLoadHealsDanglingGroupRefs(t *testing.T) {
	r, s := newTestRepo(t)
	ctx := context.Background()

	if err := s.Set(ctx, storage.KeyNotes, `[{"id":1,"groupId":"group-gone"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	st := r.Load(ctx)
	if st.Notes[0].GroupID != model.DefaultGroupID {
		t.Fatalf("dangling ref not healed: %q", st.Notes[0].GroupID)
	}
}

func TestPrefs(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	if got := r.Pref(ctx, storage.KeyTheme, "auto"); got != "auto" {
		t.Fatalf("default = %q", got)
	}
	r.SetPref(ctx, storage.KeyTheme, "dark")
	if got := r.Pref(ctx, storage.KeyTheme, "auto"); got != "dark" {
		t.Fatalf("got %q", got)
	}
}

func TestUIStateRoundTrip(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	r.SaveUIState(ctx, UIState{View: "notes", SelectedGroupID: "group-1", OpenNoteID: 7})
	st := r.LoadUIState(ctx)
	if st.View != "notes" || st.SelectedGroupID != "group-1" || st.OpenNoteID != 7 {
		t.Fatalf("ui state = %+v", st)
	}
}
