package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/wrathitsfinest/notes/internal/doc"
	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/model"
	"github.com/wrathitsfinest/notes/internal/repo"
	"github.com/wrathitsfinest/notes/internal/storage"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()
	s := storage.Store{Dir: t.TempDir()}
	m := newAppModel(s, zerolog.Nop())
	m.width = 100
	m.height = 40
	m.resizeLists()
	return m
}

func send(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func typeString(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m = send(t, m, keyRunes(string(r)))
	}
	return m
}

func TestCreateGroupViaModal(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, keyRunes("n"))
	if m.modal != modalNewGroup {
		t.Fatalf("modal = %d", m.modal)
	}
	m = typeString(t, m, "Work")
	m = send(t, m, key(tea.KeyEnter))

	if m.modal != modalNone {
		t.Fatalf("modal should close on save")
	}
	if len(m.st.Groups) != 1 || m.st.Groups[0].Name != "Work" {
		t.Fatalf("groups = %+v", m.st.Groups)
	}

	// Persisted: a fresh repository load sees the group.
	st := repo.New(m.store, zerolog.Nop()).Load(context.Background())
	if len(st.Groups) != 1 {
		t.Fatalf("group not persisted")
	}
}

func TestGroupModalRejectsEmptyNameAndStaysOpen(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, keyRunes("n"))
	m = send(t, m, key(tea.KeyEnter))
	if m.modal != modalNewGroup {
		t.Fatalf("modal must stay open for an empty name")
	}
	if len(m.st.Groups) != 0 {
		t.Fatalf("empty name must not create a group")
	}
}

func TestOpenGroupAndCreateNote(t *testing.T) {
	m := newTestApp(t)

	// The synthetic All Notes row is selected by default.
	m = send(t, m, key(tea.KeyEnter))
	if m.view != viewNotes {
		t.Fatalf("view = %d", m.view)
	}

	m = send(t, m, keyRunes("n"))
	if m.view != viewEditor {
		t.Fatalf("creating a note must open the editor, view = %d", m.view)
	}
	if len(m.st.Notes) != 1 {
		t.Fatalf("notes = %d", len(m.st.Notes))
	}
	if m.ed.focus != editorFocusTitle {
		t.Fatalf("new note must preselect the title")
	}
}

func TestEditorAutosaveDebounce(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, keyRunes("n"))

	m = typeString(t, m, "Plan")
	m = send(t, m, key(tea.KeyEnter)) // focus body
	m = typeString(t, m, "Milk")

	seq := m.saveSeq
	if seq == 0 {
		t.Fatalf("edits must schedule a save")
	}

	// A stale tick is ignored.
	m = send(t, m, saveDoneMsg{seq: seq - 1})
	if n, _ := m.st.FindNote(m.openNoteID); n.Title != "" {
		t.Fatalf("stale tick must not save, title = %q", n.Title)
	}

	// The current tick saves.
	m = send(t, m, saveDoneMsg{seq: seq})
	n, _ := m.st.FindNote(m.openNoteID)
	if n.Title != "Plan" {
		t.Fatalf("title = %q", n.Title)
	}
	if n.Content != "<div>Milk</div>" {
		t.Fatalf("content = %q", n.Content)
	}
}

func TestEditorEscFlushesPendingSave(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, keyRunes("n"))
	m = typeString(t, m, "Plan")

	m = send(t, m, key(tea.KeyEsc))
	if m.view != viewNotes {
		t.Fatalf("view = %d", m.view)
	}
	n, _ := m.st.FindNote(m.openNoteID)
	if n.Title != "Plan" {
		t.Fatalf("esc must flush the pending save, title = %q", n.Title)
	}
}

func TestDeleteNoteConfirm(t *testing.T) {
	m := newTestApp(t)
	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, keyRunes("n"))
	m = send(t, m, key(tea.KeyEsc))

	m = send(t, m, keyRunes("d"))
	if m.modal != modalConfirmDeleteNote {
		t.Fatalf("modal = %d", m.modal)
	}
	// Default focus is cancel: enter keeps the note.
	m = send(t, m, key(tea.KeyEnter))
	if len(m.st.Notes) != 1 {
		t.Fatalf("cancel must keep the note")
	}

	m = send(t, m, keyRunes("d"))
	m = send(t, m, keyRunes("y"))
	if len(m.st.Notes) != 0 {
		t.Fatalf("notes = %d", len(m.st.Notes))
	}
}

func TestDeleteGroupReassignsAndReselects(t *testing.T) {
	m := newTestApp(t)

	ctx := context.Background()
	g, err := m.repo.CreateGroup(ctx, m.st, "Work", model.ColorNone)
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	m.repo.CreateNote(ctx, m.st, g.ID)
	m.selectedGroupID = g.ID
	m.refreshGroups()

	m = send(t, m, keyRunes("d"))
	if m.modal != modalConfirmDeleteGroup {
		t.Fatalf("modal = %d", m.modal)
	}
	m = send(t, m, keyRunes("y"))

	if len(m.st.Groups) != 0 {
		t.Fatalf("groups = %+v", m.st.Groups)
	}
	if m.selectedGroupID != model.DefaultGroupID {
		t.Fatalf("selection must fall back to the default bucket")
	}
	if len(m.st.NotesInGroup(model.DefaultGroupID)) != 1 {
		t.Fatalf("note not reassigned")
	}
}

func TestDefaultGroupRowNotEditable(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, keyRunes("e"))
	if m.modal != modalNone {
		t.Fatalf("the All Notes row must not open the edit modal")
	}
	m = send(t, m, keyRunes("d"))
	if m.modal != modalNone {
		t.Fatalf("the All Notes row must not open the delete modal")
	}
}

func TestUIStateRestoredOnRelaunch(t *testing.T) {
	s := storage.Store{Dir: t.TempDir()}
	m := newAppModel(s, zerolog.Nop())
	m.width, m.height = 100, 40

	m = send(t, m, key(tea.KeyEnter)) // open All Notes
	m = send(t, m, keyRunes("n"))     // create + open note
	noteID := m.openNoteID
	m.saveUIState()

	m2 := newAppModel(s, zerolog.Nop())
	if m2.view != viewEditor {
		t.Fatalf("view = %d, want editor", m2.view)
	}
	if m2.openNoteID != noteID {
		t.Fatalf("openNoteID = %d, want %d", m2.openNoteID, noteID)
	}
}

func TestChecklistNoteSurvivesRelaunch(t *testing.T) {
	s := storage.Store{Dir: t.TempDir()}
	m := newAppModel(s, zerolog.Nop())
	m.width, m.height = 100, 40
	m.resizeLists()

	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, keyRunes("n"))
	m = typeString(t, m, "Shopping")
	m = send(t, m, key(tea.KeyEnter)) // focus body
	m = typeString(t, m, "Milk")
	m = send(t, m, ctrl("t"))
	noteID := m.openNoteID
	m = send(t, m, key(tea.KeyEsc)) // flush pending save

	m2 := newAppModel(s, zerolog.Nop())
	n, ok := m2.st.FindNote(noteID)
	if !ok {
		t.Fatalf("note missing after relaunch")
	}
	if n.Title != "Shopping" {
		t.Fatalf("title = %q", n.Title)
	}
	d := doc.Decode(n.Content)
	if len(d.Lines) != 1 {
		t.Fatalf("lines = %d", len(d.Lines))
	}
	if d.Lines[0].Kind != doc.KindChecklist || d.Lines[0].Checked {
		t.Fatalf("line = %+v, want unchecked checklist", d.Lines[0])
	}
	if d.Lines[0].PlainText() != "Milk" {
		t.Fatalf("text = %q", d.Lines[0].PlainText())
	}
}

func TestLanguageCycleUpdatesChrome(t *testing.T) {
	m := newTestApp(t)

	m = send(t, m, keyRunes("L"))
	if m.tr.Lang() != "ru" {
		t.Fatalf("lang = %q", m.tr.Lang())
	}
	if got := m.repo.Pref(context.Background(), storage.KeyLanguage, "en"); got != "ru" {
		t.Fatalf("language pref = %q", got)
	}
}

func TestRelativeDateBuckets(t *testing.T) {
	tr := i18n.New("en")
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "Just now"},
		{now.Add(-1 * time.Minute), "1 min ago"},
		{now.Add(-5 * time.Minute), "5 mins ago"},
		{now.Add(-2 * time.Hour), "2 hours ago"},
		{now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{now.Add(-10 * 24 * time.Hour), "Aug 19"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "Dec 31, 2025"},
	}
	for _, tc := range cases {
		if got := formatRelative(tc.t, now, tr); got != tc.want {
			t.Errorf("formatRelative(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}
