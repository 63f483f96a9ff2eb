package repo

import (
	"context"
	"strings"
	"time"

	"github.com/wrathitsfinest/notes/internal/model"
)

type NoteResult struct {
	Note    *model.Note
	Changed bool
}

// CreateNote builds an empty note in groupID (falling back to the default
// bucket when the group does not exist), prepends it so the collection stays
// newest-first, and persists. Returns the new note.
func (r *Repository) CreateNote(ctx context.Context, st *State, groupID string) model.Note {
	if groupID != model.DefaultGroupID {
		if _, ok := st.FindGroup(groupID); !ok {
			groupID = model.DefaultGroupID
		}
	}

	now := time.Now().UTC()
	n := model.Note{
		ID:        newNoteID(st, now),
		GroupID:   groupID,
		Color:     model.ColorNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.Notes = append([]model.Note{n}, st.Notes...)
	r.saveNotes(ctx, st)
	return n
}

// UpdateNoteContent overwrites a note's title (trimmed) and content,
// refreshing updatedAt. A stale id is a silent no-op; collection order is
// never changed.
func (r *Repository) UpdateNoteContent(ctx context.Context, st *State, id int64, title, content string) NoteResult {
	n, ok := st.FindNote(id)
	if !ok {
		return NoteResult{}
	}
	n.Title = strings.TrimSpace(title)
	n.Content = content
	n.UpdatedAt = time.Now().UTC()
	r.saveNotes(ctx, st)
	return NoteResult{Note: n, Changed: true}
}

// SetNoteColor tags a note with a palette color.
func (r *Repository) SetNoteColor(ctx context.Context, st *State, id int64, color model.Color) NoteResult {
	if !color.Valid() {
		return NoteResult{}
	}
	n, ok := st.FindNote(id)
	if !ok {
		return NoteResult{}
	}
	n.Color = color
	n.UpdatedAt = time.Now().UTC()
	r.saveNotes(ctx, st)
	return NoteResult{Note: n, Changed: true}
}

// DeleteNote removes a note. Confirmation is the caller's concern.
func (r *Repository) DeleteNote(ctx context.Context, st *State, id int64) bool {
	for i := range st.Notes {
		if st.Notes[i].ID == id {
			st.Notes = append(st.Notes[:i], st.Notes[i+1:]...)
			r.saveNotes(ctx, st)
			return true
		}
	}
	return false
}

// MoveNote reassigns a note to another group (or the default bucket),
// refreshing updatedAt. Stale note or group ids are silent no-ops.
func (r *Repository) MoveNote(ctx context.Context, st *State, id int64, newGroupID string) NoteResult {
	if newGroupID != model.DefaultGroupID {
		if _, ok := st.FindGroup(newGroupID); !ok {
			return NoteResult{}
		}
	}
	n, ok := st.FindNote(id)
	if !ok {
		return NoteResult{}
	}
	n.GroupID = newGroupID
	n.UpdatedAt = time.Now().UTC()
	r.saveNotes(ctx, st)
	return NoteResult{Note: n, Changed: true}
}
