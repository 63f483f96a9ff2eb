// Package repo owns the note and group collections: loading and persisting
// them through the storage adapter and every mutation the UI is allowed to
// perform on them. Views never write collection state directly.
package repo

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/wrathitsfinest/notes/internal/model"
	"github.com/wrathitsfinest/notes/internal/storage"
)

// State is the in-memory application state: the two collections plus the id
// of the currently selected group. Mutations go through Repository methods so
// the group-membership invariants stay centrally enforced.
type State struct {
	Notes  []model.Note
	Groups []model.Group

	// CurrentGroupID is the group open in the UI ("" when none).
	CurrentGroupID string
}

func (st *State) FindNote(id int64) (*model.Note, bool) {
	for i := range st.Notes {
		if st.Notes[i].ID == id {
			return &st.Notes[i], true
		}
	}
	return nil, false
}

func (st *State) FindGroup(id string) (*model.Group, bool) {
	for i := range st.Groups {
		if st.Groups[i].ID == id {
			return &st.Groups[i], true
		}
	}
	return nil, false
}

// NotesInGroup returns the notes assigned to groupID, preserving collection
// order (newest first).
func (st *State) NotesInGroup(groupID string) []model.Note {
	var out []model.Note
	for _, n := range st.Notes {
		if n.GroupID == groupID {
			out = append(out, n)
		}
	}
	return out
}

type Repository struct {
	store storage.Store
	log   zerolog.Logger
}

func New(store storage.Store, log zerolog.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Load reads both collections. Persistence failures and corrupted data are
// logged and degrade to empty collections; Load never fails.
func (r *Repository) Load(ctx context.Context) *State {
	st := &State{}
	st.Notes = loadCollection[model.Note](ctx, r, storage.KeyNotes)
	st.Groups = loadCollection[model.Group](ctx, r, storage.KeyGroups)

	// Heal dangling references left by e.g. a partial write: every note must
	// point at the default bucket or an existing group.
	for i := range st.Notes {
		if st.Notes[i].GroupID == model.DefaultGroupID {
			continue
		}
		if _, ok := st.FindGroup(st.Notes[i].GroupID); !ok {
			st.Notes[i].GroupID = model.DefaultGroupID
		}
	}
	return st
}

func loadCollection[T any](ctx context.Context, r *Repository, key string) []T {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.Error().Err(err).Str("key", key).Msg("storage read failed; starting empty")
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("corrupted collection discarded")
		return nil
	}
	return out
}

// saveNotes persists the notes collection. Best-effort: failures are logged
// and the caller continues with in-memory state.
func (r *Repository) saveNotes(ctx context.Context, st *State) {
	r.save(ctx, map[string]string{storage.KeyNotes: marshalCollection(st.Notes)})
}

func (r *Repository) saveGroups(ctx context.Context, st *State) {
	r.save(ctx, map[string]string{storage.KeyGroups: marshalCollection(st.Groups)})
}

// saveAll persists both collections in one write, so cascades land together.
func (r *Repository) saveAll(ctx context.Context, st *State) {
	r.save(ctx, map[string]string{
		storage.KeyNotes:  marshalCollection(st.Notes),
		storage.KeyGroups: marshalCollection(st.Groups),
	})
}

func (r *Repository) save(ctx context.Context, kvs map[string]string) {
	if err := r.store.SetMany(ctx, kvs); err != nil {
		r.log.Error().Err(err).Msg("storage write failed; continuing in memory")
	}
}

func marshalCollection[T any](xs []T) string {
	if xs == nil {
		xs = []T{}
	}
	b, err := json.Marshal(xs)
	if err != nil {
		// Model types marshal cleanly; this cannot happen with valid state.
		return "[]"
	}
	return string(b)
}
