package repo

import (
	"context"
	"encoding/json"

	"github.com/wrathitsfinest/notes/internal/storage"
)

// UI preferences live beside the collections in the same key-value store.
// Reads are best-effort with a caller-supplied default; writes are logged on
// failure and otherwise silent, like collection writes.

func (r *Repository) Pref(ctx context.Context, key, fallback string) string {
	v, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("preference read failed")
		return fallback
	}
	if !ok || v == "" {
		return fallback
	}
	return v
}

func (r *Repository) SetPref(ctx context.Context, key, value string) {
	if err := r.store.Set(ctx, key, value); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("preference write failed")
	}
}

// UIState is small, best-effort TUI state for restoring the last screen on
// relaunch. Callers tolerate missing or stale data.
type UIState struct {
	Version int `json:"version"`

	// View is one of: groups|notes|editor.
	View string `json:"view,omitempty"`

	SelectedGroupID string `json:"selectedGroupId,omitempty"`
	OpenNoteID      int64  `json:"openNoteId,omitempty"`
}

func (r *Repository) LoadUIState(ctx context.Context) UIState {
	raw, ok, err := r.store.Get(ctx, storage.KeyUIState)
	if err != nil || !ok {
		return UIState{Version: 1}
	}
	var st UIState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return UIState{Version: 1}
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return st
}

func (r *Repository) SaveUIState(ctx context.Context, st UIState) {
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := r.store.Set(ctx, storage.KeyUIState, string(b)); err != nil {
		r.log.Warn().Err(err).Msg("ui state write failed")
	}
}
