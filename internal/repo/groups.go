package repo

import (
	"context"
	"strings"
	"time"

	"github.com/wrathitsfinest/notes/internal/model"
)

// CreateGroup adds a group with a fresh time-derived id and selects it as
// current. An empty name (after trimming) is rejected.
func (r *Repository) CreateGroup(ctx context.Context, st *State, name string, color model.Color) (model.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Group{}, EmptyNameError{}
	}
	if !color.Valid() {
		color = model.ColorNone
	}

	now := time.Now().UTC()
	g := model.Group{
		ID:        newGroupID(st, now),
		Name:      name,
		Color:     color,
		CreatedAt: now,
	}
	st.Groups = append(st.Groups, g)
	st.CurrentGroupID = g.ID
	r.saveGroups(ctx, st)
	return g, nil
}

// RenameGroup mutates a group's name and color in place. The default bucket
// and empty names are rejected; a stale id is a silent no-op.
func (r *Repository) RenameGroup(ctx context.Context, st *State, id, name string, color model.Color) error {
	if id == model.DefaultGroupID {
		return DefaultGroupError{Op: "rename"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return EmptyNameError{}
	}
	g, ok := st.FindGroup(id)
	if !ok {
		return nil
	}
	g.Name = name
	if color.Valid() {
		g.Color = color
	}
	r.saveGroups(ctx, st)
	return nil
}

type DeleteGroupResult struct {
	// Reassigned counts the notes moved to the default bucket.
	Reassigned int
	Deleted    bool
}

// DeleteGroup removes a group, reassigning every dependent note to the
// default bucket (refreshing each updatedAt) and persisting both collections
// together. Deleting the default bucket is rejected; a stale id is a silent
// no-op.
func (r *Repository) DeleteGroup(ctx context.Context, st *State, id string) (DeleteGroupResult, error) {
	if id == model.DefaultGroupID {
		return DeleteGroupResult{}, DefaultGroupError{Op: "delete"}
	}

	idx := -1
	for i := range st.Groups {
		if st.Groups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return DeleteGroupResult{}, nil
	}

	now := time.Now().UTC()
	reassigned := 0
	for i := range st.Notes {
		if st.Notes[i].GroupID == id {
			st.Notes[i].GroupID = model.DefaultGroupID
			st.Notes[i].UpdatedAt = now
			reassigned++
		}
	}

	st.Groups = append(st.Groups[:idx], st.Groups[idx+1:]...)
	if st.CurrentGroupID == id {
		st.CurrentGroupID = model.DefaultGroupID
	}
	r.saveAll(ctx, st)
	return DeleteGroupResult{Reassigned: reassigned, Deleted: true}, nil
}
