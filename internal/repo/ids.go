package repo

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Both id spaces are derived from the creation timestamp in unix milliseconds,
// bumped past the newest existing id so that creations within the same
// millisecond stay unique and ids are never handed out twice.

func newNoteID(st *State, now time.Time) int64 {
	id := now.UTC().UnixMilli()
	for _, n := range st.Notes {
		if n.ID >= id {
			id = n.ID + 1
		}
	}
	return id
}

const groupIDPrefix = "group-"

func newGroupID(st *State, now time.Time) string {
	ms := now.UTC().UnixMilli()
	for _, g := range st.Groups {
		rest, ok := strings.CutPrefix(g.ID, groupIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil && n >= ms {
			ms = n + 1
		}
	}
	return fmt.Sprintf("%s%d", groupIDPrefix, ms)
}
