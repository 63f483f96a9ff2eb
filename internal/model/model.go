package model

import "time"

// DefaultGroupID is the implicit "uncategorized" bucket. It is never present
// in the stored groups collection and cannot be renamed or deleted; notes
// whose group goes away are reassigned here.
const DefaultGroupID = "default"

// Color is a palette tag attached to notes and groups. "none" means no color.
type Color string

const (
	ColorNone   Color = "none"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
)

// Palette lists the selectable colors, in display order. ColorNone is first so
// pickers offer "no color" as the default choice.
var Palette = []Color{ColorNone, ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}

func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

type Note struct {
	// ID is derived from the creation timestamp (unix milliseconds) and is
	// immutable for the lifetime of the note.
	ID      int64  `json:"id"`
	GroupID string `json:"groupId"`

	// Title may be empty; the UI renders empty titles as "Untitled Note".
	Title string `json:"title"`
	// Content is the serialized document body (line markup, see internal/doc).
	Content string `json:"content"`

	Color Color `json:"color"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     Color     `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
