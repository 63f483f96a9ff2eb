package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/wrathitsfinest/notes/internal/doc"
	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/model"
)

const previewMaxChars = 100

type groupItem struct {
	group   model.Group
	current bool
	// count of notes in the group, shown after the name.
	count int
	// allNotes marks the synthetic "All Notes" row for the default bucket.
	allNotes bool
}

func (i groupItem) FilterValue() string { return i.group.Name }
func (i groupItem) Title() string {
	name := fmt.Sprintf("%s (%d)", i.group.Name, i.count)
	badge := ""
	if i.group.Color != model.ColorNone {
		badge = paletteStyle(i.group.Color).Render(glyphDot()) + " "
	}
	if i.current {
		return badge + name + " " + glyphBullet()
	}
	return badge + name
}
func (i groupItem) Description() string { return i.group.ID }

type noteItem struct {
	note model.Note
	// preview and when are precomputed at refresh time so Render stays cheap.
	preview string
	when    string
}

func newNoteItem(n model.Note, now time.Time, tr i18n.Translator) noteItem {
	return noteItem{
		note:    n,
		preview: notePreview(n, tr),
		when:    formatRelative(n.UpdatedAt, now, tr),
	}
}

func (i noteItem) FilterValue() string { return i.note.Title + " " + i.preview }
func (i noteItem) Title() string {
	badge := ""
	if i.note.Color != model.ColorNone {
		badge = paletteStyle(i.note.Color).Render(glyphDot()) + " "
	}
	return badge + i.note.Title
}
func (i noteItem) Description() string { return i.preview + "  " + i.when }

// notePreview flattens the note's markup to the first previewMaxChars
// characters of plain text.
func notePreview(n model.Note, tr i18n.Translator) string {
	d := doc.Decode(n.Content)
	text := strings.TrimSpace(strings.ReplaceAll(d.PlainText(), "\n", " "))
	if text == "" {
		return tr.T("no_content")
	}
	runes := []rune(text)
	if len(runes) > previewMaxChars {
		return string(runes[:previewMaxChars])
	}
	return text
}

// noteDisplayTitle substitutes the localized placeholder for untitled notes.
func noteDisplayTitle(n model.Note, tr i18n.Translator) string {
	if strings.TrimSpace(n.Title) == "" {
		return tr.T("untitled_note")
	}
	return n.Title
}

type colorOptionItem struct {
	color model.Color
	label string
}

func (i colorOptionItem) FilterValue() string { return i.label }
func (i colorOptionItem) Title() string {
	if i.color == model.ColorNone {
		return i.label
	}
	return paletteStyle(i.color).Render(glyphDot()) + " " + i.label
}
func (i colorOptionItem) Description() string { return string(i.color) }

type pickOptionItem struct {
	id    string
	label string
}

func (i pickOptionItem) FilterValue() string { return i.label }
func (i pickOptionItem) Title() string       { return i.label }
func (i pickOptionItem) Description() string { return i.id }

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own global header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
