package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wrathitsfinest/notes/internal/doc"
	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/model"
)

type editorFocus int

const (
	editorFocusTitle editorFocus = iota
	editorFocusBody
)

// editor is the note editor: a title input above a checklist-aware body.
// Every body mutation runs the document repair pass so a line never loses its
// editable content region.
type editor struct {
	title textinput.Model
	doc   doc.Document
	cur   doc.Cursor
	focus editorFocus
	dirty bool
}

func newEditor(tr i18n.Translator) editor {
	ti := textinput.New()
	ti.Placeholder = tr.T("note_title_placeholder")
	ti.CharLimit = 200
	ti.Width = 40
	return editor{title: ti, doc: doc.New()}
}

func (e *editor) load(n model.Note) {
	e.title.SetValue(n.Title)
	e.doc = doc.Decode(n.Content)
	e.cur = doc.Repair(&e.doc, doc.Cursor{})
	e.dirty = false
	// New notes start with the title focused so typing names the note.
	e.focus = editorFocusTitle
	e.title.Focus()
	e.title.CursorEnd()
}

func (e *editor) titleValue() string { return e.title.Value() }
func (e *editor) content() string    { return doc.Encode(e.doc) }

func (e *editor) focusBody() {
	e.focus = editorFocusBody
	e.title.Blur()
}

func (e *editor) focusTitle() {
	e.focus = editorFocusTitle
	e.title.Focus()
}

// handleKey processes one key. It returns a bubbletea command for the title
// input (nil otherwise) and whether the key was consumed.
func (e *editor) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if e.focus == editorFocusTitle {
		switch msg.String() {
		case "enter", "tab", "down":
			e.focusBody()
			return nil, true
		default:
			before := e.title.Value()
			var cmd tea.Cmd
			e.title, cmd = e.title.Update(msg)
			if e.title.Value() != before {
				e.dirty = true
			}
			return cmd, true
		}
	}

	switch msg.String() {
	case "tab", "shift+tab":
		e.focusTitle()
		return nil, true
	case "up":
		e.moveLine(-1)
		return nil, true
	case "down":
		e.moveLine(1)
		return nil, true
	case "left":
		e.moveCol(-1)
		return nil, true
	case "right":
		e.moveCol(1)
		return nil, true
	case "home", "ctrl+a":
		e.cur.Col = 0
		return nil, true
	case "end", "ctrl+e":
		e.cur.Col = len([]rune(e.line().Text))
		return nil, true
	case "ctrl+t":
		e.cur = doc.ToggleChecklistAt(&e.doc, e.cur)
		e.repair()
		return nil, true
	case "ctrl+x":
		doc.ToggleChecked(&e.doc, e.cur.Line)
		e.repair()
		return nil, true
	case "enter":
		if next, ok := doc.Enter(&e.doc, e.cur); ok {
			e.cur = next
		} else {
			e.splitPlainLine()
		}
		e.repair()
		return nil, true
	case "backspace":
		if next, ok := doc.Backspace(&e.doc, e.cur); ok {
			e.cur = next
		} else {
			e.deleteBack()
		}
		e.repair()
		return nil, true
	}

	switch msg.Type {
	case tea.KeyRunes:
		e.insert(string(msg.Runes))
		return nil, true
	case tea.KeySpace:
		e.insert(" ")
		return nil, true
	}
	return nil, false
}

func (e *editor) repair() {
	e.cur = doc.Repair(&e.doc, e.cur)
	e.dirty = true
}

func (e *editor) line() doc.Line {
	if e.cur.Line >= len(e.doc.Lines) {
		return doc.Line{}
	}
	return e.doc.Lines[e.cur.Line]
}

func (e *editor) moveLine(delta int) {
	e.cur.Line += delta
	e.cur = e.doc.Clamp(e.cur)
}

func (e *editor) moveCol(delta int) {
	if delta < 0 && e.cur.Col == 0 {
		if e.cur.Line > 0 {
			e.cur.Line--
			e.cur.Col = len([]rune(e.doc.Lines[e.cur.Line].Text))
		}
		return
	}
	runes := []rune(e.line().Text)
	if delta > 0 && e.cur.Col >= len(runes) {
		if e.cur.Line < len(e.doc.Lines)-1 {
			e.cur.Line++
			e.cur.Col = 0
		}
		return
	}
	e.cur.Col += delta
	e.cur = e.doc.Clamp(e.cur)
}

func (e *editor) insert(s string) {
	i := e.cur.Line
	line := e.doc.Lines[i]
	// A placeholder-only line is visually empty: typing replaces it.
	if doc.StripPlaceholder(line.Text) == "" {
		line.Text = s
		e.doc.Lines[i] = line
		e.cur.Col = len([]rune(s))
		e.repair()
		return
	}
	runes := []rune(line.Text)
	col := e.cur.Col
	if col > len(runes) {
		col = len(runes)
	}
	line.Text = string(runes[:col]) + s + string(runes[col:])
	e.doc.Lines[i] = line
	e.cur.Col = col + len([]rune(s))
	e.repair()
}

// splitPlainLine handles Enter on a plain line: split at the cursor into two
// plain lines.
func (e *editor) splitPlainLine() {
	i := e.cur.Line
	line := e.doc.Lines[i]
	runes := []rune(line.Text)
	col := e.cur.Col
	if col > len(runes) {
		col = len(runes)
	}
	head := doc.Plain(string(runes[:col]))
	tail := doc.Plain(string(runes[col:]))

	lines := make([]doc.Line, 0, len(e.doc.Lines)+1)
	lines = append(lines, e.doc.Lines[:i]...)
	lines = append(lines, head, tail)
	lines = append(lines, e.doc.Lines[i+1:]...)
	e.doc.Lines = lines
	e.cur = doc.Cursor{Line: i + 1, Col: 0}
}

// deleteBack handles backspace when it is not a checklist un-toggle: delete
// the rune before the cursor, or merge with the previous line at offset 0.
func (e *editor) deleteBack() {
	i := e.cur.Line
	line := e.doc.Lines[i]
	runes := []rune(line.Text)
	col := e.cur.Col
	if col > len(runes) {
		col = len(runes)
	}
	if col > 0 {
		line.Text = string(runes[:col-1]) + string(runes[col:])
		e.doc.Lines[i] = line
		e.cur.Col = col - 1
		return
	}
	if i == 0 {
		return
	}
	prev := e.doc.Lines[i-1]
	prevText := doc.StripPlaceholder(prev.Text)
	curText := doc.StripPlaceholder(line.Text)
	prev.Text = prevText + curText
	e.doc.Lines[i-1] = prev
	e.doc.Lines = append(e.doc.Lines[:i], e.doc.Lines[i+1:]...)
	e.cur = doc.Cursor{Line: i - 1, Col: len([]rune(prevText))}
}

func (e *editor) view(width int, tr i18n.Translator) string {
	var b strings.Builder

	titleLabel := e.title.View()
	if e.focus == editorFocusTitle {
		titleLabel = renderInputLine(width, titleLabel)
	}
	b.WriteString(titleLabel)
	b.WriteString("\n\n")

	cursorStyle := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorAccent)

	for i, line := range e.doc.Lines {
		prefix := ""
		if line.Kind == doc.KindChecklist {
			if line.Checked {
				prefix = glyphCheckboxChecked() + " "
			} else {
				prefix = glyphCheckboxUnchecked() + " "
			}
		}

		text := doc.StripPlaceholder(line.Text)
		withCursor := e.focus == editorFocusBody && i == e.cur.Line
		if !withCursor {
			rendered := text
			if line.Kind == doc.KindChecklist && line.Checked {
				rendered = styleMuted().Strikethrough(true).Render(rendered)
			}
			b.WriteString(prefix + rendered)
		} else {
			b.WriteString(prefix + renderLineWithCursor(text, e.cursorDisplayCol(line), cursorStyle))
		}
		if i < len(e.doc.Lines)-1 {
			b.WriteString("\n")
		}
	}

	help := styleMuted().Render("ctrl+t: checklist   ctrl+x: check   tab: title   esc: back")
	return b.String() + "\n\n" + help
}

// cursorDisplayCol maps the stored cursor column onto the displayed text,
// which has the placeholder stripped.
func (e *editor) cursorDisplayCol(line doc.Line) int {
	col := e.cur.Col
	if strings.HasPrefix(line.Text, doc.Placeholder) && col > 0 {
		col--
	}
	display := []rune(doc.StripPlaceholder(line.Text))
	if col > len(display) {
		col = len(display)
	}
	return col
}

func renderLineWithCursor(text string, col int, cursorStyle lipgloss.Style) string {
	runes := []rune(text)
	if col >= len(runes) {
		return text + cursorStyle.Render(" ")
	}
	return string(runes[:col]) + cursorStyle.Render(string(runes[col])) + string(runes[col+1:])
}
