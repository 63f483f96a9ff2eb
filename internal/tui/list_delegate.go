package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCompactItemDelegate() compactItemDelegate {
	return compactItemDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d compactItemDelegate) Height() int  { return 1 }
func (d compactItemDelegate) Spacing() int { return 0 }
func (d compactItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	fmt.Fprint(w, style.Render(fitLine(txt, contentW)))
}

// noteCardDelegate renders two-line note cards: title, then preview + date.
type noteCardDelegate struct {
	title    lipgloss.Style
	selected lipgloss.Style
	meta     lipgloss.Style
}

func newNoteCardDelegate() noteCardDelegate {
	return noteCardDelegate{
		title: lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		meta: styleMuted(),
	}
}

func (d noteCardDelegate) Height() int  { return 2 }
func (d noteCardDelegate) Spacing() int { return 1 }
func (d noteCardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d noteCardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	it, ok := item.(noteItem)
	if !ok {
		fmt.Fprint(w, fmt.Sprint(item))
		return
	}

	titleStyle := d.title
	if index == m.Index() {
		titleStyle = d.selected
	}

	title := fitLine(it.Title(), contentW)
	meta := fitLine(it.Description(), contentW)
	fmt.Fprint(w, titleStyle.Render(title)+"\n"+d.meta.Render(meta))
}

func fitLine(line string, w int) string {
	lineW := xansi.StringWidth(line)
	if lineW < w {
		return line + strings.Repeat(" ", w-lineW)
	}
	if lineW > w {
		return xansi.Cut(line, 0, w)
	}
	return line
}
