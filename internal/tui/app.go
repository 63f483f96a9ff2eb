package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/model"
	"github.com/wrathitsfinest/notes/internal/repo"
	"github.com/wrathitsfinest/notes/internal/storage"
)

type view int

const (
	viewGroups view = iota
	viewNotes
	viewEditor
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewGroup
	modalEditGroup
	modalConfirmDeleteGroup
	modalConfirmDeleteNote
	modalPickNoteColor
	modalPickMoveGroup
)

type groupModalFocus int

const (
	groupFocusName groupModalFocus = iota
	groupFocusColor
)

// saveDoneMsg fires when the autosave debounce window elapses. Only the
// latest seq wins; earlier ticks are stale.
type saveDoneMsg struct{ seq int }

const saveDebounce = 500 * time.Millisecond

type appModel struct {
	store storage.Store
	repo  *repo.Repository
	st    *repo.State
	log   zerolog.Logger
	tr    i18n.Translator

	width  int
	height int

	view view

	groupsList list.Model
	notesList  list.Model
	pickList   list.Model

	selectedGroupID string
	openNoteID      int64

	ed      editor
	saveSeq int

	modal        modalKind
	modalForID   string
	input        textinput.Model
	colorList    list.Model
	groupFocus   groupModalFocus
	confirmFocus confirmModalFocus
}

func newAppModel(s storage.Store, log zerolog.Logger) appModel {
	r := repo.New(s, log)
	ctx := context.Background()
	st := r.Load(ctx)

	lang := r.Pref(ctx, storage.KeyLanguage, i18n.Default)
	tr := i18n.New(lang)

	m := appModel{
		store:           s,
		repo:            r,
		st:              st,
		log:             log,
		tr:              tr,
		view:            viewGroups,
		selectedGroupID: model.DefaultGroupID,
	}

	m.groupsList = newList("Groups", []list.Item{})
	m.groupsList.SetDelegate(newCompactItemDelegate())

	m.notesList = newList("Notes", []list.Item{})
	m.notesList.SetDelegate(newNoteCardDelegate())

	m.pickList = newList("Pick", []list.Item{})
	m.pickList.SetDelegate(newCompactItemDelegate())
	m.pickList.SetFilteringEnabled(false)

	m.colorList = newList("Color", []list.Item{})
	m.colorList.SetDelegate(newCompactItemDelegate())
	m.colorList.SetFilteringEnabled(false)

	m.input = textinput.New()
	m.input.Placeholder = tr.T("modal_name_placeholder")
	m.input.CharLimit = 100
	m.input.Width = 40

	m.ed = newEditor(tr)

	m.refreshGroups()

	// Best-effort: restore the last screen.
	m.applySavedUIState(r.LoadUIState(ctx))
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case saveDoneMsg:
		if msg.seq == m.saveSeq {
			m.flushSave()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.flushSave()
			m.saveUIState()
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		switch m.view {
		case viewGroups:
			return m.updateGroups(msg)
		case viewNotes:
			return m.updateNotes(msg)
		case viewEditor:
			return m.updateEditor(msg)
		}
	}

	return m, nil
}

func (m appModel) updateGroups(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.groupsList.SettingFilter() {
		switch msg.String() {
		case "q":
			m.saveUIState()
			return m, tea.Quit
		case "enter":
			if it, ok := m.groupsList.SelectedItem().(groupItem); ok {
				m.selectedGroupID = it.group.ID
				m.st.CurrentGroupID = it.group.ID
				m.view = viewNotes
				m.refreshNotes()
				m.saveUIState()
			}
			return m, nil
		case "n":
			m.openGroupModal(modalNewGroup, model.Group{})
			return m, nil
		case "e":
			if it, ok := m.groupsList.SelectedItem().(groupItem); ok && !it.allNotes {
				m.openGroupModal(modalEditGroup, it.group)
			}
			return m, nil
		case "d":
			if it, ok := m.groupsList.SelectedItem().(groupItem); ok && !it.allNotes {
				m.modal = modalConfirmDeleteGroup
				m.modalForID = it.group.ID
				m.confirmFocus = confirmFocusCancel
			}
			return m, nil
		case "T":
			m.toggleTheme()
			return m, nil
		case "C":
			m.cycleColorTheme()
			return m, nil
		case "L":
			m.cycleLanguage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.groupsList, cmd = m.groupsList.Update(msg)
	return m, cmd
}

func (m appModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.notesList.SettingFilter() {
		switch msg.String() {
		case "q":
			m.saveUIState()
			return m, tea.Quit
		case "esc", "backspace":
			m.view = viewGroups
			m.refreshGroups()
			m.saveUIState()
			return m, nil
		case "enter":
			if it, ok := m.notesList.SelectedItem().(noteItem); ok {
				m.openNote(it.note)
			}
			return m, nil
		case "n":
			n := m.repo.CreateNote(context.Background(), m.st, m.selectedGroupID)
			m.refreshNotes()
			m.openNote(n)
			return m, nil
		case "d":
			if it, ok := m.notesList.SelectedItem().(noteItem); ok {
				m.modal = modalConfirmDeleteNote
				m.modalForID = fmt.Sprintf("%d", it.note.ID)
				m.openNoteID = it.note.ID
				m.confirmFocus = confirmFocusCancel
			}
			return m, nil
		case "c":
			if it, ok := m.notesList.SelectedItem().(noteItem); ok {
				m.openNoteID = it.note.ID
				m.openColorPicker(modalPickNoteColor, it.note.Color)
			}
			return m, nil
		case "m":
			if it, ok := m.notesList.SelectedItem().(noteItem); ok {
				m.openNoteID = it.note.ID
				m.openMovePicker()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.notesList, cmd = m.notesList.Update(msg)
	return m, cmd
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.flushSave()
		m.view = viewNotes
		m.refreshNotes()
		m.saveUIState()
		return m, nil
	case "ctrl+s":
		m.flushSave()
		return m, nil
	}

	cmd, handled := m.ed.handleKey(msg)
	if !handled {
		return m, cmd
	}
	if m.ed.dirty {
		m.saveSeq++
		seq := m.saveSeq
		return m, tea.Batch(cmd, tea.Tick(saveDebounce, func(time.Time) tea.Msg {
			return saveDoneMsg{seq}
		}))
	}
	return m, cmd
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(m.headerText())

	var body string
	switch m.view {
	case viewGroups:
		body = m.groupsList.View()
	case viewNotes:
		body = m.notesList.View()
	case viewEditor:
		body = m.ed.view(m.bodyWidth(), m.tr)
	}

	footer := styleMuted().Render(m.footerText())
	base := strings.Join([]string{header, body, footer}, "\n\n")

	if m.modal != modalNone {
		return placeCentered(m.width, m.height, m.viewModal())
	}
	return base
}

func (m appModel) headerText() string {
	switch m.view {
	case viewNotes:
		return m.groupDisplayName(m.selectedGroupID)
	case viewEditor:
		if n, ok := m.st.FindNote(m.openNoteID); ok {
			return noteDisplayTitle(*n, m.tr)
		}
		return m.tr.T("app_title")
	default:
		return m.tr.T("app_title")
	}
}

func (m appModel) footerText() string {
	switch m.view {
	case viewGroups:
		stats := m.tr.T("sidebar_stats",
			"groups", fmt.Sprintf("%d %s", len(m.st.Groups), m.pluralKey(len(m.st.Groups), "group_singular", "group_plural")),
			"notes", fmt.Sprintf("%d %s", len(m.st.Notes), m.pluralKey(len(m.st.Notes), "note_singular", "note_plural")),
		)
		return stats + "   n: " + m.tr.T("new_group") + "   T/C/L: theme/accent/" + strings.ToLower(m.tr.T("language")) + "   q: quit"
	case viewNotes:
		if len(m.notesList.Items()) == 0 {
			return m.tr.T("no_notes_in_group") + ". " + m.tr.T("click_new_note")
		}
		return "n: " + m.tr.T("new_note") + "   d: " + m.tr.T("delete_note") + "   c: " + m.tr.T("label_color") + "   m: " + m.tr.T("label_category") + "   esc: " + m.tr.T("back_to_notes")
	default:
		return ""
	}
}

func (m appModel) pluralKey(n int, singular, plural string) string {
	if n == 1 {
		return m.tr.T(singular)
	}
	return m.tr.T(plural)
}

func (m *appModel) resizeLists() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.bodyWidth()
	m.groupsList.SetSize(w, h)
	m.notesList.SetSize(w, h)
	m.pickList.SetSize(modalBodyWidth(m.width), 8)
	m.colorList.SetSize(modalBodyWidth(m.width), 8)
}

func (m appModel) bodyWidth() int {
	w := m.width
	if w < 40 {
		w = 40
	}
	return w
}

func (m appModel) groupDisplayName(id string) string {
	if id == model.DefaultGroupID {
		return m.tr.T("all_notes")
	}
	if g, ok := m.st.FindGroup(id); ok {
		return g.Name
	}
	return m.tr.T("all_notes")
}

func (m *appModel) refreshGroups() {
	curID := m.selectedGroupID
	items := []list.Item{groupItem{
		group:    model.Group{ID: model.DefaultGroupID, Name: m.tr.T("all_notes")},
		count:    len(m.st.NotesInGroup(model.DefaultGroupID)),
		current:  m.st.CurrentGroupID == model.DefaultGroupID,
		allNotes: true,
	}}
	for _, g := range m.st.Groups {
		items = append(items, groupItem{
			group:   g,
			count:   len(m.st.NotesInGroup(g.ID)),
			current: g.ID == m.st.CurrentGroupID,
		})
	}
	m.groupsList.SetItems(items)
	for i, it := range items {
		if gi, ok := it.(groupItem); ok && gi.group.ID == curID {
			m.groupsList.Select(i)
			break
		}
	}
}

func (m *appModel) refreshNotes() {
	curID := m.openNoteID
	now := time.Now().UTC()
	var items []list.Item
	for _, n := range m.st.NotesInGroup(m.selectedGroupID) {
		it := newNoteItem(n, now, m.tr)
		if strings.TrimSpace(n.Title) == "" {
			it.note.Title = m.tr.T("untitled_note")
		}
		items = append(items, it)
	}
	m.notesList.SetItems(items)
	for i, it := range items {
		if ni, ok := it.(noteItem); ok && ni.note.ID == curID {
			m.notesList.Select(i)
			break
		}
	}
}

func (m *appModel) openNote(n model.Note) {
	if fresh, ok := m.st.FindNote(n.ID); ok {
		n = *fresh
	}
	m.openNoteID = n.ID
	m.ed.load(n)
	m.view = viewEditor
	m.saveUIState()
}

// flushSave persists the open note immediately and cancels any pending
// debounce tick by bumping the sequence.
func (m *appModel) flushSave() {
	if !m.ed.dirty {
		return
	}
	m.saveSeq++
	res := m.repo.UpdateNoteContent(context.Background(), m.st, m.openNoteID, m.ed.titleValue(), m.ed.content())
	if res.Changed {
		m.ed.dirty = false
	}
}

func (m *appModel) toggleTheme() {
	dark := !lipgloss.HasDarkBackground()
	lipgloss.SetHasDarkBackground(dark)
	pref := "light"
	if dark {
		pref = "dark"
	}
	m.repo.SetPref(context.Background(), storage.KeyTheme, pref)
}

func (m *appModel) cycleColorTheme() {
	ctx := context.Background()
	cur := m.repo.Pref(ctx, storage.KeyColorTheme, DefaultColorTheme)
	names := ColorThemes()
	next := names[0]
	for i, n := range names {
		if n == cur {
			next = names[(i+1)%len(names)]
			break
		}
	}
	applyColorTheme(next)
	m.repo.SetPref(ctx, storage.KeyColorTheme, next)
}

func (m *appModel) cycleLanguage() {
	ctx := context.Background()
	langs := i18n.Languages()
	cur := m.tr.Lang()
	next := langs[0]
	for i, l := range langs {
		if l == cur {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	m.tr = i18n.New(next)
	m.repo.SetPref(ctx, storage.KeyLanguage, next)
	m.input.Placeholder = m.tr.T("modal_name_placeholder")
	m.ed.title.Placeholder = m.tr.T("note_title_placeholder")
	m.refreshGroups()
	m.refreshNotes()
}

func (m *appModel) applySavedUIState(st repo.UIState) {
	if st.SelectedGroupID != "" {
		if _, ok := m.st.FindGroup(st.SelectedGroupID); ok || st.SelectedGroupID == model.DefaultGroupID {
			m.selectedGroupID = st.SelectedGroupID
		}
	}
	switch st.View {
	case "notes":
		m.view = viewNotes
		m.refreshNotes()
	case "editor":
		if n, ok := m.st.FindNote(st.OpenNoteID); ok {
			m.refreshNotes()
			m.openNote(*n)
		} else {
			m.view = viewNotes
			m.refreshNotes()
		}
	}
}

func (m *appModel) saveUIState() {
	viewName := "groups"
	switch m.view {
	case viewNotes:
		viewName = "notes"
	case viewEditor:
		viewName = "editor"
	}
	st := repo.UIState{
		Version:         1,
		View:            viewName,
		SelectedGroupID: m.selectedGroupID,
	}
	if m.view == viewEditor {
		st.OpenNoteID = m.openNoteID
	}
	m.repo.SaveUIState(context.Background(), st)
}
