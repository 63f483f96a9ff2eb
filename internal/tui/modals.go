package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/model"
)

func colorOptions(tr i18n.Translator) []list.Item {
	labels := map[model.Color]string{
		model.ColorNone:   tr.T("no_category"),
		model.ColorRed:    "Red",
		model.ColorOrange: "Orange",
		model.ColorYellow: "Yellow",
		model.ColorGreen:  "Green",
		model.ColorBlue:   "Blue",
		model.ColorPurple: "Purple",
	}
	var items []list.Item
	for _, c := range model.Palette {
		items = append(items, colorOptionItem{color: c, label: labels[c]})
	}
	return items
}

func (m *appModel) openGroupModal(kind modalKind, g model.Group) {
	m.modal = kind
	m.modalForID = g.ID
	m.groupFocus = groupFocusName
	m.input.SetValue(g.Name)
	m.input.Focus()
	m.input.CursorEnd()
	m.colorList.SetItems(colorOptions(m.tr))
	for i, it := range m.colorList.Items() {
		if ci, ok := it.(colorOptionItem); ok && ci.color == g.Color {
			m.colorList.Select(i)
			break
		}
	}
}

func (m *appModel) openColorPicker(kind modalKind, current model.Color) {
	m.modal = kind
	m.colorList.SetItems(colorOptions(m.tr))
	for i, it := range m.colorList.Items() {
		if ci, ok := it.(colorOptionItem); ok && ci.color == current {
			m.colorList.Select(i)
			break
		}
	}
}

func (m *appModel) openMovePicker() {
	m.modal = modalPickMoveGroup
	items := []list.Item{pickOptionItem{id: model.DefaultGroupID, label: m.tr.T("all_notes")}}
	for _, g := range m.st.Groups {
		items = append(items, pickOptionItem{id: g.ID, label: g.Name})
	}
	m.pickList.SetItems(items)
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.modalForID = ""
	m.input.SetValue("")
	m.input.Blur()
	m.groupFocus = groupFocusName
	m.confirmFocus = confirmFocusCancel
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.closeModal()
		return m, nil
	}

	switch m.modal {
	case modalNewGroup, modalEditGroup:
		return m.updateGroupModal(msg)
	case modalConfirmDeleteGroup:
		return m.updateConfirm(msg, m.confirmDeleteGroup)
	case modalConfirmDeleteNote:
		return m.updateConfirm(msg, m.confirmDeleteNote)
	case modalPickNoteColor:
		if msg.String() == "enter" {
			if it, ok := m.colorList.SelectedItem().(colorOptionItem); ok {
				m.repo.SetNoteColor(context.Background(), m.st, m.openNoteID, it.color)
				m.refreshNotes()
			}
			m.closeModal()
			return m, nil
		}
		var cmd tea.Cmd
		m.colorList, cmd = m.colorList.Update(msg)
		return m, cmd
	case modalPickMoveGroup:
		if msg.String() == "enter" {
			if it, ok := m.pickList.SelectedItem().(pickOptionItem); ok {
				m.repo.MoveNote(context.Background(), m.st, m.openNoteID, it.id)
				m.refreshGroups()
				m.refreshNotes()
			}
			m.closeModal()
			return m, nil
		}
		var cmd tea.Cmd
		m.pickList, cmd = m.pickList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateGroupModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		if m.groupFocus == groupFocusName {
			m.groupFocus = groupFocusColor
			m.input.Blur()
		} else {
			m.groupFocus = groupFocusName
			m.input.Focus()
		}
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		color := model.ColorNone
		if it, ok := m.colorList.SelectedItem().(colorOptionItem); ok {
			color = it.color
		}
		ctx := context.Background()
		var err error
		if m.modal == modalNewGroup {
			_, err = m.repo.CreateGroup(ctx, m.st, name, color)
		} else {
			err = m.repo.RenameGroup(ctx, m.st, m.modalForID, name, color)
		}
		if err != nil {
			// Keep the modal open so the name can be fixed.
			m.log.Debug().Err(err).Msg("group modal rejected")
			return m, nil
		}
		m.closeModal()
		m.refreshGroups()
		return m, nil
	}

	if m.groupFocus == groupFocusColor {
		var cmd tea.Cmd
		m.colorList, cmd = m.colorList.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg, confirm func()) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		confirm()
		m.closeModal()
		return m, nil
	case "n":
		m.closeModal()
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			confirm()
		}
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m *appModel) confirmDeleteGroup() {
	ctx := context.Background()
	res, err := m.repo.DeleteGroup(ctx, m.st, m.modalForID)
	if err != nil {
		m.log.Warn().Err(err).Str("group", m.modalForID).Msg("delete group rejected")
		return
	}
	if res.Deleted && m.selectedGroupID == m.modalForID {
		m.selectedGroupID = model.DefaultGroupID
	}
	m.refreshGroups()
}

func (m *appModel) confirmDeleteNote() {
	m.repo.DeleteNote(context.Background(), m.st, m.openNoteID)
	m.refreshGroups()
	m.refreshNotes()
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalNewGroup, modalEditGroup:
		title := m.tr.T("create_new_group")
		if m.modal == modalEditGroup {
			title = m.tr.T("edit_group")
		}
		bodyW := modalBodyWidth(m.width)
		content := strings.Join([]string{
			renderInputLine(bodyW, m.input.View()),
			"",
			m.tr.T("label_color"),
			m.colorList.View(),
			"",
			styleMuted().Render("tab: focus   enter: " + strings.ToLower(m.tr.T("save")) + "   esc: " + strings.ToLower(m.tr.T("cancel"))),
		}, "\n")
		return renderModalBox(m.width, title, content)

	case modalConfirmDeleteGroup:
		name := m.modalForID
		if g, ok := m.st.FindGroup(m.modalForID); ok {
			name = g.Name
		}
		return renderConfirmModal(m.width,
			m.tr.T("delete_group"),
			m.tr.T("confirm_delete_group", "name", name),
			m.tr.T("delete_group"), m.tr.T("cancel"), m.confirmFocus)

	case modalConfirmDeleteNote:
		return renderConfirmModal(m.width,
			m.tr.T("delete_note"),
			m.tr.T("confirm_delete_note"),
			m.tr.T("delete_note"), m.tr.T("cancel"), m.confirmFocus)

	case modalPickNoteColor:
		return renderModalBox(m.width, m.tr.T("label_color"), m.colorList.View())

	case modalPickMoveGroup:
		return renderModalBox(m.width, m.tr.T("label_category"), m.pickList.View())
	}
	return ""
}
