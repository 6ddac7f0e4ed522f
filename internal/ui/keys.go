package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/happie-menu/internal/logging/events"
	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.notice != nil {
		return m.handleNoticeKey(keyMsg)
	}
	if cmd, handled := m.handleGlobalKey(keyMsg); handled {
		return cmd
	}
	switch m.state.View.Mode {
	case state.ModeHome:
		return m.handleHomeKey(keyMsg)
	case state.ModeAddMenu:
		return m.handleAddMenuKey(keyMsg)
	case state.ModeFilter:
		return m.handleFilterKey(keyMsg)
	}
	return nil
}

// handleGlobalKey covers keys that work on every screen, including while a
// text field has focus.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "f1":
		return m.dispatch(state.Navigate{Mode: state.ModeHome}), true
	case "f2":
		return m.dispatch(state.Navigate{Mode: state.ModeAddMenu}), true
	case "f3":
		return m.dispatch(state.Navigate{Mode: state.ModeFilter}), true
	case "ctrl+t":
		return m.dispatch(state.ToggleTheme{}), true
	}
	return nil, false
}

// handleShortcutKey covers the single-letter keys available wherever no text
// field has focus.
func (m *Model) handleShortcutKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "h":
		return m.dispatch(state.Navigate{Mode: state.ModeHome}), true
	case "a":
		return m.dispatch(state.Navigate{Mode: state.ModeAddMenu}), true
	case "f":
		return m.dispatch(state.Navigate{Mode: state.ModeFilter}), true
	case "t":
		return m.dispatch(state.ToggleTheme{}), true
	case "q":
		return m.quit(), true
	}
	return nil, false
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) handleScrollKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "pgup", "b":
		m.body.ViewUp()
	case "pgdown", " ":
		m.body.ViewDown()
	case "up", "k":
		m.body.LineUp(1)
	case "down", "j":
		m.body.LineDown(1)
	case "home", "g":
		m.body.GotoTop()
	case "end", "G":
		m.body.GotoBottom()
	}
	return nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, handled := m.handleShortcutKey(msg); handled {
		return cmd
	}
	return m.handleScrollKey(msg)
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	switch msg.String() {
	case "esc":
		return m.dispatch(state.Navigate{Mode: state.ModeHome})
	case "/":
		m.searching = true
		events.UI.Focus(state.ModeFilter.String(), "search")
		return m.search.Focus()
	case "left":
		return m.dispatch(state.SetFilter{Filter: m.state.View.Filter.Prev()})
	case "right":
		return m.dispatch(state.SetFilter{Filter: m.state.View.Filter.Next()})
	case "1", "2", "3", "4":
		idx := int(msg.Runes[0] - '1')
		return m.dispatch(state.SetFilter{Filter: menu.Filters[idx]})
	}
	if cmd, handled := m.handleShortcutKey(msg); handled {
		return cmd
	}
	return m.handleScrollKey(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return nil
	case "ctrl+u":
		m.search.SetValue("")
		return m.syncQuery()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return tea.Batch(cmd, m.syncQuery())
}

// syncQuery dispatches the search text when it differs from the state.
func (m *Model) syncQuery() tea.Cmd {
	if m.search.Value() == m.state.View.Query {
		return nil
	}
	m.body.GotoTop()
	return m.dispatch(state.SetQuery{Query: m.search.Value()})
}

func (m *Model) handleAddMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.dispatch(state.Navigate{Mode: state.ModeHome})
	case "ctrl+s":
		return m.submitDraft()
	case "tab":
		return m.moveFocus(m.form.next)
	case "shift+tab":
		return m.moveFocus(m.form.prev)
	}
	switch m.form.focus {
	case focusCourse:
		return m.handleCourseKey(msg)
	case focusSave:
		switch msg.String() {
		case "enter", " ":
			return m.submitDraft()
		}
		return nil
	case focusList:
		return m.handleListKey(msg)
	}
	return m.handleFieldKey(msg)
}

func (m *Model) moveFocus(step func() tea.Cmd) tea.Cmd {
	cmd := step()
	events.UI.Focus(state.ModeAddMenu.String(), m.form.focus.String())
	return cmd
}

func (m *Model) handleCourseKey(msg tea.KeyMsg) tea.Cmd {
	course := m.state.Draft.Course
	switch msg.String() {
	case "left", "h":
		return m.dispatch(state.SetDraftCourse{Course: course.Prev()})
	case "right", "l", " ":
		return m.dispatch(state.SetDraftCourse{Course: course.Next()})
	case "1", "2", "3":
		idx := int(msg.Runes[0] - '1')
		return m.dispatch(state.SetDraftCourse{Course: menu.Courses[idx]})
	case "enter":
		return m.moveFocus(m.form.next)
	}
	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.rows.MoveUp()
	case "down", "j":
		m.rows.MoveDown()
	case "home", "g":
		m.rows.MoveHome()
	case "end", "G":
		m.rows.MoveEnd()
	case "d", "x", "delete", "backspace":
		id, ok := m.rows.Current()
		if !ok {
			return nil
		}
		return m.dispatch(state.RemoveDish{ID: id})
	}
	return nil
}

// handleFieldKey edits the focused text field and mirrors the new value into
// the draft.
func (m *Model) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	field, ok := m.form.editing()
	if !ok {
		return nil
	}
	if msg.Type == tea.KeyEnter && field != state.FieldDescription {
		return m.moveFocus(m.form.next)
	}
	cmd := m.form.updateFocused(msg)
	if value := m.form.value(field); value != draftValue(m.state.Draft, field) {
		return tea.Batch(cmd, m.dispatch(state.UpdateDraft{Field: field, Value: value}))
	}
	return cmd
}

func (m *Model) submitDraft() tea.Cmd {
	return m.dispatch(state.AddDish{})
}

func draftValue(d state.Draft, field state.Field) string {
	switch field {
	case state.FieldName:
		return d.Name
	case state.FieldDescription:
		return d.Description
	case state.FieldPrice:
		return d.Price
	case state.FieldPairing:
		return d.Pairing
	}
	return ""
}
