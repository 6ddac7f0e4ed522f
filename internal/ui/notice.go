package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/happie-menu/internal/logging/events"
	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/state"
	"github.com/atomicstack/happie-menu/internal/theme"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// notice is a blocking message box. While one is open every key except the
// dismiss keys and ctrl+c is ignored.
type notice struct {
	kind  noticeKind
	title string
	body  string
}

const noticeHint = "enter to continue"

func (m *Model) showNotice(kind noticeKind, title, body string) {
	m.notice = &notice{kind: kind, title: title, body: body}
	m.form.blur()
	m.search.Blur()
	events.UI.Notice(title, body)
}

// Notice returns the title and body of the open notice.
func (m *Model) Notice() (title, body string, ok bool) {
	if m.notice == nil {
		return "", "", false
	}
	return m.notice.title, m.notice.body, true
}

func (m *Model) dismissNotice() tea.Cmd {
	if m.notice == nil {
		return nil
	}
	events.UI.NoticeDismissed(m.notice.title)
	m.notice = nil
	switch {
	case m.state.View.Mode == state.ModeAddMenu:
		return m.form.focusCurrent()
	case m.searching:
		return m.search.Focus()
	}
	return nil
}

func (m *Model) handleNoticeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", " ":
		return m.dismissNotice()
	}
	return nil
}

func rejectionMessage(err error) string {
	var verr *menu.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if err != nil {
		return err.Error()
	}
	return menu.MsgMissingFields
}

func renderNotice(n *notice, styles *theme.Styles) string {
	titleStyle := styles.NoticeTitle
	if n.kind == noticeError {
		titleStyle = styles.NoticeError
	}
	lines := []string{
		titleStyle.Render(n.title),
		"",
		styles.Text.Render(n.body),
		"",
		styles.NoticeHint.Render(noticeHint),
	}
	return styles.Notice.Render(strings.Join(lines, "\n"))
}

// viewNotice centres the notice box over the screen.
func (m *Model) viewNotice(styles *theme.Styles) string {
	box := renderNotice(m.notice, styles)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
