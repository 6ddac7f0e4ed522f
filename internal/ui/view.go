package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/happie-menu/internal/format/table"
	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/state"
	"github.com/atomicstack/happie-menu/internal/theme"
	uistate "github.com/atomicstack/happie-menu/internal/ui/state"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already rendered; skip style wrapping
}

// screen is the body of one mode. focus is the line that must stay visible,
// or -1 when the body scrolls freely.
type screen struct {
	lines []styledLine
	focus int
}

const headerRows = 1

var dishColumns = []table.Column{
	{Max: 40},
	{Align: table.AlignRight},
}

// View implements tea.Model.
func (m *Model) View() string {
	styles := m.Styles()
	if m.notice != nil {
		return m.viewNotice(styles)
	}

	var body screen
	switch m.state.View.Mode {
	case state.ModeAddMenu:
		body = m.renderAddMenu(styles)
	case state.ModeFilter:
		body = m.renderFilter(styles)
	default:
		body = m.renderHome(styles)
	}

	header := applyWidth([]styledLine{m.themeIndicator(styles)}, m.width)
	bottom := m.bottomLines(styles)
	content := renderLines(applyWidth(body.lines, m.width))

	parts := make([]string, 0, 2+len(bottom))
	parts = append(parts, renderLines(header))
	parts = append(parts, m.renderBody(content, len(body.lines), body.focus, m.bodyHeight(len(bottom))))
	parts = append(parts, bottom...)
	return strings.Join(parts, "\n")
}

func (m *Model) bodyHeight(bottomRows int) int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - headerRows - bottomRows
	if h < 1 {
		h = 1
	}
	return h
}

// renderBody places content in the scrolling viewport. Without a known
// terminal height the content is returned whole.
func (m *Model) renderBody(content string, total, focus, height int) string {
	if height <= 0 {
		return content
	}
	m.body.Width = m.width
	m.body.Height = height
	m.body.SetContent(content)
	if focus >= 0 {
		m.body.SetYOffset(uistate.ScrollToLine(m.body.YOffset, height, total, focus))
	}
	return m.body.View()
}

func (m *Model) themeIndicator(styles *theme.Styles) styledLine {
	name := "light"
	if m.state.View.DarkMode {
		name = "dark"
	}
	return styledLine{
		text:  fmt.Sprintf("theme: %s (ctrl+t)", name),
		style: styles.ThemeIndicator,
	}
}

func (m *Model) bottomLines(styles *theme.Styles) []string {
	lines := strings.Split(m.renderNavBar(styles), "\n")
	if m.showFooter {
		footer := applyWidth([]styledLine{{text: m.footerText(), style: styles.Footer}}, m.width)
		lines = append(lines, renderLines(footer))
	}
	return lines
}

func (m *Model) renderNavBar(styles *theme.Styles) string {
	items := make([]string, 0, len(state.Modes))
	for i, mode := range state.Modes {
		label := fmt.Sprintf("F%d %s", i+1, mode.Label())
		style := styles.NavItem
		if mode == m.state.View.Mode {
			style = styles.NavActive
		}
		items = append(items, style.Render(label))
	}
	bar := fitWidth(lipgloss.JoinHorizontal(lipgloss.Top, items...), m.width)
	return styles.NavBar.Width(m.width).Render(bar)
}

func (m *Model) footerText() string {
	switch m.state.View.Mode {
	case state.ModeAddMenu:
		if m.form.focus == focusList {
			return "↑/↓ move  d remove  tab next  esc home  ctrl+c quit"
		}
		return "tab next  enter confirm  ctrl+s save  esc home  ctrl+c quit"
	case state.ModeFilter:
		if m.searching {
			return "type to search  ctrl+u clear  enter/esc done"
		}
		return "←/→ or 1-4 filter  / search  pgup/pgdn scroll  esc home  t theme  q quit"
	default:
		return "h a f navigate  pgup/pgdn scroll  t theme  q quit"
	}
}

// dishLines renders one course bucket as aligned name and price rows, each
// followed by its description and pairing.
func dishLines(dishes []menu.Dish, styles *theme.Styles) []styledLine {
	rows := make([][]string, len(dishes))
	for i, d := range dishes {
		rows[i] = []string{d.Name, d.PriceLabel()}
	}
	formatted := table.Format(rows, dishColumns)
	lines := make([]styledLine, 0, len(dishes)*2)
	for i, d := range dishes {
		lines = append(lines, styledLine{text: "  " + formatted[i], style: styles.DishName})
		if desc := strings.TrimSpace(d.Description); desc != "" {
			for _, part := range strings.Split(desc, "\n") {
				lines = append(lines, styledLine{text: "    " + part, style: styles.Secondary})
			}
		}
		if pairing := strings.TrimSpace(d.Pairing); pairing != "" {
			lines = append(lines, styledLine{text: "    Pairs well with: " + pairing, style: styles.Secondary})
		}
	}
	return lines
}

// rawBlock splits a pre-rendered multi-line block into body lines.
func rawBlock(block string) []styledLine {
	parts := strings.Split(block, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:  fitWidth(line.text, width),
			style: line.style,
			raw:   line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// fitWidth truncates text, which may contain ANSI escapes, to width cells.
func fitWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
