package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/happie-menu/internal/format/table"
	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/theme"
)

const (
	saveLabel      = "Save your Happie"
	rowIndicator   = "› "
	rowPlaceholder = "  "
)

var listColumns = []table.Column{
	{Max: 40},
	{},
}

func (m *Model) renderAddMenu(styles *theme.Styles) screen {
	s := m.state
	f := m.form
	width := fieldWidth(m.width)
	focusLine := -1

	lines := []styledLine{
		{text: "Add Menu Item", style: styles.Title},
		{text: "Insert Information here", style: styles.Secondary},
		{},
	}
	mark := func(target formFocus) {
		if f.focus == target {
			focusLine = len(lines)
		}
	}

	field := func(label string, target formFocus, view string) {
		lines = append(lines, styledLine{text: label, style: styles.Label})
		style := styles.Field
		if f.focus == target {
			style = styles.FieldFocused
		}
		block := rawBlock(style.Width(width + 2).Render(view))
		// keep the whole box on screen, not just its top border
		if f.focus == target {
			focusLine = len(lines) + len(block) - 1
		}
		lines = append(lines, block...)
	}

	field("Name of Dish", focusName, f.name.View())

	lines = append(lines, styledLine{text: "Course", style: styles.Label})
	mark(focusCourse)
	courseLine := courseChoices(s.Draft.Course, styles)
	if f.focus == focusCourse {
		courseLine = styles.RowIndicator.Render(rowIndicator) + courseLine
	} else {
		courseLine = rowPlaceholder + courseLine
	}
	lines = append(lines, styledLine{text: courseLine, raw: true})

	field("Description", focusDescription, f.description.View())
	field("Price", focusPrice, f.price.View())
	field("Pairs well with", focusPairing, f.pairing.View())

	lines = append(lines, styledLine{})
	mark(focusSave)
	button := styles.Button
	if f.focus == focusSave {
		button = styles.ButtonFocused
	}
	lines = append(lines, styledLine{text: button.Render(saveLabel), raw: true})
	lines = append(lines, styledLine{})

	lines = append(lines, styledLine{
		text:  fmt.Sprintf("Current Menu Items (%d)", s.Len()),
		style: styles.SectionTitle,
	})
	if s.Len() == 0 {
		mark(focusList)
		lines = append(lines, styledLine{
			text:  "No menu items yet. Add your first dish above!",
			style: styles.Empty,
		})
		return screen{lines: lines, focus: focusLine}
	}
	lines = append(lines, styledLine{text: "Press d to remove an item", style: styles.Secondary})

	rows := make([][]string, len(s.Dishes))
	for i, d := range s.Dishes {
		rows[i] = []string{d.Name, listDetail(d)}
	}
	formatted := table.Format(rows, listColumns)
	current, _ := m.rows.Current()
	for i, d := range s.Dishes {
		selected := f.focus == focusList && d.ID == current
		if selected {
			focusLine = len(lines)
			lines = append(lines, styledLine{
				text: lipgloss.JoinHorizontal(lipgloss.Top,
					styles.RowIndicator.Render(rowIndicator),
					styles.RowSelected.Render(formatted[i]),
				),
				raw: true,
			})
			continue
		}
		lines = append(lines, styledLine{text: rowPlaceholder + formatted[i], style: styles.Row})
	}
	return screen{lines: lines, focus: focusLine}
}

// listDetail is the secondary column of a row on the Add Menu list.
func listDetail(d menu.Dish) string {
	return fmt.Sprintf("%s - %s", d.Course, d.PriceLabel())
}

func courseChoices(active menu.Course, styles *theme.Styles) string {
	labels := make([]string, len(menu.Courses))
	current := 0
	for i, c := range menu.Courses {
		labels[i] = c.String()
		if c == active {
			current = i
		}
	}
	return renderChoices(labels, current, styles)
}
