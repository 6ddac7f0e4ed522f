package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/theme"
)

const searchDefaultWidth = 30

func newSearchInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search dishes"
	input.CharLimit = 60
	input.Width = searchDefaultWidth
	return input
}

func searchWidth(width int) int {
	if width <= 0 {
		return searchDefaultWidth
	}
	w := width - 4
	if w < 1 {
		w = 1
	}
	if w > searchDefaultWidth*2 {
		w = searchDefaultWidth * 2
	}
	return w
}

func (m *Model) renderFilter(styles *theme.Styles) screen {
	s := m.state
	lines := []styledLine{
		{text: "Select (1) Meal from each course", style: styles.Title},
		{},
		{text: "Menu", style: styles.SectionTitle},
		{text: filterChoices(s.View.Filter, styles), raw: true},
	}

	switch {
	case m.searching:
		lines = append(lines, styledLine{text: m.search.View(), raw: true})
	case s.View.Query != "":
		lines = append(lines, styledLine{
			text:  fmt.Sprintf("search: %s  (/ to edit)", s.View.Query),
			style: styles.SearchPrompt,
		})
	}
	lines = append(lines, styledLine{})

	if s.Len() == 0 {
		lines = append(lines, styledLine{
			text:  "No menu items available yet. Add some items first!",
			style: styles.Empty,
		})
		return screen{lines: lines, focus: -1}
	}

	keepEmpty := s.View.Filter == menu.FilterAll
	groups := menu.GroupByCourse(s.Visible(), keepEmpty)
	if len(groups) == 0 {
		lines = append(lines, styledLine{text: "No dishes match.", style: styles.Empty})
		return screen{lines: lines, focus: -1}
	}
	for i, group := range groups {
		if i > 0 {
			lines = append(lines, styledLine{})
		}
		lines = append(lines, styledLine{text: group.Course.Plural(), style: styles.CourseTitle})
		if group.Empty() {
			lines = append(lines, styledLine{
				text:  fmt.Sprintf("  No %s available.", strings.ToLower(group.Course.String())),
				style: styles.Empty,
			})
			continue
		}
		lines = append(lines, dishLines(group.Dishes, styles)...)
	}
	return screen{lines: lines, focus: -1}
}

// renderChoices draws a one-line selector with the active option highlighted.
func renderChoices(labels []string, active int, styles *theme.Styles) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := styles.Choice
		if i == active {
			style = styles.ChoiceActive
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, " ")
}

func filterChoices(active menu.Filter, styles *theme.Styles) string {
	labels := make([]string, len(menu.Filters))
	current := 0
	for i, f := range menu.Filters {
		labels[i] = f.Label()
		if f == active {
			current = i
		}
	}
	return renderChoices(labels, current, styles)
}
