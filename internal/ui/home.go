package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/theme"
)

const (
	homeTitle    = "HAPPIE"
	homeSubtitle = "BY CHEF CHRISTOFFEL"
	homeHours    = "MEALS AVAILABLE BETWEEN 09:00AM TILL 10:00 PM"
)

func (m *Model) renderHome(styles *theme.Styles) screen {
	s := m.state
	lines := []styledLine{
		{text: homeTitle, style: styles.Title},
		{text: homeSubtitle, style: styles.Subtitle},
		{},
		{text: homeHours, style: styles.Hours},
		{},
	}

	summary := []string{styles.SectionTitle.Render("Average Prices by Course")}
	for _, course := range menu.Courses {
		summary = append(summary, styles.Text.Render(fmt.Sprintf("%s: R%s", course.Plural(), s.Average(course))))
	}
	summary = append(summary, "", styles.Text.Render(fmt.Sprintf("Total Menu Items: %d", s.Len())))
	lines = append(lines, rawBlock(styles.Card.Render(strings.Join(summary, "\n")))...)
	lines = append(lines, styledLine{})

	if s.Len() == 0 {
		lines = append(lines,
			styledLine{text: "No menu items yet!", style: styles.Empty},
			styledLine{text: `Use "Add to Menu" to create your first dish`, style: styles.Secondary},
		)
		return screen{lines: lines, focus: -1}
	}

	lines = append(lines, styledLine{text: "Our Menu", style: styles.SectionTitle})
	for _, group := range menu.GroupByCourse(s.Dishes, false) {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: group.Course.Plural(), style: styles.CourseTitle})
		lines = append(lines, dishLines(group.Dishes, styles)...)
	}
	return screen{lines: lines, focus: -1}
}
