package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Dark bool

	Title          *lipgloss.Style
	Subtitle       *lipgloss.Style
	Text           *lipgloss.Style
	Secondary      *lipgloss.Style
	Hours          *lipgloss.Style
	Card           *lipgloss.Style
	SectionTitle   *lipgloss.Style
	CourseTitle    *lipgloss.Style
	DishName       *lipgloss.Style
	DishPrice      *lipgloss.Style
	Label          *lipgloss.Style
	Choice         *lipgloss.Style
	ChoiceActive   *lipgloss.Style
	Field          *lipgloss.Style
	FieldFocused   *lipgloss.Style
	Button         *lipgloss.Style
	ButtonFocused  *lipgloss.Style
	Row            *lipgloss.Style
	RowSelected    *lipgloss.Style
	RowIndicator   *lipgloss.Style
	NavItem        *lipgloss.Style
	NavActive      *lipgloss.Style
	NavBar         *lipgloss.Style
	Notice         *lipgloss.Style
	NoticeTitle    *lipgloss.Style
	NoticeError    *lipgloss.Style
	NoticeHint     *lipgloss.Style
	Footer         *lipgloss.Style
	Empty          *lipgloss.Style
	SearchPrompt   *lipgloss.Style
	ThemeIndicator *lipgloss.Style
}

type palette struct {
	background string
	text       string
	secondary  string
	card       string
	border     string
	button     string
}

const (
	accent     = "#4CAF50"
	accentSoft = "#E8F5E9"
	saveButton = "#2C2C2C"
	errorRed   = "#E53E3E"
)

var (
	lightPalette = palette{
		background: "#FFFFFF",
		text:       "#000000",
		secondary:  "#666666",
		card:       "#FFFFFF",
		border:     "#E0E0E0",
		button:     "#E5E5E5",
	}
	darkPalette = palette{
		background: "#1A202C",
		text:       "#FFFFFF",
		secondary:  "#A0AEC0",
		card:       "#2D3748",
		border:     "#4A5568",
		button:     "#4A5568",
	}
)

var (
	lightStyles = build(lightPalette, false)
	darkStyles  = build(darkPalette, true)
)

// Light is the default style set.
func Light() *Styles {
	return &lightStyles
}

// Dark is the style set used when dark mode is on.
func Dark() *Styles {
	return &darkStyles
}

// For picks the style set for the dark-mode flag.
func For(dark bool) *Styles {
	if dark {
		return Dark()
	}
	return Light()
}

func build(p palette, dark bool) Styles {
	text := lipgloss.Color(p.text)
	secondary := lipgloss.Color(p.secondary)
	border := lipgloss.Color(p.border)
	return Styles{
		Dark: dark,
		Title: ptr(
			lipgloss.NewStyle().Foreground(text).Bold(true),
		),
		Subtitle:  ptr(lipgloss.NewStyle().Foreground(text)),
		Text:      ptr(lipgloss.NewStyle().Foreground(text)),
		Secondary: ptr(lipgloss.NewStyle().Foreground(secondary)),
		Hours: ptr(
			lipgloss.NewStyle().Foreground(text).Bold(true),
		),
		Card: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Background(lipgloss.Color(p.card)).
				Padding(0, 1),
		),
		SectionTitle: ptr(lipgloss.NewStyle().Foreground(text).Bold(true)),
		CourseTitle: ptr(
			lipgloss.NewStyle().Foreground(text).Bold(true).Underline(true),
		),
		DishName:  ptr(lipgloss.NewStyle().Foreground(text).Bold(true)),
		DishPrice: ptr(lipgloss.NewStyle().Foreground(text).Bold(true)),
		Label:     ptr(lipgloss.NewStyle().Foreground(text).Bold(true)),
		Choice: ptr(
			lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		),
		ChoiceActive: ptr(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(accent)).
				Background(lipgloss.Color(accentSoft)).
				Bold(true).
				Padding(0, 1),
		),
		Field: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(border).
				Padding(0, 1),
		),
		FieldFocused: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(accent)).
				Padding(0, 1),
		),
		Button: ptr(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color(saveButton)).
				Padding(0, 2),
		),
		ButtonFocused: ptr(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color(accent)).
				Bold(true).
				Padding(0, 2),
		),
		Row: ptr(lipgloss.NewStyle().Foreground(text)),
		RowSelected: ptr(
			lipgloss.NewStyle().
				Foreground(text).
				Background(lipgloss.Color(p.button)).
				Bold(true),
		),
		RowIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(accent))),
		NavItem: ptr(
			lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		),
		NavActive: ptr(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(accent)).
				Bold(true).
				Underline(true).
				Padding(0, 1),
		),
		NavBar: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true, false, false, false).
				BorderForeground(border),
		),
		Notice: ptr(
			lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(accent)).
				Padding(1, 3),
		),
		NoticeTitle: ptr(lipgloss.NewStyle().Foreground(text).Bold(true)),
		NoticeError: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(errorRed)).Bold(true),
		),
		NoticeHint: ptr(lipgloss.NewStyle().Foreground(secondary).Italic(true)),
		Footer:     ptr(lipgloss.NewStyle().Foreground(secondary)),
		Empty:      ptr(lipgloss.NewStyle().Foreground(secondary).Italic(true)),
		SearchPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		),
		ThemeIndicator: ptr(lipgloss.NewStyle().Foreground(secondary)),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
