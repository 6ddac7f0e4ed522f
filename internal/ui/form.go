package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/happie-menu/internal/state"
)

// formFocus identifies the focusable element on the Add Menu screen, in tab
// order.
type formFocus int

const (
	focusName formFocus = iota
	focusCourse
	focusDescription
	focusPrice
	focusPairing
	focusSave
	focusList
	formFocusCount
)

func (f formFocus) String() string {
	switch f {
	case focusName:
		return "name"
	case focusCourse:
		return "course"
	case focusDescription:
		return "description"
	case focusPrice:
		return "price"
	case focusPairing:
		return "pairing"
	case focusSave:
		return "save"
	case focusList:
		return "list"
	default:
		return "unknown"
	}
}

const (
	formMinFieldWidth     = 10
	formDefaultFieldWidth = 40
	descriptionHeight     = 4
)

// dishForm holds the editing widgets behind the draft. The widgets own caret
// and scroll state only; the draft in state.State stays authoritative.
type dishForm struct {
	name        textinput.Model
	description textarea.Model
	price       textinput.Model
	pairing     textinput.Model
	focus       formFocus
}

func newDishForm() *dishForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Name"
	name.CharLimit = 80

	price := textinput.New()
	price.Prompt = ""
	price.Placeholder = "R"
	price.CharLimit = 16

	pairing := textinput.New()
	pairing.Prompt = ""
	pairing.Placeholder = "Pairs well with (optional)"
	pairing.CharLimit = 80

	description := textarea.New()
	description.Placeholder = "Description of meals"
	description.ShowLineNumbers = false
	description.Prompt = ""
	description.CharLimit = 400
	description.SetHeight(descriptionHeight)

	f := &dishForm{
		name:        name,
		description: description,
		price:       price,
		pairing:     pairing,
	}
	f.resize(0)
	return f
}

// fieldWidth is the inner width of a bordered field for a screen width.
func fieldWidth(width int) int {
	if width <= 0 {
		return formDefaultFieldWidth
	}
	// border and padding take two columns each side
	w := width - 4
	if w > formDefaultFieldWidth*2 {
		w = formDefaultFieldWidth * 2
	}
	if w < formMinFieldWidth {
		w = formMinFieldWidth
	}
	return w
}

func (f *dishForm) resize(width int) {
	w := fieldWidth(width)
	f.name.Width = w - 1
	f.price.Width = w - 1
	f.pairing.Width = w - 1
	f.description.SetWidth(w)
}

// load copies a draft into the widgets and returns focus to the first field.
func (f *dishForm) load(d state.Draft) tea.Cmd {
	f.name.SetValue(d.Name)
	f.description.SetValue(d.Description)
	f.price.SetValue(d.Price)
	f.pairing.SetValue(d.Pairing)
	return f.setFocus(focusName)
}

func (f *dishForm) blur() {
	f.name.Blur()
	f.description.Blur()
	f.price.Blur()
	f.pairing.Blur()
}

func (f *dishForm) focusCurrent() tea.Cmd {
	return f.setFocus(f.focus)
}

func (f *dishForm) setFocus(target formFocus) tea.Cmd {
	f.blur()
	f.focus = target
	switch target {
	case focusName:
		return f.name.Focus()
	case focusDescription:
		return f.description.Focus()
	case focusPrice:
		return f.price.Focus()
	case focusPairing:
		return f.pairing.Focus()
	}
	return nil
}

func (f *dishForm) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % formFocusCount)
}

func (f *dishForm) prev() tea.Cmd {
	return f.setFocus((f.focus - 1 + formFocusCount) % formFocusCount)
}

// editing reports which draft field the focused widget edits.
func (f *dishForm) editing() (state.Field, bool) {
	switch f.focus {
	case focusName:
		return state.FieldName, true
	case focusDescription:
		return state.FieldDescription, true
	case focusPrice:
		return state.FieldPrice, true
	case focusPairing:
		return state.FieldPairing, true
	}
	return 0, false
}

func (f *dishForm) value(field state.Field) string {
	switch field {
	case state.FieldName:
		return f.name.Value()
	case state.FieldDescription:
		return f.description.Value()
	case state.FieldPrice:
		return f.price.Value()
	case state.FieldPairing:
		return f.pairing.Value()
	}
	return ""
}

// updateFocused forwards msg to the focused text widget.
func (f *dishForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	case focusPrice:
		f.price, cmd = f.price.Update(msg)
	case focusPairing:
		f.pairing, cmd = f.pairing.Update(msg)
	}
	return cmd
}
