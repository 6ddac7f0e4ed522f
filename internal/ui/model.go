package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/happie-menu/internal/state"
	"github.com/atomicstack/happie-menu/internal/theme"
	"github.com/atomicstack/happie-menu/internal/ui/command"
	uistate "github.com/atomicstack/happie-menu/internal/ui/state"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a new Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	DarkMode   bool
}

// Model implements the Bubble Tea model for the menu application.
type Model struct {
	state state.State
	bus   *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	body      viewport.Model
	form      *dishForm
	rows      *uistate.Selection
	search    textinput.Model
	searching bool
	notice    *notice
	quitting  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with an empty menu on the Home screen.
func NewModel(opts Options) *Model {
	m := &Model{
		state:      state.New(opts.DarkMode),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		body:       viewport.New(0, 0),
		form:       newDishForm(),
		rows:       uistate.NewSelection(),
		search:     newSearchInput(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.form.resize(m.width)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.forwardToWidgets(msg)
}

// State exposes the current menu state.
func (m *Model) State() state.State {
	return m.state
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Styles returns the style set matching the current theme flag.
func (m *Model) Styles() *theme.Styles {
	return theme.For(m.state.View.DarkMode)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// forwardToWidgets hands non-key messages, such as caret blinks, to whichever
// text widget currently has focus.
func (m *Model) forwardToWidgets(msg tea.Msg) tea.Cmd {
	switch {
	case m.state.View.Mode == state.ModeAddMenu:
		return m.form.updateFocused(msg)
	case m.state.View.Mode == state.ModeFilter && m.searching:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.form.resize(m.width)
	m.search.Width = searchWidth(m.width)
	return nil
}

// dispatch runs action through the bus and reacts to its outcome.
func (m *Model) dispatch(action state.Action) tea.Cmd {
	prev := m.state
	next, out := m.bus.Dispatch(m.state, action)
	m.state = next
	if prev.View.Mode != next.View.Mode {
		m.onModeChange(prev.View.Mode, next.View.Mode)
	}
	switch out.Kind {
	case state.OutcomeAdded:
		m.form.load(m.state.Draft)
		m.rows.Sync(dishIDs(m.state))
		m.showNotice(noticeSuccess, "Success!", "Menu item added successfully!")
	case state.OutcomeRemoved:
		m.rows.Sync(dishIDs(m.state))
		m.showNotice(noticeInfo, "Deleted", "Menu item removed successfully")
	case state.OutcomeRejected:
		m.showNotice(noticeError, "Error", rejectionMessage(out.Err))
	}
	return nil
}

func (m *Model) onModeChange(from, to state.Mode) {
	m.body.GotoTop()
	m.searching = false
	m.search.Blur()
	if from == state.ModeAddMenu {
		m.form.blur()
	}
	if to == state.ModeAddMenu {
		m.rows.Sync(dishIDs(m.state))
		m.form.focusCurrent()
	}
}

func dishIDs(s state.State) []int {
	ids := make([]int, len(s.Dishes))
	for i, d := range s.Dishes {
		ids[i] = d.ID
	}
	return ids
}
