// Package state holds the menu application's single state tree and the pure
// transitions that move it forward. A State is a value: transitions return a
// new State and never mutate slices the previous one still references.
package state

import (
	"strings"

	"github.com/atomicstack/happie-menu/internal/menu"
)

// Mode selects which screen is active.
type Mode int

const (
	ModeHome Mode = iota
	ModeAddMenu
	ModeFilter
)

// Modes lists the screens in navigation-bar order.
var Modes = []Mode{ModeHome, ModeAddMenu, ModeFilter}

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModeAddMenu:
		return "add-menu"
	case ModeFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// Label is the text shown on the navigation bar.
func (m Mode) Label() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeAddMenu:
		return "Add to Menu"
	case ModeFilter:
		return "Filter menu"
	default:
		return ""
	}
}

// Draft is the pending new-dish form. Price stays raw until the add parses it.
type Draft struct {
	Name        string
	Description string
	Course      menu.Course
	Price       string
	Pairing     string
}

// Field names a text field of the draft.
type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldPrice
	FieldPairing
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDescription:
		return "description"
	case FieldPrice:
		return "price"
	case FieldPairing:
		return "pairing"
	default:
		return "unknown"
	}
}

// Valid reports whether the draft passes the presence checks required to add.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Price) != ""
}

func (d Draft) with(field Field, value string) Draft {
	switch field {
	case FieldName:
		d.Name = value
	case FieldDescription:
		d.Description = value
	case FieldPrice:
		d.Price = value
	case FieldPairing:
		d.Pairing = value
	}
	return d
}

// View is presentation state. DarkMode never influences business logic.
type View struct {
	Mode     Mode
	Filter   menu.Filter
	DarkMode bool
	Query    string
}

// State is the whole application state.
type State struct {
	Dishes []menu.Dish
	Draft  Draft
	View   View

	nextID int
}

// New returns the start-up state: no dishes, Home screen, All filter.
func New(dark bool) State {
	return State{
		View:   View{Mode: ModeHome, Filter: menu.FilterAll, DarkMode: dark},
		nextID: 1,
	}
}

// Len returns the number of dishes on the menu.
func (s State) Len() int {
	return len(s.Dishes)
}

// Find returns the dish with the given id.
func (s State) Find(id int) (menu.Dish, bool) {
	for _, d := range s.Dishes {
		if d.ID == id {
			return d, true
		}
	}
	return menu.Dish{}, false
}

// Average returns the formatted mean price for the course.
func (s State) Average(course menu.Course) string {
	return menu.AverageByCourse(s.Dishes, course)
}

// Visible returns the dishes shown on the Filter screen: the course filter
// first, then the free-text query.
func (s State) Visible() []menu.Dish {
	return menu.Search(menu.FilterDishes(s.Dishes, s.View.Filter), s.View.Query)
}

func (s State) allocID() (int, State) {
	next := s.nextID
	if next < 1 {
		next = 1
	}
	s.nextID = next + 1
	return next, s
}
