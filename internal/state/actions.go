package state

import "github.com/atomicstack/happie-menu/internal/menu"

// Action is a single state transition. The set of actions is closed.
type Action interface {
	apply(State) (State, Outcome)
}

// OutcomeKind classifies what a transition did.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeAdded
	OutcomeRemoved
	OutcomeRejected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAdded:
		return "added"
	case OutcomeRemoved:
		return "removed"
	case OutcomeRejected:
		return "rejected"
	default:
		return "none"
	}
}

// Outcome is what the caller needs to notify the user about.
type Outcome struct {
	Kind  OutcomeKind
	Dish  menu.Dish
	Found bool
	Err   error
}

// Reduce applies the action to s and returns the next state.
func Reduce(s State, a Action) (State, Outcome) {
	if a == nil {
		return s, Outcome{}
	}
	return a.apply(s)
}

// AddDish commits the draft as a new dish.
type AddDish struct{}

func (AddDish) apply(s State) (State, Outcome) {
	d := s.Draft
	if !d.Valid() {
		return s, Outcome{
			Kind: OutcomeRejected,
			Err:  &menu.ValidationError{Message: menu.MsgMissingFields},
		}
	}
	price, err := menu.ParsePrice(d.Price)
	if err != nil {
		return s, Outcome{Kind: OutcomeRejected, Err: err}
	}
	id, s := s.allocID()
	dish := menu.Dish{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Course:      d.Course,
		Price:       price,
		Pairing:     d.Pairing,
	}
	dishes := make([]menu.Dish, 0, len(s.Dishes)+1)
	dishes = append(dishes, s.Dishes...)
	s.Dishes = append(dishes, dish)
	s.Draft = Draft{}
	return s, Outcome{Kind: OutcomeAdded, Dish: dish}
}

// RemoveDish deletes the dish with ID. Removing an absent id changes nothing
// but still reports OutcomeRemoved with Found unset.
type RemoveDish struct {
	ID int
}

func (a RemoveDish) apply(s State) (State, Outcome) {
	idx := -1
	for i, d := range s.Dishes {
		if d.ID == a.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, Outcome{Kind: OutcomeRemoved}
	}
	removed := s.Dishes[idx]
	dishes := make([]menu.Dish, 0, len(s.Dishes)-1)
	dishes = append(dishes, s.Dishes[:idx]...)
	dishes = append(dishes, s.Dishes[idx+1:]...)
	s.Dishes = dishes
	return s, Outcome{Kind: OutcomeRemoved, Dish: removed, Found: true}
}

// Navigate switches the active screen.
type Navigate struct {
	Mode Mode
}

func (a Navigate) apply(s State) (State, Outcome) {
	s.View.Mode = a.Mode
	return s, Outcome{}
}

// SetFilter changes the Filter screen's course restriction.
type SetFilter struct {
	Filter menu.Filter
}

func (a SetFilter) apply(s State) (State, Outcome) {
	s.View.Filter = a.Filter
	return s, Outcome{}
}

// SetQuery changes the Filter screen's free-text search.
type SetQuery struct {
	Query string
}

func (a SetQuery) apply(s State) (State, Outcome) {
	s.View.Query = a.Query
	return s, Outcome{}
}

// ToggleTheme flips between light and dark rendering.
type ToggleTheme struct{}

func (ToggleTheme) apply(s State) (State, Outcome) {
	s.View.DarkMode = !s.View.DarkMode
	return s, Outcome{}
}

// UpdateDraft replaces one text field of the draft.
type UpdateDraft struct {
	Field Field
	Value string
}

func (a UpdateDraft) apply(s State) (State, Outcome) {
	s.Draft = s.Draft.with(a.Field, a.Value)
	return s, Outcome{}
}

// SetDraftCourse replaces the draft's course.
type SetDraftCourse struct {
	Course menu.Course
}

func (a SetDraftCourse) apply(s State) (State, Outcome) {
	s.Draft.Course = a.Course
	return s, Outcome{}
}
