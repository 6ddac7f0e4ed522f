package command

import (
	"fmt"
	"strings"

	"github.com/atomicstack/happie-menu/internal/logging/events"
	"github.com/atomicstack/happie-menu/internal/state"
)

// Bus runs state transitions on behalf of the UI and traces each one.
type Bus struct {
	dispatched int
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Dispatch reduces action against s, emitting trace events for the outcome.
func (b *Bus) Dispatch(s state.State, action state.Action) (state.State, state.Outcome) {
	next, out := state.Reduce(s, action)
	b.dispatched++
	events.Command.Dispatch(Name(action), out.Kind.String())
	switch out.Kind {
	case state.OutcomeAdded:
		events.Menu.Add(out.Dish.ID, out.Dish.Name, out.Dish.Course.String(), out.Dish.PriceLabel())
	case state.OutcomeRejected:
		events.Menu.Reject(out.Err)
	case state.OutcomeRemoved:
		if a, ok := action.(state.RemoveDish); ok {
			events.Menu.Remove(a.ID, out.Found)
		}
	}
	switch a := action.(type) {
	case state.Navigate:
		if s.View.Mode != next.View.Mode {
			events.UI.Navigate(s.View.Mode.String(), next.View.Mode.String())
		}
	case state.ToggleTheme:
		events.UI.Theme(next.View.DarkMode)
	case state.SetFilter:
		events.Menu.Filter(a.Filter.String())
	case state.SetQuery:
		events.Menu.Search(a.Query, len(next.Visible()))
	}
	return next, out
}

// Dispatched returns how many actions the bus has run.
func (b *Bus) Dispatched() int {
	return b.dispatched
}

// Name is a stable, human-readable label for an action used in traces.
func Name(action state.Action) string {
	if action == nil {
		return "nil"
	}
	name := fmt.Sprintf("%T", action)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
