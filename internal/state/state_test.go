package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/atomicstack/happie-menu/internal/menu"
)

func apply(t *testing.T, s State, actions ...Action) (State, Outcome) {
	t.Helper()
	var out Outcome
	for _, a := range actions {
		s, out = Reduce(s, a)
	}
	return s, out
}

func draft(name, price string, course menu.Course) []Action {
	return []Action{
		UpdateDraft{Field: FieldName, Value: name},
		UpdateDraft{Field: FieldPrice, Value: price},
		SetDraftCourse{Course: course},
	}
}

func addDish(t *testing.T, s State, name, price string, course menu.Course) (State, Outcome) {
	t.Helper()
	return apply(t, s, append(draft(name, price, course), AddDish{})...)
}

func TestNewStateDefaults(t *testing.T) {
	s := New(false)
	if s.Len() != 0 {
		t.Fatalf("expected empty menu, got %d", s.Len())
	}
	want := View{Mode: ModeHome, Filter: menu.FilterAll}
	if s.View != want {
		t.Fatalf("unexpected view %#v", s.View)
	}
	if s.Draft != (Draft{}) || s.Draft.Course != menu.Starter {
		t.Fatalf("unexpected draft %#v", s.Draft)
	}
}

func TestAddBunnyChowScenario(t *testing.T) {
	s, out := addDish(t, New(false), "Bunny Chow", "45", menu.Mains)
	if out.Kind != OutcomeAdded {
		t.Fatalf("expected added outcome, got %v (%v)", out.Kind, out.Err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 dish, got %d", s.Len())
	}
	if s.Dishes[0].ID != 1 {
		t.Fatalf("expected id 1, got %d", s.Dishes[0].ID)
	}
	if got := s.Average(menu.Mains); got != "45.00" {
		t.Fatalf("expected Mains average 45.00, got %q", got)
	}
	if got := s.Average(menu.Starter); got != "0.00" {
		t.Fatalf("expected Starter average 0.00, got %q", got)
	}
	if s.Draft != (Draft{}) {
		t.Fatalf("expected draft reset, got %#v", s.Draft)
	}
}

func TestAddCopiesDraftFields(t *testing.T) {
	s, _ := apply(t, New(false),
		UpdateDraft{Field: FieldName, Value: "Malva Pudding"},
		UpdateDraft{Field: FieldDescription, Value: "warm, with custard"},
		UpdateDraft{Field: FieldPrice, Value: "38.50"},
		UpdateDraft{Field: FieldPairing, Value: "Rooibos"},
		SetDraftCourse{Course: menu.Desserts},
	)
	s, out := Reduce(s, AddDish{})
	want := menu.Dish{
		ID:          1,
		Name:        "Malva Pudding",
		Description: "warm, with custard",
		Course:      menu.Desserts,
		Price:       decimal.RequireFromString("38.5"),
		Pairing:     "Rooibos",
	}
	if diff := cmp.Diff(want, out.Dish); diff != "" {
		t.Fatalf("outcome dish mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]menu.Dish{want}, s.Dishes); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSequenceCountsValidAdds(t *testing.T) {
	s := New(false)
	names := []string{"a", "b", "c", "d"}
	for i, name := range names {
		s, _ = addDish(t, s, name, "10", menu.Courses[i%len(menu.Courses)])
	}
	if s.Len() != len(names) {
		t.Fatalf("expected %d dishes, got %d", len(names), s.Len())
	}
	for i, d := range s.Dishes {
		if d.ID != i+1 || d.Name != names[i] {
			t.Fatalf("unexpected dish at %d: %#v", i, d)
		}
	}
}

func TestAddRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name, price string
	}{
		{"", "45"},
		{"Soup", ""},
		{"   ", "45"},
		{"", ""},
	}
	for _, tc := range cases {
		start, _ := addDish(t, New(false), "Existing", "10", menu.Starter)
		s, out := addDish(t, start, tc.name, tc.price, menu.Mains)
		if out.Kind != OutcomeRejected {
			t.Fatalf("%q/%q: expected rejection, got %v", tc.name, tc.price, out.Kind)
		}
		var verr *menu.ValidationError
		if !errors.As(out.Err, &verr) || verr.Message != menu.MsgMissingFields {
			t.Fatalf("%q/%q: unexpected error %v", tc.name, tc.price, out.Err)
		}
		if s.Len() != start.Len() {
			t.Fatalf("%q/%q: expected length unchanged", tc.name, tc.price)
		}
		if s.Draft.Name != tc.name || s.Draft.Price != tc.price {
			t.Fatalf("expected draft preserved after rejection, got %#v", s.Draft)
		}
	}
}

func TestAddRejectsNonNumericPrice(t *testing.T) {
	s, out := addDish(t, New(false), "Soup", "cheap", menu.Starter)
	if out.Kind != OutcomeRejected || s.Len() != 0 {
		t.Fatalf("expected rejection without mutation, got %v with %d dishes", out.Kind, s.Len())
	}
	var verr *menu.ValidationError
	if !errors.As(out.Err, &verr) || verr.Message != menu.MsgPriceNotNum {
		t.Fatalf("unexpected error %v", out.Err)
	}
}

func TestRemoveFirstKeepsSecond(t *testing.T) {
	s, _ := addDish(t, New(false), "first", "10", menu.Starter)
	s, _ = addDish(t, s, "second", "20", menu.Mains)
	second := s.Dishes[1]
	s, out := Reduce(s, RemoveDish{ID: 1})
	if out.Kind != OutcomeRemoved || !out.Found {
		t.Fatalf("expected removal outcome, got %#v", out)
	}
	if diff := cmp.Diff([]menu.Dish{second}, s.Dishes); diff != "" {
		t.Fatalf("remaining mismatch (-want +got):\n%s", diff)
	}
	if s.Dishes[0].ID != 2 {
		t.Fatalf("expected original id 2 preserved, got %d", s.Dishes[0].ID)
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	s, _ := addDish(t, New(false), "first", "10", menu.Starter)
	before := menu.CloneDishes(s.Dishes)
	s, out := Reduce(s, RemoveDish{ID: 42})
	if out.Kind != OutcomeRemoved || out.Found {
		t.Fatalf("expected not-found removal outcome, got %#v", out)
	}
	if diff := cmp.Diff(before, s.Dishes); diff != "" {
		t.Fatalf("menu changed (-want +got):\n%s", diff)
	}
}

func TestIdsAreNeverReused(t *testing.T) {
	s, _ := addDish(t, New(false), "one", "1", menu.Starter)
	s, _ = addDish(t, s, "two", "2", menu.Starter)
	s, _ = Reduce(s, RemoveDish{ID: 1})
	s, _ = addDish(t, s, "three", "3", menu.Starter)
	seen := map[int]bool{}
	for _, d := range s.Dishes {
		if seen[d.ID] {
			t.Fatalf("duplicate id %d in %#v", d.ID, s.Dishes)
		}
		seen[d.ID] = true
	}
	if got := s.Dishes[len(s.Dishes)-1].ID; got != 3 {
		t.Fatalf("expected id 3 for the third add, got %d", got)
	}
}

func TestTransitionsDoNotAliasPriorState(t *testing.T) {
	s1, _ := addDish(t, New(false), "one", "1", menu.Starter)
	s2, _ := addDish(t, s1, "two", "2", menu.Starter)
	s3, _ := Reduce(s2, RemoveDish{ID: 1})
	if s1.Len() != 1 || s2.Len() != 2 || s3.Len() != 1 {
		t.Fatalf("unexpected lengths %d/%d/%d", s1.Len(), s2.Len(), s3.Len())
	}
	if s2.Dishes[0].Name != "one" {
		t.Fatalf("removal leaked into prior state: %#v", s2.Dishes)
	}
}

func TestToggleThemeTwiceRestores(t *testing.T) {
	s, _ := addDish(t, New(false), "one", "1", menu.Starter)
	s, _ = Reduce(s, Navigate{Mode: ModeFilter})
	before := s
	s, _ = apply(t, s, ToggleTheme{})
	if !s.View.DarkMode {
		t.Fatalf("expected dark mode after one toggle")
	}
	s, _ = apply(t, s, ToggleTheme{})
	if s.View != before.View {
		t.Fatalf("expected view restored, got %#v", s.View)
	}
	if diff := cmp.Diff(before.Dishes, s.Dishes); diff != "" {
		t.Fatalf("dishes changed (-want +got):\n%s", diff)
	}
}

func TestNavigateReachesEveryMode(t *testing.T) {
	s := New(false)
	for _, from := range Modes {
		for _, to := range Modes {
			s, _ = Reduce(s, Navigate{Mode: from})
			s, _ = Reduce(s, Navigate{Mode: to})
			if s.View.Mode != to {
				t.Fatalf("expected %s after navigating from %s, got %s", to, from, s.View.Mode)
			}
		}
	}
}

func TestVisibleAppliesFilterThenQuery(t *testing.T) {
	s, _ := addDish(t, New(false), "Samoosa", "12", menu.Starter)
	s, _ = addDish(t, s, "Bunny Chow", "45", menu.Mains)
	s, _ = addDish(t, s, "Soup", "20", menu.Starter)
	s, _ = Reduce(s, SetFilter{Filter: menu.FilterStarter})
	if got := s.Visible(); len(got) != 2 || got[0].Name != "Samoosa" || got[1].Name != "Soup" {
		t.Fatalf("unexpected starters %#v", got)
	}
	s, _ = Reduce(s, SetQuery{Query: "soup"})
	if got := s.Visible(); len(got) != 1 || got[0].Name != "Soup" {
		t.Fatalf("unexpected search result %#v", got)
	}
}

func TestReduceNilActionIsNoOp(t *testing.T) {
	s := New(true)
	next, out := Reduce(s, nil)
	if out.Kind != OutcomeNone || next.View != s.View {
		t.Fatalf("expected nil action to be ignored")
	}
}
