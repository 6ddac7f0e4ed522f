package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/happie-menu/internal/menu"
	"github.com/atomicstack/happie-menu/internal/state"
)

func newHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(NewModel(Options{Width: 80, ShowFooter: true}))
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

// addDish fills the form from the name field and saves it.
func addDish(t *testing.T, h *Harness, name string, course menu.Course, price string) {
	t.Helper()
	h.Press("f2")
	for h.Model().form.focus != focusName {
		h.Press("tab")
	}
	h.Type(name)
	h.Press("enter")
	for h.State().Draft.Course != course {
		h.Press("right")
	}
	h.Press("enter", "tab")
	h.Type(price)
	h.Press("ctrl+s")
	title, _, ok := h.Model().Notice()
	if !ok || title != "Success!" {
		t.Fatalf("expected success notice after adding %q, got %q (open=%v)", name, title, ok)
	}
	h.Press("enter")
}

func TestHomeEmptyMenu(t *testing.T) {
	h := newHarness(t)
	view := plainView(h)
	for _, want := range []string{
		"HAPPIE",
		"BY CHEF CHRISTOFFEL",
		"MEALS AVAILABLE BETWEEN 09:00AM TILL 10:00 PM",
		"Average Prices by Course",
		"Starters: R0.00",
		"Mains: R0.00",
		"Desserts: R0.00",
		"Total Menu Items: 0",
		"No menu items yet!",
		`Use "Add to Menu" to create your first dish`,
		"F1 Home",
		"F2 Add to Menu",
		"F3 Filter menu",
		"theme: light (ctrl+t)",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected home view to contain %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Our Menu") {
		t.Fatalf("empty home should not list courses:\n%s", view)
	}
}

func TestAddDishThroughForm(t *testing.T) {
	h := newHarness(t)
	h.Press("f2")
	if got := h.State().View.Mode; got != state.ModeAddMenu {
		t.Fatalf("expected add menu mode, got %v", got)
	}
	h.Type("Bunny Chow")
	h.Press("tab", "right", "tab")
	h.Type("Curry in a loaf")
	h.Press("tab")
	h.Type("45")
	h.Press("tab")
	h.Type("Rooibos")

	want := state.Draft{
		Name:        "Bunny Chow",
		Description: "Curry in a loaf",
		Course:      menu.Mains,
		Price:       "45",
		Pairing:     "Rooibos",
	}
	if diff := cmp.Diff(want, h.State().Draft); diff != "" {
		t.Fatalf("draft mismatch (-want +got):\n%s", diff)
	}

	h.Press("tab", "enter")
	title, body, ok := h.Model().Notice()
	if !ok || title != "Success!" || body != "Menu item added successfully!" {
		t.Fatalf("unexpected notice %q/%q (open=%v)", title, body, ok)
	}
	s := h.State()
	if s.Len() != 1 {
		t.Fatalf("expected one dish, got %d", s.Len())
	}
	dish := s.Dishes[0]
	if dish.ID != 1 || dish.Name != "Bunny Chow" || dish.Course != menu.Mains || dish.PriceLabel() != "R45" {
		t.Fatalf("unexpected dish %#v", dish)
	}
	if s.Draft != (state.Draft{}) {
		t.Fatalf("expected draft reset, got %#v", s.Draft)
	}
	if got := s.Average(menu.Mains); got != "45.00" {
		t.Fatalf("expected mains average 45.00, got %s", got)
	}

	h.Press("enter")
	if _, _, ok := h.Model().Notice(); ok {
		t.Fatalf("expected notice to be dismissed")
	}
	if h.Model().form.name.Value() != "" || h.Model().form.focus != focusName {
		t.Fatalf("expected form cleared with focus on name")
	}
	view := plainView(h)
	for _, want := range []string{"Current Menu Items (1)", "Bunny Chow", "Mains - R45", "Press d to remove an item"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected add view to contain %q:\n%s", want, view)
		}
	}
}

func TestAddRejectsMissingFields(t *testing.T) {
	h := newHarness(t)
	h.Press("f2")
	h.Type("Malva Pudding")
	h.Press("ctrl+s")
	title, body, ok := h.Model().Notice()
	if !ok || title != "Error" || body != menu.MsgMissingFields {
		t.Fatalf("unexpected notice %q/%q (open=%v)", title, body, ok)
	}
	if h.State().Len() != 0 {
		t.Fatalf("rejected add must not change the menu")
	}
	if !strings.Contains(plainView(h), "Please fill in name and price") {
		t.Fatalf("expected notice in view:\n%s", plainView(h))
	}

	// keys other than the dismiss keys are swallowed
	h.Press("f1", "x", "ctrl+t")
	if got := h.State().View; got.Mode != state.ModeAddMenu || got.DarkMode {
		t.Fatalf("notice should block keys, got view %#v", got)
	}
	h.Press("esc")
	if _, _, ok := h.Model().Notice(); ok {
		t.Fatalf("expected esc to dismiss the notice")
	}
	if h.State().Draft.Name != "Malva Pudding" {
		t.Fatalf("rejected add must keep the draft, got %#v", h.State().Draft)
	}
}

func TestAddRejectsBadPrice(t *testing.T) {
	h := newHarness(t)
	h.Press("f2")
	h.Type("Koeksister")
	h.Press("tab", "tab", "tab")
	h.Type("cheap")
	h.Press("ctrl+s")
	_, body, ok := h.Model().Notice()
	if !ok || body != menu.MsgPriceNotNum {
		t.Fatalf("expected price notice, got %q (open=%v)", body, ok)
	}
	if h.State().Len() != 0 {
		t.Fatalf("rejected add must not change the menu")
	}
}

func TestRemoveFromList(t *testing.T) {
	h := newHarness(t)
	addDish(t, h, "Samoosa", menu.Starter, "20")
	addDish(t, h, "Bobotie", menu.Mains, "60")
	addDish(t, h, "Melktert", menu.Desserts, "30")

	h.Press("shift+tab")
	if h.Model().form.focus != focusList {
		t.Fatalf("expected list focus, got %v", h.Model().form.focus)
	}
	h.Press("down", "d")
	title, body, ok := h.Model().Notice()
	if !ok || title != "Deleted" || body != "Menu item removed successfully" {
		t.Fatalf("unexpected notice %q/%q (open=%v)", title, body, ok)
	}
	h.Press("enter")

	var names []string
	for _, d := range h.State().Dishes {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"Samoosa", "Melktert"}, names); diff != "" {
		t.Fatalf("dishes mismatch (-want +got):\n%s", diff)
	}
	if id, _ := h.Model().rows.Current(); id != 3 {
		t.Fatalf("expected highlight to move to Melktert, got id %d", id)
	}

	addDish(t, h, "Vetkoek", menu.Starter, "15")
	if last := h.State().Dishes[2]; last.ID != 4 {
		t.Fatalf("ids must not be reused, got %d", last.ID)
	}
}

func TestRemoveLastItemShowsEmptyList(t *testing.T) {
	h := newHarness(t)
	addDish(t, h, "Samoosa", menu.Starter, "20")
	h.Press("shift+tab", "x", "enter")
	if h.State().Len() != 0 {
		t.Fatalf("expected empty menu, got %d", h.State().Len())
	}
	view := plainView(h)
	if !strings.Contains(view, "No menu items yet. Add your first dish above!") {
		t.Fatalf("expected empty list text:\n%s", view)
	}
	// removing with nothing highlighted is a no-op
	h.Press("d")
	if _, _, ok := h.Model().Notice(); ok {
		t.Fatalf("expected no notice for an empty list")
	}
}

func TestShortcutKeys(t *testing.T) {
	h := newHarness(t)
	h.Press("a")
	if h.State().View.Mode != state.ModeAddMenu {
		t.Fatalf("expected add menu mode")
	}
	h.Type("hat")
	if h.State().View.Mode != state.ModeAddMenu || h.State().Draft.Name != "hat" {
		t.Fatalf("letters must go to the focused field, got %#v", h.State())
	}
	h.Press("esc")
	if h.State().View.Mode != state.ModeHome {
		t.Fatalf("expected esc to return home")
	}
	h.Press("f")
	if h.State().View.Mode != state.ModeFilter {
		t.Fatalf("expected filter mode")
	}
	h.Press("t")
	if !h.State().View.DarkMode {
		t.Fatalf("expected dark mode")
	}
	if !strings.Contains(plainView(h), "theme: dark (ctrl+t)") {
		t.Fatalf("expected dark indicator:\n%s", plainView(h))
	}
	h.Press("h")
	if h.State().View.Mode != state.ModeHome {
		t.Fatalf("expected home mode")
	}
	if h.State().Draft.Name != "hat" {
		t.Fatalf("navigation must keep the draft, got %#v", h.State().Draft)
	}
	h.Press("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}

func TestThemeToggleWhileTyping(t *testing.T) {
	h := newHarness(t)
	h.Press("f2")
	h.Type("Pap")
	h.Press("ctrl+t")
	if !h.State().View.DarkMode {
		t.Fatalf("expected ctrl+t to toggle theme in a text field")
	}
	h.Press("ctrl+t")
	if h.State().View.DarkMode {
		t.Fatalf("expected second toggle to restore light mode")
	}
	if h.State().Draft.Name != "Pap" {
		t.Fatalf("theme toggle must not touch the draft")
	}
}

func TestCtrlCQuitsWithNoticeOpen(t *testing.T) {
	h := newHarness(t)
	h.Press("f2", "ctrl+s")
	if _, _, ok := h.Model().Notice(); !ok {
		t.Fatalf("expected notice")
	}
	h.Press("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestFilterEmptyMenu(t *testing.T) {
	h := newHarness(t)
	h.Press("f3")
	view := plainView(h)
	for _, want := range []string{
		"Select (1) Meal from each course",
		"All",
		"Starters",
		"No menu items available yet. Add some items first!",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected filter view to contain %q:\n%s", want, view)
		}
	}
}

func TestFilterEmptyBuckets(t *testing.T) {
	h := newHarness(t)
	addDish(t, h, "Bobotie", menu.Mains, "60")
	h.Press("f3")
	view := plainView(h)
	for _, want := range []string{"No starter available.", "No desserts available.", "Bobotie", "R60"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected All view to contain %q:\n%s", want, view)
		}
	}

	h.Press("3")
	if h.State().View.Filter != menu.FilterMains {
		t.Fatalf("expected mains filter, got %v", h.State().View.Filter)
	}
	view = plainView(h)
	if strings.Contains(view, "No starter available.") || !strings.Contains(view, "Bobotie") {
		t.Fatalf("course filter should omit empty buckets:\n%s", view)
	}

	h.Press("right")
	if h.State().View.Filter != menu.FilterDesserts {
		t.Fatalf("expected desserts filter, got %v", h.State().View.Filter)
	}
	if strings.Contains(plainView(h), "Bobotie") {
		t.Fatalf("desserts filter should hide mains")
	}
	h.Press("right")
	if h.State().View.Filter != menu.FilterAll {
		t.Fatalf("expected filter to wrap to All, got %v", h.State().View.Filter)
	}
}

func TestFilterSearch(t *testing.T) {
	h := newHarness(t)
	addDish(t, h, "Bobotie", menu.Mains, "60")
	addDish(t, h, "Malva Pudding", menu.Desserts, "35")
	h.Press("f3", "/")
	h.Type("bob")
	if got := h.State().View.Query; got != "bob" {
		t.Fatalf("expected query bob, got %q", got)
	}
	visible := h.State().Visible()
	if len(visible) != 1 || visible[0].Name != "Bobotie" {
		t.Fatalf("unexpected matches %#v", visible)
	}
	// shortcut letters are text while searching
	if h.State().View.Mode != state.ModeFilter {
		t.Fatalf("typing b must not navigate")
	}

	h.Press("enter")
	if h.Model().searching {
		t.Fatalf("expected enter to leave search")
	}
	if !strings.Contains(plainView(h), "search: bob") {
		t.Fatalf("expected query summary:\n%s", plainView(h))
	}

	h.Press("/", "ctrl+u")
	if h.State().View.Query != "" || len(h.State().Visible()) != 2 {
		t.Fatalf("expected ctrl+u to clear the query")
	}
	h.Press("esc", "esc")
	if h.State().View.Mode != state.ModeHome {
		t.Fatalf("expected second esc to return home")
	}
}

func TestHomeListsGroupedDishes(t *testing.T) {
	h := newHarness(t)
	addDish(t, h, "Malva Pudding", menu.Desserts, "35")
	addDish(t, h, "Samoosa", menu.Starter, "20")
	h.Press("esc")
	view := plainView(h)
	starters := strings.Index(view, "Samoosa")
	desserts := strings.Index(view, "Malva Pudding")
	if starters < 0 || desserts < 0 || starters > desserts {
		t.Fatalf("expected starters before desserts:\n%s", view)
	}
	for _, want := range []string{"Our Menu", "Starters: R20.00", "Desserts: R35.00", "Mains: R0.00", "Total Menu Items: 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected home view to contain %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "No mains available.") {
		t.Fatalf("home should omit empty courses:\n%s", view)
	}
}
