package menu

import "strings"

// Course is the fixed category every dish belongs to.
type Course int

const (
	Starter Course = iota
	Mains
	Desserts
)

// Courses lists every course in display order.
var Courses = []Course{Starter, Mains, Desserts}

func (c Course) String() string {
	switch c {
	case Starter:
		return "Starter"
	case Mains:
		return "Mains"
	case Desserts:
		return "Desserts"
	default:
		return "Unknown"
	}
}

// Plural is the heading used for the course in the averages section.
func (c Course) Plural() string {
	switch c {
	case Starter:
		return "Starters"
	default:
		return c.String()
	}
}

// Valid reports whether c is one of the known courses.
func (c Course) Valid() bool {
	return c >= Starter && c <= Desserts
}

// Next returns the course after c, wrapping around.
func (c Course) Next() Course {
	return Courses[(indexOfCourse(c)+1)%len(Courses)]
}

// Prev returns the course before c, wrapping around.
func (c Course) Prev() Course {
	n := len(Courses)
	return Courses[(indexOfCourse(c)-1+n)%n]
}

func indexOfCourse(c Course) int {
	for i, course := range Courses {
		if course == c {
			return i
		}
	}
	return 0
}

// ParseCourse resolves a course name case-insensitively. Plural headings are
// accepted as well.
func ParseCourse(name string) (Course, bool) {
	trimmed := strings.TrimSpace(name)
	for _, c := range Courses {
		if strings.EqualFold(trimmed, c.String()) || strings.EqualFold(trimmed, c.Plural()) {
			return c, true
		}
	}
	return Starter, false
}

// Filter restricts the displayed dishes to a single course, or none.
type Filter int

const (
	FilterAll Filter = iota
	FilterStarter
	FilterMains
	FilterDesserts
)

// Filters lists every filter in selector order.
var Filters = []Filter{FilterAll, FilterStarter, FilterMains, FilterDesserts}

// Course returns the course the filter selects. ok is false for FilterAll.
func (f Filter) Course() (Course, bool) {
	switch f {
	case FilterStarter:
		return Starter, true
	case FilterMains:
		return Mains, true
	case FilterDesserts:
		return Desserts, true
	default:
		return Starter, false
	}
}

// Label is the text shown on the filter selector.
func (f Filter) Label() string {
	if c, ok := f.Course(); ok {
		return c.Plural()
	}
	return "All"
}

func (f Filter) String() string {
	if c, ok := f.Course(); ok {
		return c.String()
	}
	return "All"
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Prev returns the filter before f, wrapping around.
func (f Filter) Prev() Filter {
	n := len(Filters)
	return Filters[(int(f)-1+n)%n]
}
