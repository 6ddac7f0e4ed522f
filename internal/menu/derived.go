package menu

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"
)

// AverageByCourse returns the mean price of the course's dishes with exactly
// two decimals, or "0.00" when the course has none.
func AverageByCourse(dishes []Dish, course Course) string {
	total := decimal.Zero
	count := 0
	for _, d := range dishes {
		if d.Course != course {
			continue
		}
		total = total.Add(d.Price)
		count++
	}
	if count == 0 {
		return "0.00"
	}
	return total.Div(decimal.NewFromInt(int64(count))).StringFixed(2)
}

// ByCourse returns the dishes of a single course in insertion order.
func ByCourse(dishes []Dish, course Course) []Dish {
	out := make([]Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.Course == course {
			out = append(out, d)
		}
	}
	return out
}

// FilterDishes applies a course filter. FilterAll returns the full list.
func FilterDishes(dishes []Dish, f Filter) []Dish {
	course, ok := f.Course()
	if !ok {
		return CloneDishes(dishes)
	}
	return ByCourse(dishes, course)
}

// Group is one course bucket of the grouped display.
type Group struct {
	Course Course
	Dishes []Dish
}

// Empty reports whether the bucket has no dishes.
func (g Group) Empty() bool {
	return len(g.Dishes) == 0
}

// GroupByCourse partitions dishes into the fixed course order. Empty buckets
// are dropped unless keepEmpty is set.
func GroupByCourse(dishes []Dish, keepEmpty bool) []Group {
	groups := make([]Group, 0, len(Courses))
	for _, course := range Courses {
		bucket := ByCourse(dishes, course)
		if len(bucket) == 0 && !keepEmpty {
			continue
		}
		groups = append(groups, Group{Course: course, Dishes: bucket})
	}
	return groups
}

// Search keeps dishes whose name or description matches query. Fuzzy matches
// on the name win; substring matches on either field are the fallback.
func Search(dishes []Dish, query string) []Dish {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneDishes(dishes)
	}
	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, names); len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]Dish, 0, len(matches))
		for i, d := range dishes {
			if _, ok := matches[i]; ok {
				out = append(out, d)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]Dish, 0, len(dishes))
	for _, d := range dishes {
		if strings.Contains(strings.ToLower(d.Name), lower) ||
			strings.Contains(strings.ToLower(d.Description), lower) {
			out = append(out, d)
		}
	}
	return out
}
