// Package state keeps UI-only bookkeeping that is not part of the menu's
// state tree: which row of a list is highlighted and how far a body is
// scrolled.
package state

// Selection tracks a highlighted row over a list of dish ids.
type Selection struct {
	IDs    []int
	Cursor int
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Sync replaces the rows while keeping the highlight on the same id when it
// survives. When it does not, the cursor stays at the same position, clamped
// to the new bounds.
func (s *Selection) Sync(ids []int) {
	prev, hadPrev := s.Current()
	s.IDs = append(s.IDs[:0:0], ids...)
	if hadPrev {
		for i, id := range s.IDs {
			if id == prev {
				s.Cursor = i
				return
			}
		}
	}
	s.clamp()
}

// Current returns the highlighted id.
func (s *Selection) Current() (int, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.IDs) {
		return 0, false
	}
	return s.IDs[s.Cursor], true
}

// Len returns the number of rows.
func (s *Selection) Len() int {
	return len(s.IDs)
}

// MoveUp moves the highlight up one row, wrapping to the bottom.
func (s *Selection) MoveUp() bool {
	n := len(s.IDs)
	if n == 0 {
		return false
	}
	old := s.Cursor
	if s.Cursor > 0 {
		s.Cursor--
	} else {
		s.Cursor = n - 1
	}
	return old != s.Cursor
}

// MoveDown moves the highlight down one row, wrapping to the top.
func (s *Selection) MoveDown() bool {
	n := len(s.IDs)
	if n == 0 {
		return false
	}
	old := s.Cursor
	if s.Cursor < n-1 {
		s.Cursor++
	} else {
		s.Cursor = 0
	}
	return old != s.Cursor
}

// MoveHome moves the highlight to the first row.
func (s *Selection) MoveHome() bool {
	if len(s.IDs) == 0 {
		s.Cursor = 0
		return false
	}
	old := s.Cursor
	s.Cursor = 0
	return old != s.Cursor
}

// MoveEnd moves the highlight to the last row.
func (s *Selection) MoveEnd() bool {
	n := len(s.IDs)
	if n == 0 {
		s.Cursor = 0
		return false
	}
	old := s.Cursor
	s.Cursor = n - 1
	return old != s.Cursor
}

func (s *Selection) clamp() {
	if len(s.IDs) == 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.IDs) {
		s.Cursor = len(s.IDs) - 1
	}
}
