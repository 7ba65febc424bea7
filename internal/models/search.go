package models

import (
	"fmt"
	"strings"
)

// Cell addresses one value by dataset record index and column.
type Cell struct {
	Row int
	Col int
}

// Search holds the matches of a case-insensitive substring search over the
// table and the currently focused match.
type Search struct {
	text    string
	results []Cell
	matched map[Cell]struct{}
	current int
}

func NewSearch() *Search {
	return &Search{current: -1}
}

// Run searches every cell of ds, visiting records in the given display order
// (nil means dataset order). It returns the number of matches and focuses
// the first one.
func (s *Search) Run(ds *Dataset, order []int, text string) int {
	s.Clear()
	if ds == nil || text == "" {
		return 0
	}

	s.text = text
	needle := strings.ToLower(text)
	s.matched = make(map[Cell]struct{})

	visit := func(row int) {
		for col := 0; col < ds.Width(); col++ {
			if strings.Contains(strings.ToLower(ds.Cell(row, col)), needle) {
				c := Cell{Row: row, Col: col}
				s.results = append(s.results, c)
				s.matched[c] = struct{}{}
			}
		}
	}

	if order == nil {
		for row := 0; row < ds.Len(); row++ {
			visit(row)
		}
	} else {
		for _, row := range order {
			visit(row)
		}
	}

	if len(s.results) > 0 {
		s.current = 0
	}
	return len(s.results)
}

// Next focuses the following match, wrapping to the first.
func (s *Search) Next() bool {
	if len(s.results) == 0 {
		return false
	}
	s.current = (s.current + 1) % len(s.results)
	return true
}

// Previous focuses the preceding match, wrapping to the last.
func (s *Search) Previous() bool {
	if len(s.results) == 0 {
		return false
	}
	s.current = (s.current - 1 + len(s.results)) % len(s.results)
	return true
}

func (s *Search) Clear() {
	s.text = ""
	s.results = nil
	s.matched = nil
	s.current = -1
}

func (s *Search) Text() string  { return s.text }
func (s *Search) Count() int    { return len(s.results) }
func (s *Search) Position() int { return s.current }
func (s *Search) Active() bool  { return s.text != "" }

// Current returns the focused match.
func (s *Search) Current() (Cell, bool) {
	if s.current < 0 || s.current >= len(s.results) {
		return Cell{}, false
	}
	return s.results[s.current], true
}

// Matches reports whether c is one of the search results.
func (s *Search) Matches(c Cell) bool {
	_, ok := s.matched[c]
	return ok
}

// Summary renders the result line shown next to the search box.
func (s *Search) Summary() string {
	if !s.Active() {
		return ""
	}
	if len(s.results) == 0 {
		return "No matches found"
	}
	return fmt.Sprintf("Found %d match(es) - Showing %d/%d", len(s.results), s.current+1, len(s.results))
}
