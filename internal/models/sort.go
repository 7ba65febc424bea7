package models

import (
	"sort"
	"strconv"
	"strings"
)

// SortState is the table's display ordering. Column is -1 when unsorted.
type SortState struct {
	Column     int
	Descending bool
}

func Unsorted() SortState {
	return SortState{Column: -1}
}

func (s SortState) Active() bool {
	return s.Column >= 0
}

// Toggle returns the state after a click on column col: a new column sorts
// ascending, the same column flips direction.
func (s SortState) Toggle(col int) SortState {
	if s.Column == col {
		return SortState{Column: col, Descending: !s.Descending}
	}
	return SortState{Column: col}
}

// Order returns the display permutation for ds under s, or nil when unsorted.
func (s SortState) Order(ds *Dataset) []int {
	if ds == nil || !s.Active() {
		return nil
	}
	return SortOrder(ds, s.Column, s.Descending)
}

// SortOrder returns record indices of ds stably sorted by column col.
// Numeric cells sort before text cells; numbers compare numerically and
// text compares case-insensitively.
func SortOrder(ds *Dataset, col int, descending bool) []int {
	order := make([]int, ds.Len())
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		c := compareCells(ds.Cell(order[a], col), ds.Cell(order[b], col))
		if descending {
			return c > 0
		}
		return c < 0
	})
	return order
}

func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	numA, numB := errA == nil, errB == nil

	switch {
	case numA && numB:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case numA:
		return -1
	case numB:
		return 1
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
