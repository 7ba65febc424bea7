package models

import "fmt"

// ViewMode selects which presentation is active.
type ViewMode int

const (
	RecordMode ViewMode = iota
	TableMode
)

func (m ViewMode) String() string {
	switch m {
	case RecordMode:
		return "record"
	case TableMode:
		return "table"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

const (
	MinZoom     = 40
	MaxZoom     = 300
	ZoomStep    = 15
	DefaultZoom = 100

	MinFontSize = 6
)

// ViewState tracks navigation and zoom for the two views. Each view mode
// keeps its own zoom level.
type ViewState struct {
	index int
	count int
	mode  ViewMode
	zoom  [2]int
}

func NewViewState() *ViewState {
	return &ViewState{
		mode: RecordMode,
		zoom: [2]int{DefaultZoom, DefaultZoom},
	}
}

func (s *ViewState) Index() int     { return s.index }
func (s *ViewState) Count() int     { return s.count }
func (s *ViewState) Mode() ViewMode { return s.mode }

// Reset points the state at a fresh set of count records, starting at the first.
func (s *ViewState) Reset(count int) {
	s.count = count
	s.index = 0
}

// Resize changes the record count and clamps the index into range.
func (s *ViewState) Resize(count int) {
	s.count = count
	s.Clamp()
}

// Clamp keeps 0 <= index < count (index is 0 when there are no records).
func (s *ViewState) Clamp() {
	if s.index >= s.count {
		s.index = s.count - 1
	}
	if s.index < 0 {
		s.index = 0
	}
}

// Next advances to the next record. It reports whether the index moved.
func (s *ViewState) Next() bool {
	if s.index >= s.count-1 {
		return false
	}
	s.index++
	return true
}

// Previous moves back one record. It reports whether the index moved.
func (s *ViewState) Previous() bool {
	if s.index <= 0 || s.count == 0 {
		return false
	}
	s.index--
	return true
}

// SetIndex jumps to record i if it is in range.
func (s *ViewState) SetIndex(i int) bool {
	if i < 0 || i >= s.count {
		return false
	}
	s.index = i
	return true
}

// SetMode switches the active view. It reports whether the mode changed.
func (s *ViewState) SetMode(mode ViewMode) bool {
	if s.mode == mode {
		return false
	}
	s.mode = mode
	return true
}

// Toggle flips between record and table mode and returns the new mode.
func (s *ViewState) Toggle() ViewMode {
	if s.mode == RecordMode {
		s.mode = TableMode
	} else {
		s.mode = RecordMode
	}
	return s.mode
}

// ZoomLevel returns the zoom percentage of the given view.
func (s *ViewState) ZoomLevel(mode ViewMode) int {
	return s.zoom[mode]
}

// Zoom changes the active view's zoom by delta percent, clamped to
// [MinZoom, MaxZoom]. It returns the resulting level and whether it changed.
func (s *ViewState) Zoom(delta int) (int, bool) {
	current := s.zoom[s.mode]
	next := min(MaxZoom, max(MinZoom, current+delta))
	if next == current {
		return current, false
	}
	s.zoom[s.mode] = next
	return next, true
}

// ResetZoom restores the active view to DefaultZoom.
func (s *ViewState) ResetZoom() (int, bool) {
	return s.Zoom(DefaultZoom - s.zoom[s.mode])
}

// FontSize scales base by zoom percent, never going below MinFontSize.
func FontSize(base float32, zoom int) float32 {
	size := base * float32(zoom) / 100
	if size < MinFontSize {
		return MinFontSize
	}
	return size
}
