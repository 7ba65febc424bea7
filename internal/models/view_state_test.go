package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewStateNavigation(t *testing.T) {
	s := NewViewState()
	assert.False(t, s.Next(), "no records")
	assert.False(t, s.Previous(), "no records")

	s.Reset(3)
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Previous())

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.False(t, s.Next(), "stops at last record")
	assert.Equal(t, 2, s.Index())

	assert.True(t, s.Previous())
	assert.Equal(t, 1, s.Index())

	assert.False(t, s.SetIndex(3))
	assert.True(t, s.SetIndex(2))
	assert.Equal(t, 2, s.Index())
}

func TestViewStateResizeClamps(t *testing.T) {
	s := NewViewState()
	s.Reset(5)
	s.SetIndex(4)

	s.Resize(3)
	assert.Equal(t, 2, s.Index())

	s.Resize(0)
	assert.Equal(t, 0, s.Index())
}

func TestViewStateModes(t *testing.T) {
	s := NewViewState()
	assert.Equal(t, RecordMode, s.Mode())
	assert.False(t, s.SetMode(RecordMode))
	assert.True(t, s.SetMode(TableMode))
	assert.Equal(t, RecordMode, s.Toggle())
	assert.Equal(t, TableMode, s.Toggle())
	assert.Equal(t, "table", s.Mode().String())
}

func TestViewStateZoomIsPerView(t *testing.T) {
	s := NewViewState()

	level, changed := s.Zoom(ZoomStep)
	assert.True(t, changed)
	assert.Equal(t, 115, level)

	s.SetMode(TableMode)
	assert.Equal(t, DefaultZoom, s.ZoomLevel(TableMode))
	level, _ = s.Zoom(-ZoomStep)
	assert.Equal(t, 85, level)
	assert.Equal(t, 115, s.ZoomLevel(RecordMode))

	level, changed = s.ResetZoom()
	assert.True(t, changed)
	assert.Equal(t, DefaultZoom, level)
}

func TestViewStateZoomBounds(t *testing.T) {
	s := NewViewState()
	for i := 0; i < 20; i++ {
		s.Zoom(ZoomStep)
	}
	assert.Equal(t, MaxZoom, s.ZoomLevel(RecordMode))
	_, changed := s.Zoom(ZoomStep)
	assert.False(t, changed)

	for i := 0; i < 30; i++ {
		s.Zoom(-ZoomStep)
	}
	assert.Equal(t, MinZoom, s.ZoomLevel(RecordMode))
	_, changed = s.Zoom(-ZoomStep)
	assert.False(t, changed)
}

func TestFontSize(t *testing.T) {
	assert.Equal(t, float32(10), FontSize(10, 100))
	assert.Equal(t, float32(30), FontSize(10, 300))
	assert.Equal(t, float32(MinFontSize), FontSize(10, 40))
}
