package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// RecordView shows one record as header/value pairs, one per line.
type RecordView struct {
	grid     *fyne.Container
	scroll   *container.Scroll
	theme    *ZoomTheme
	override *container.ThemeOverride
}

func NewRecordView(base fyne.Theme) *RecordView {
	rv := &RecordView{
		grid:  container.New(layout.NewFormLayout()),
		theme: NewZoomTheme(base),
	}
	rv.scroll = container.NewVScroll(rv.grid)
	rv.override = container.NewThemeOverride(rv.scroll, rv.theme)
	return rv
}

// Display replaces the grid with one row per header. Values past the last
// header are not shown; missing values show empty.
func (rv *RecordView) Display(headers, record []string) {
	objects := make([]fyne.CanvasObject, 0, len(headers)*2)
	for i, h := range headers {
		value := ""
		if i < len(record) {
			value = record[i]
		}
		objects = append(objects, headerLabel(h), valueLabel(value))
	}

	rv.grid.Objects = objects
	rv.grid.Refresh()
	rv.scroll.ScrollToTop()
}

func (rv *RecordView) Clear() {
	rv.grid.Objects = nil
	rv.grid.Refresh()
}

// Rows is the number of header/value pairs shown.
func (rv *RecordView) Rows() int {
	return len(rv.grid.Objects) / 2
}

func (rv *RecordView) SetZoom(percent int) {
	rv.theme.SetZoom(percent)
	rv.override.Refresh()
}

func (rv *RecordView) GetContainer() fyne.CanvasObject {
	return rv.override
}

func headerLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
}

func valueLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	l.Selectable = true
	return l
}
