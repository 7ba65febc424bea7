package components

import (
	"image/color"
	"strconv"

	"csv-reader/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	maxColumnWidth  = 400
	maxMeasuredRows = 1000
)

var (
	matchColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff}
	currentColor = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
)

// TableView is a read-only grid of every record with a clickable header row.
// Rows are shown in display order; callbacks always receive dataset indices.
type TableView struct {
	table    *widget.Table
	theme    *ZoomTheme
	override *container.ThemeOverride

	ds       *models.Dataset
	order    []int
	position []int
	sort     models.SortState
	search   *models.Search

	selectHandler func(record int)
	sortHandler   func(col int)
}

func NewTableView(base fyne.Theme) *TableView {
	tv := &TableView{
		theme:  NewZoomTheme(base),
		sort:   models.Unsorted(),
		search: models.NewSearch(),
	}

	tv.table = widget.NewTableWithHeaders(tv.size, newTableCell, tv.updateCell)
	tv.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("", nil)
	}
	tv.table.UpdateHeader = tv.updateHeader
	tv.table.OnSelected = func(id widget.TableCellID) {
		tv.table.UnselectAll()
		if tv.ds == nil || id.Row < 0 || tv.selectHandler == nil {
			return
		}
		tv.selectHandler(tv.recordAt(id.Row))
	}

	tv.override = container.NewThemeOverride(tv.table, tv.theme)
	return tv
}

func (tv *TableView) SetSelectHandler(handler func(record int)) {
	tv.selectHandler = handler
}

func (tv *TableView) SetSortHandler(handler func(col int)) {
	tv.sortHandler = handler
}

// Display shows ds in the given display order (nil is dataset order).
func (tv *TableView) Display(ds *models.Dataset, order []int, sort models.SortState) {
	tv.ds = ds
	tv.order = order
	tv.sort = sort
	tv.position = invert(order)

	tv.fitColumns()
	tv.table.Refresh()
}

func (tv *TableView) Clear() {
	tv.ds = nil
	tv.order = nil
	tv.position = nil
	tv.sort = models.Unsorted()
	tv.table.Refresh()
}

// SetSearch refreshes highlights and scrolls the focused match into view.
func (tv *TableView) SetSearch(search *models.Search) {
	tv.search = search
	tv.table.Refresh()

	if cur, ok := search.Current(); ok {
		tv.table.ScrollTo(widget.TableCellID{Row: tv.displayRow(cur.Row), Col: cur.Col})
	}
}

func (tv *TableView) SetZoom(percent int) {
	tv.theme.SetZoom(percent)
	tv.override.Refresh()
	tv.fitColumns()
	tv.table.Refresh()
}

func (tv *TableView) GetContainer() fyne.CanvasObject {
	return tv.override
}

func (tv *TableView) size() (int, int) {
	if tv.ds == nil {
		return 0, 0
	}
	return tv.ds.Len(), tv.ds.Width()
}

func newTableCell() fyne.CanvasObject {
	bg := canvas.NewRectangle(color.Transparent)
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	return container.NewStack(bg, label)
}

func (tv *TableView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	cell := obj.(*fyne.Container)
	bg := cell.Objects[0].(*canvas.Rectangle)
	label := cell.Objects[1].(*widget.Label)

	if tv.ds == nil {
		label.SetText("")
		return
	}

	record := tv.recordAt(id.Row)
	label.SetText(tv.ds.Cell(record, id.Col))
	bg.FillColor = CellColor(tv.search, models.Cell{Row: record, Col: id.Col})
	bg.Refresh()
}

func (tv *TableView) updateHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	button := obj.(*widget.Button)
	button.OnTapped = nil

	switch {
	case tv.ds == nil:
		button.SetText("")
	case id.Row < 0 && id.Col >= 0:
		col := id.Col
		button.SetText(HeaderText(tv.ds.Headers()[col], col, tv.sort))
		button.OnTapped = func() {
			if tv.sortHandler != nil {
				tv.sortHandler(col)
			}
		}
	case id.Col < 0 && id.Row >= 0:
		record := tv.recordAt(id.Row)
		button.SetText(strconv.Itoa(id.Row + 1))
		button.OnTapped = func() {
			if tv.selectHandler != nil {
				tv.selectHandler(record)
			}
		}
	default:
		button.SetText("")
	}
}

// fitColumns sizes every column to its widest measured value at the
// current zoom, capped at maxColumnWidth.
func (tv *TableView) fitColumns() {
	if tv.ds == nil {
		return
	}

	textSize := tv.theme.TextSize()
	padding := theme.Padding() * 4
	limit := float32(maxColumnWidth) * float32(tv.theme.Zoom()) / 100
	headers := tv.ds.Headers()
	rows := min(tv.ds.Len(), maxMeasuredRows)

	for col := 0; col < tv.ds.Width(); col++ {
		width := fyne.MeasureText(headers[col]+" ▼", textSize, fyne.TextStyle{Bold: true}).Width
		for row := 0; row < rows; row++ {
			w := fyne.MeasureText(tv.ds.Cell(row, col), textSize, fyne.TextStyle{}).Width
			width = max(width, w)
		}
		tv.table.SetColumnWidth(col, min(limit, width+padding))
	}
}

func (tv *TableView) recordAt(display int) int {
	if tv.order == nil || display < 0 || display >= len(tv.order) {
		return display
	}
	return tv.order[display]
}

func (tv *TableView) displayRow(record int) int {
	if tv.position == nil || record < 0 || record >= len(tv.position) {
		return record
	}
	return tv.position[record]
}

func invert(order []int) []int {
	if order == nil {
		return nil
	}
	position := make([]int, len(order))
	for display, record := range order {
		position[record] = display
	}
	return position
}

// HeaderText labels a column header, marking the sorted column's direction.
func HeaderText(name string, col int, sort models.SortState) string {
	if sort.Column != col {
		return name
	}
	if sort.Descending {
		return name + " ▼"
	}
	return name + " ▲"
}

// CellColor is the background of a cell given the current search.
func CellColor(search *models.Search, cell models.Cell) color.Color {
	if search == nil {
		return color.Transparent
	}
	if cur, ok := search.Current(); ok && cur == cell {
		return currentColor
	}
	if search.Matches(cell) {
		return matchColor
	}
	return color.Transparent
}
