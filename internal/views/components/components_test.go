package components

import (
	"image/color"
	"testing"
	"time"

	"csv-reader/internal/models"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationText(t *testing.T) {
	assert.Equal(t, "No file loaded", NavigationText(0, 0))
	assert.Equal(t, "Record 1 of 1", NavigationText(0, 1))
	assert.Equal(t, "Record 2 of 5", NavigationText(1, 5))
}

func TestHeaderText(t *testing.T) {
	assert.Equal(t, "age", HeaderText("age", 1, models.Unsorted()))
	assert.Equal(t, "age", HeaderText("age", 1, models.SortState{Column: 0}))
	assert.Equal(t, "age ▲", HeaderText("age", 1, models.SortState{Column: 1}))
	assert.Equal(t, "age ▼", HeaderText("age", 1, models.SortState{Column: 1, Descending: true}))
}

func TestCellColor(t *testing.T) {
	ds, err := models.NewDataset("x.csv", [][]string{
		{"a", "b"},
		{"foo", "bar"},
		{"food", "baz"},
	})
	require.NoError(t, err)

	search := models.NewSearch()
	assert.Equal(t, color.Transparent, CellColor(search, models.Cell{Row: 0, Col: 0}))

	search.Run(ds, nil, "foo")
	assert.Equal(t, currentColor, CellColor(search, models.Cell{Row: 0, Col: 0}))
	assert.Equal(t, matchColor, CellColor(search, models.Cell{Row: 1, Col: 0}))
	assert.Equal(t, color.Transparent, CellColor(search, models.Cell{Row: 1, Col: 1}))
	assert.Equal(t, color.Transparent, CellColor(nil, models.Cell{}))
}

func TestPreviewRows(t *testing.T) {
	rows := PreviewRows([]string{"name", "age"}, []string{"bob", "25", "Berlin"})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"", "Col 1", "Col 2", "Col 3"}, rows[0])
	assert.Equal(t, []string{"Current header", "name", "age", ""}, rows[1])
	assert.Equal(t, []string{"New header", "bob", "25", "Berlin"}, rows[2])
}

func TestZoomThemeScalesText(t *testing.T) {
	base := theme.DefaultTheme()
	zt := NewZoomTheme(base)

	assert.Equal(t, base.Size(theme.SizeNameText), zt.TextSize())

	zt.SetZoom(200)
	assert.InDelta(t, base.Size(theme.SizeNameText)*2, zt.Size(theme.SizeNameText), 0.001)
	assert.Equal(t, base.Size(theme.SizeNamePadding), zt.Size(theme.SizeNamePadding))

	zt.SetZoom(models.MinZoom)
	assert.GreaterOrEqual(t, zt.TextSize(), float32(models.MinFontSize))
}

func TestRecordViewDisplay(t *testing.T) {
	test.NewTempApp(t)

	rv := NewRecordView(theme.DefaultTheme())
	rv.Display([]string{"name", "age", "city"}, []string{"alice", "30"})
	assert.Equal(t, 3, rv.Rows())

	rv.Clear()
	assert.Equal(t, 0, rv.Rows())
}

func TestTableViewOrderMapping(t *testing.T) {
	test.NewTempApp(t)

	ds, err := models.NewDataset("x.csv", [][]string{
		{"n"}, {"3"}, {"1"}, {"2"},
	})
	require.NoError(t, err)

	tv := NewTableView(theme.DefaultTheme())
	var selected []int
	tv.SetSelectHandler(func(record int) { selected = append(selected, record) })

	order := models.SortOrder(ds, 0, false)
	tv.Display(ds, order, models.SortState{Column: 0})

	assert.Equal(t, 1, tv.recordAt(0))
	assert.Equal(t, 0, tv.recordAt(2))
	assert.Equal(t, 2, tv.displayRow(0))

	rows, cols := tv.size()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)

	tv.Clear()
	rows, _ = tv.size()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 1, tv.recordAt(1))
}

func TestStatusBarFlash(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("Ready | v1")
	assert.Equal(t, "Ready | v1", sb.GetStatus())

	sb.Flash("Zoom: 115%", time.Hour)
	assert.Equal(t, "Zoom: 115%", sb.GetStatus())

	sb.expire(sb.flashGen)
	assert.Equal(t, "Ready | v1", sb.GetStatus())
}

func TestStatusBarSetStatusEndsFlash(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	sb.Flash("Zoom: 115%", time.Hour)
	pending := sb.flashGen

	sb.SetStatus("Record View - Record 2 of 3 | v1")
	assert.Equal(t, "Record View - Record 2 of 3 | v1", sb.GetStatus())
	assert.Nil(t, sb.flashTimer)

	sb.expire(pending)
	assert.Equal(t, "Record View - Record 2 of 3 | v1", sb.GetStatus())

	sb.Flash("Header row updated", time.Hour)
	assert.Equal(t, "Header row updated", sb.GetStatus())
}

func TestStatusBarStaleFlashIgnored(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	sb.Flash("first", time.Hour)
	stale := sb.flashGen
	sb.Flash("second", time.Hour)

	sb.expire(stale)
	assert.Equal(t, "second", sb.GetStatus())
}

func TestSearchBarUpdate(t *testing.T) {
	test.NewTempApp(t)

	ds, err := models.NewDataset("x.csv", [][]string{{"a"}, {"foo"}, {"bar"}})
	require.NoError(t, err)

	sb := NewSearchBar()
	var found string
	sb.SetFindHandler(func(text string) { found = text })

	sb.entry.SetText("foo")
	sb.find()
	assert.Equal(t, "foo", found)

	search := models.NewSearch()
	search.Run(ds, nil, "foo")
	sb.Update(search)
	assert.Equal(t, "Found 1 match(es) - Showing 1/1", sb.Summary())
	assert.Equal(t, "foo", sb.entry.Text)

	search.Clear()
	sb.Update(search)
	assert.Empty(t, sb.Summary())
	assert.Equal(t, "foo", sb.entry.Text)
}

func TestSearchBarKeepsUnsubmittedText(t *testing.T) {
	test.NewTempApp(t)

	sb := NewSearchBar()
	var cleared bool
	sb.SetClearHandler(func() { cleared = true })
	sb.SetVisible(true, nil)

	sb.entry.SetText("draft")
	sb.Update(models.NewSearch())
	assert.Equal(t, "draft", sb.entry.Text, "re-render leaves typed text")

	test.Tap(sb.clearButton)
	assert.True(t, cleared)
	assert.Empty(t, sb.entry.Text)

	sb.entry.SetText("again")
	sb.SetVisible(false, nil)
	assert.Empty(t, sb.entry.Text)
	assert.False(t, sb.container.Visible())
}

func TestToolbarSearchToggleOnlyInTableMode(t *testing.T) {
	test.NewTempApp(t)

	tb := NewToolbar()
	assert.False(t, tb.searchButton.Visible())

	tb.SetMode(models.TableMode)
	assert.True(t, tb.searchButton.Visible())

	tb.SetMode(models.RecordMode)
	assert.False(t, tb.searchButton.Visible())
}
