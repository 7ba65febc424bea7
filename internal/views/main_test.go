package views

import (
	"testing"

	"csv-reader/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingActions struct {
	calls  []string
	loaded []string
	opened []string
}

func (r *recordingActions) record(name string) { r.calls = append(r.calls, name) }

func (r *recordingActions) OpenFile()                    { r.record("OpenFile") }
func (r *recordingActions) LoadFile(path string)         { r.loaded = append(r.loaded, path) }
func (r *recordingActions) OpenRecent(path string)       { r.opened = append(r.opened, path) }
func (r *recordingActions) ClearRecentFiles()            { r.record("ClearRecentFiles") }
func (r *recordingActions) NextRecord()                  { r.record("NextRecord") }
func (r *recordingActions) PreviousRecord()              { r.record("PreviousRecord") }
func (r *recordingActions) SwitchToRecordView()          { r.record("SwitchToRecordView") }
func (r *recordingActions) SwitchToTableView()           { r.record("SwitchToTableView") }
func (r *recordingActions) ToggleView()                  { r.record("ToggleView") }
func (r *recordingActions) SelectTableCell(row int)      { r.record("SelectTableCell") }
func (r *recordingActions) SortByColumn(col int)         { r.record("SortByColumn") }
func (r *recordingActions) SelectCurrentRecordAsHeader() { r.record("SelectCurrentRecordAsHeader") }
func (r *recordingActions) ZoomIn()                      { r.record("ZoomIn") }
func (r *recordingActions) ZoomOut()                     { r.record("ZoomOut") }
func (r *recordingActions) ResetZoom()                   { r.record("ResetZoom") }
func (r *recordingActions) Search(text string)           { r.record("Search") }
func (r *recordingActions) NextSearchResult()            { r.record("NextSearchResult") }
func (r *recordingActions) PreviousSearchResult()        { r.record("PreviousSearchResult") }
func (r *recordingActions) ClearSearch()                 { r.record("ClearSearch") }
func (r *recordingActions) ToggleSearch()                { r.record("ToggleSearch") }

func newTestView(t *testing.T) (*MainView, *recordingActions) {
	t.Helper()

	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	mv := NewMainView(a, w, "v0.0.5")
	actions := &recordingActions{}
	mv.SetActions(actions)
	return mv, actions
}

func TestDisplayRecordUpdatesNavigation(t *testing.T) {
	mv, _ := newTestView(t)

	mv.DisplayRecord([]string{"a", "b"}, []string{"1", "2"}, 0, 3)
	assert.Equal(t, "Record 1 of 3", mv.navBar.Text())

	mv.ClearData()
	assert.Equal(t, "No file loaded", mv.navBar.Text())
}

func TestSetViewModeSwitchesArea(t *testing.T) {
	mv, _ := newTestView(t)

	assert.True(t, mv.recordArea.Visible())
	assert.False(t, mv.tableArea.Visible())
	assert.True(t, mv.menus.recordItem.Checked)

	mv.SetViewMode(models.TableMode)
	assert.False(t, mv.recordArea.Visible())
	assert.True(t, mv.tableArea.Visible())
	assert.True(t, mv.menus.tableItem.Checked)
	assert.False(t, mv.menus.recordItem.Checked)
}

func TestRecentFilesMenu(t *testing.T) {
	mv, actions := newTestView(t)

	items := mv.menus.recent.ChildMenu.Items
	require.Len(t, items, 3)
	assert.Equal(t, "No recent files", items[0].Label)
	assert.True(t, items[0].Disabled)

	mv.UpdateRecentFiles([]string{"/data/a.csv", "/data/b.xlsx"})
	items = mv.menus.recent.ChildMenu.Items
	require.Len(t, items, 4)
	assert.Equal(t, "1. /data/a.csv", items[0].Label)
	assert.Equal(t, "2. /data/b.xlsx", items[1].Label)
	assert.True(t, items[2].IsSeparator)

	items[1].Action()
	items[3].Action()
	assert.Equal(t, []string{"/data/b.xlsx"}, actions.opened)
	assert.Contains(t, actions.calls, "ClearRecentFiles")
}

func TestDroppedLoadsFirstSupportedFile(t *testing.T) {
	mv, actions := newTestView(t)

	mv.dropped(fyne.NewPos(0, 0), []fyne.URI{
		storage.NewFileURI("/tmp/notes.txt"),
		storage.NewFileURI("/tmp/data.xlsx"),
		storage.NewFileURI("/tmp/other.csv"),
	})

	assert.Equal(t, []string{"/tmp/data.xlsx"}, actions.loaded)
}

func TestUpdateStatus(t *testing.T) {
	mv, _ := newTestView(t)

	mv.UpdateStatus("Ready | v0.0.5")
	assert.Equal(t, "Ready | v0.0.5", mv.Status())
}

func TestNavBarButtonsForwardToActions(t *testing.T) {
	mv, actions := newTestView(t)
	mv.DisplayRecord([]string{"a"}, []string{"1"}, 1, 3)

	test.Tap(mv.navBar.GetContainer().Objects[0].(fyne.Tappable))
	test.Tap(mv.navBar.GetContainer().Objects[4].(fyne.Tappable))

	assert.Equal(t, []string{"PreviousRecord", "NextRecord"}, actions.calls)
}
