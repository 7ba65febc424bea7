package views

import (
	"fmt"

	"csv-reader/internal/models"

	"fyne.io/fyne/v2"
)

type menuBar struct {
	main       *fyne.MainMenu
	recent     *fyne.MenuItem
	recordItem *fyne.MenuItem
	tableItem  *fyne.MenuItem
	actions    Actions
}

func newMenuBar(mv *MainView, actions Actions) *menuBar {
	m := &menuBar{actions: actions}

	m.recent = fyne.NewMenuItem("Recent Files", nil)
	m.recent.ChildMenu = fyne.NewMenu("", m.recentItems(nil)...)

	quit := fyne.NewMenuItem("Quit", mv.app.Quit)
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", actions.OpenFile),
		m.recent,
		fyne.NewMenuItemSeparator(),
		quit,
	)

	m.recordItem = fyne.NewMenuItem("Record View", actions.SwitchToRecordView)
	m.tableItem = fyne.NewMenuItem("Table View", actions.SwitchToTableView)

	viewMenu := fyne.NewMenu("View",
		m.recordItem,
		m.tableItem,
		fyne.NewMenuItem("Toggle View", actions.ToggleView),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Zoom In", actions.ZoomIn),
		fyne.NewMenuItem("Zoom Out", actions.ZoomOut),
		fyne.NewMenuItem("Reset Zoom", actions.ResetZoom),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Quick Reference", mv.ShowQuickReference),
		fyne.NewMenuItem("Changelog", mv.ShowChangelog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("About CSV/XLSX Reader", mv.ShowAbout),
	)

	m.main = fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
	return m
}

// recentItems builds the numbered recent file entries followed by the
// clear action.
func (m *menuBar) recentItems(paths []string) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(paths)+2)
	for i, p := range paths {
		path := p
		items = append(items, fyne.NewMenuItem(RecentLabel(i, path), func() {
			m.actions.OpenRecent(path)
		}))
	}

	if len(paths) == 0 {
		empty := fyne.NewMenuItem("No recent files", nil)
		empty.Disabled = true
		items = append(items, empty)
	}

	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Recent Files", m.actions.ClearRecentFiles),
	)
	return items
}

func (m *menuBar) setRecent(paths []string) {
	m.recent.ChildMenu.Items = m.recentItems(paths)
	m.main.Refresh()
}

func (m *menuBar) setMode(mode models.ViewMode) {
	m.recordItem.Checked = mode == models.RecordMode
	m.tableItem.Checked = mode == models.TableMode
	m.main.Refresh()
}

// RecentLabel is the menu text for the i-th recent file.
func RecentLabel(i int, path string) string {
	return fmt.Sprintf("%d. %s", i+1, path)
}
