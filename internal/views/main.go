package views

import (
	"fmt"
	"time"

	"csv-reader/internal/help"
	"csv-reader/internal/models"
	"csv-reader/internal/services"
	"csv-reader/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Actions are the user intents the view forwards to its controller.
type Actions interface {
	OpenFile()
	LoadFile(path string)
	OpenRecent(path string)
	ClearRecentFiles()
	NextRecord()
	PreviousRecord()
	SwitchToRecordView()
	SwitchToTableView()
	ToggleView()
	SelectTableCell(row int)
	SortByColumn(col int)
	SelectCurrentRecordAsHeader()
	ZoomIn()
	ZoomOut()
	ResetZoom()
	Search(text string)
	NextSearchResult()
	PreviousSearchResult()
	ClearSearch()
	ToggleSearch()
}

// MainView is the application window. Its methods must be called on the UI
// goroutine.
type MainView struct {
	app     fyne.App
	window  fyne.Window
	version string

	mainContainer *fyne.Container
	recordArea    *fyne.Container
	tableArea     *fyne.Container

	toolbar    *components.Toolbar
	searchBar  *components.SearchBar
	recordView *components.RecordView
	tableView  *components.TableView
	navBar     *components.NavBar
	statusBar  *components.StatusBar
	menus      *menuBar

	actions Actions
	mode    models.ViewMode
}

func NewMainView(app fyne.App, window fyne.Window, version string) *MainView {
	view := &MainView{
		app:     app,
		window:  window,
		version: version,
	}

	view.initializeComponents()
	view.buildLayout()
	view.SetViewMode(models.RecordMode)

	return view
}

func (mv *MainView) initializeComponents() {
	base := mv.app.Settings().Theme()

	mv.toolbar = components.NewToolbar()
	mv.searchBar = components.NewSearchBar()
	mv.recordView = components.NewRecordView(base)
	mv.tableView = components.NewTableView(base)
	mv.navBar = components.NewNavBar(mv.previous, mv.next)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.recordArea = container.NewBorder(nil, mv.navBar.GetContainer(), nil, nil, mv.recordView.GetContainer())
	mv.tableArea = container.NewBorder(mv.searchBar.GetContainer(), nil, nil, nil, mv.tableView.GetContainer())

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewStack(mv.recordArea, mv.tableArea),
	)

	mv.window.SetContent(mv.mainContainer)
}

// SetActions connects widgets, menus, keys and drops to the controller.
func (mv *MainView) SetActions(actions Actions) {
	mv.actions = actions

	mv.toolbar.SetRecordHandler(actions.SwitchToRecordView)
	mv.toolbar.SetTableHandler(actions.SwitchToTableView)
	mv.toolbar.SetSearchHandler(actions.ToggleSearch)

	mv.searchBar.SetFindHandler(actions.Search)
	mv.searchBar.SetPreviousHandler(actions.PreviousSearchResult)
	mv.searchBar.SetNextHandler(actions.NextSearchResult)
	mv.searchBar.SetClearHandler(actions.ClearSearch)

	mv.tableView.SetSelectHandler(actions.SelectTableCell)
	mv.tableView.SetSortHandler(actions.SortByColumn)

	mv.menus = newMenuBar(mv, actions)
	mv.window.SetMainMenu(mv.menus.main)
	mv.menus.setMode(mv.mode)

	mv.setupKeyboard()
	mv.window.SetOnDropped(mv.dropped)
}

func (mv *MainView) setupKeyboard() {
	canvas := mv.window.Canvas()

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			mv.actions.PreviousRecord()
		case fyne.KeyRight:
			mv.actions.NextRecord()
		case fyne.KeyH:
			mv.actions.SelectCurrentRecordAsHeader()
		case fyne.KeyF1:
			mv.ShowQuickReference()
		}
	})

	shortcuts := map[fyne.KeyName]func(){
		fyne.KeyO:     mv.actions.OpenFile,
		fyne.KeyT:     mv.actions.ToggleView,
		fyne.KeyEqual: mv.actions.ZoomIn,
		fyne.KeyMinus: mv.actions.ZoomOut,
		fyne.Key0:     mv.actions.ResetZoom,
		fyne.KeyQ:     mv.app.Quit,
	}
	for key, action := range shortcuts {
		action := action
		canvas.AddShortcut(
			&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault},
			func(fyne.Shortcut) { action() },
		)
	}
}

func (mv *MainView) dropped(_ fyne.Position, uris []fyne.URI) {
	for _, uri := range uris {
		if services.IsSupported(uri.Path()) {
			mv.actions.LoadFile(uri.Path())
			return
		}
	}
}

func (mv *MainView) previous() {
	if mv.actions != nil {
		mv.actions.PreviousRecord()
	}
}

func (mv *MainView) next() {
	if mv.actions != nil {
		mv.actions.NextRecord()
	}
}

// UI update methods - called by controller

func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

// SetViewMode shows the record or table area.
func (mv *MainView) SetViewMode(mode models.ViewMode) {
	mv.mode = mode
	if mode == models.RecordMode {
		mv.tableArea.Hide()
		mv.recordArea.Show()
	} else {
		mv.recordArea.Hide()
		mv.tableArea.Show()
	}

	mv.toolbar.SetMode(mode)
	if mv.menus != nil {
		mv.menus.setMode(mode)
	}
}

func (mv *MainView) DisplayRecord(headers, record []string, index, total int) {
	mv.recordView.Display(headers, record)
	mv.navBar.SetPosition(components.NavigationText(index, total), index > 0, index < total-1)
}

func (mv *MainView) DisplayTable(ds *models.Dataset, order []int, sort models.SortState) {
	mv.tableView.Display(ds, order, sort)
}

func (mv *MainView) ClearData() {
	mv.recordView.Clear()
	mv.tableView.Clear()
	mv.navBar.SetPosition(components.NavigationText(0, 0), false, false)
}

func (mv *MainView) SetZoom(mode models.ViewMode, percent int) {
	if mode == models.RecordMode {
		mv.recordView.SetZoom(percent)
	} else {
		mv.tableView.SetZoom(percent)
	}
}

func (mv *MainView) UpdateSearch(search *models.Search) {
	mv.searchBar.Update(search)
	mv.tableView.SetSearch(search)
}

func (mv *MainView) SetSearchVisible(visible bool) {
	mv.searchBar.SetVisible(visible, mv.window.Canvas())
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) FlashStatus(message string, d time.Duration) {
	mv.statusBar.Flash(message, d)
}

func (mv *MainView) UpdateRecentFiles(paths []string) {
	if mv.menus != nil {
		mv.menus.setRecent(paths)
	}
}

// ShowError displays an error dialog titled by what failed.
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

func (mv *MainView) ConfirmHeaderRow(current, candidate []string, index int, callback func(bool)) {
	components.ShowHeaderPreview(current, candidate, index, callback, mv.window)
}

// ShowFileOpen lets the user pick a CSV or XLSX file.
func (mv *MainView) ShowFileOpen(callback func(path string)) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mv.window)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		callback(path)
	}, mv.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".xlsx"}))
	d.Resize(fyne.NewSize(800, 600))
	d.Show()
}

func (mv *MainView) ShowQuickReference() {
	mv.showMarkdown("Quick Reference", help.QuickReference())
}

func (mv *MainView) ShowChangelog() {
	mv.showMarkdown("Changelog", help.Changelog())
}

func (mv *MainView) ShowAbout() {
	mv.showMarkdown("About CSV/XLSX Reader", help.About(mv.version))
}

func (mv *MainView) showMarkdown(title, markdown string) {
	text := widget.NewRichTextFromMarkdown(markdown)
	text.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(title, "OK", container.NewVScroll(text), mv.window)
	d.Resize(fyne.NewSize(560, 480))
	d.Show()
}

// Status returns the text in the status bar.
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}
