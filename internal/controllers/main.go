package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"csv-reader/internal/logger"
	"csv-reader/internal/models"
	"csv-reader/internal/services"

	"fyne.io/fyne/v2"
)

const (
	AppTitle = "CSV/XLSX Reader"

	loadTimeout       = 2 * time.Minute
	zoomFlashDuration = 2 * time.Second
	headerFlashPeriod = 3 * time.Second
)

// DatasetLoader reads a file into a dataset.
type DatasetLoader interface {
	Load(ctx context.Context, path string) (*models.Dataset, error)
}

// View is everything the controller needs from the main window.
type View interface {
	SetWindowTitle(title string)
	SetViewMode(mode models.ViewMode)
	DisplayRecord(headers, record []string, index, total int)
	DisplayTable(ds *models.Dataset, order []int, sort models.SortState)
	ClearData()
	SetZoom(mode models.ViewMode, percent int)
	UpdateSearch(search *models.Search)
	SetSearchVisible(visible bool)
	UpdateStatus(status string)
	FlashStatus(message string, d time.Duration)
	UpdateRecentFiles(paths []string)
	ShowError(title string, err error)
	ShowWarning(title, message string)
	ConfirmHeaderRow(current, candidate []string, index int, callback func(bool))
	ShowFileOpen(callback func(path string))
}

// EventHandler reacts to controller events.
type EventHandler func(data interface{}) error

// MainController owns the loaded dataset and all view state, and turns user
// actions into view updates.
type MainController struct {
	ctx     context.Context
	loader  DatasetLoader
	recent  *services.RecentFiles
	repo    *models.DatasetRepository
	logger  logger.Logger
	version string

	view View

	state         *models.ViewState
	search        *models.Search
	sort          models.SortState
	order         []int
	searchVisible bool

	mu         sync.Mutex
	loadSeq    int
	cancelLoad context.CancelFunc

	runOnMain func(func())
	runAsync  func(func())

	eventHandlers map[string][]EventHandler
}

func NewMainController(
	ctx context.Context,
	loader DatasetLoader,
	recent *services.RecentFiles,
	repo *models.DatasetRepository,
	log logger.Logger,
	version string,
) *MainController {
	mc := &MainController{
		ctx:           ctx,
		loader:        loader,
		recent:        recent,
		repo:          repo,
		logger:        log,
		version:       version,
		state:         models.NewViewState(),
		search:        models.NewSearch(),
		sort:          models.Unsorted(),
		runOnMain:     fyne.Do,
		runAsync:      func(fn func()) { go fn() },
		eventHandlers: make(map[string][]EventHandler),
	}

	mc.initializeEventHandlers()
	return mc
}

// SetView attaches the main view and paints the initial state.
func (mc *MainController) SetView(view View) {
	mc.view = view
	mc.view.SetViewMode(mc.state.Mode())
	mc.refreshRecentFiles()
	mc.render()
}

// SetDispatch overrides how work is moved to the UI goroutine and to the
// background.
func (mc *MainController) SetDispatch(onMain, async func(func())) {
	mc.runOnMain = onMain
	mc.runAsync = async
}

// State returns the navigation and zoom state.
func (mc *MainController) State() *models.ViewState {
	return mc.state
}

// File handling

// OpenFile asks the user for a file and loads it.
func (mc *MainController) OpenFile() {
	mc.view.ShowFileOpen(func(path string) {
		if path != "" {
			mc.LoadFile(path)
		}
	})
}

// LoadFile reads path in the background and replaces the current dataset.
// A newer LoadFile call supersedes one still in flight.
func (mc *MainController) LoadFile(path string) {
	mc.mu.Lock()
	if mc.cancelLoad != nil {
		mc.cancelLoad()
	}
	ctx, cancel := context.WithTimeout(mc.ctx, loadTimeout)
	mc.cancelLoad = cancel
	mc.loadSeq++
	seq := mc.loadSeq
	mc.mu.Unlock()

	mc.view.UpdateStatus(fmt.Sprintf("Loading %s...", filepath.Base(path)))
	mc.logger.Debug("Controller", "loading file", map[string]interface{}{"path": path})

	mc.runAsync(func() {
		defer cancel()
		ds, err := mc.loader.Load(ctx, path)

		mc.runOnMain(func() {
			mc.mu.Lock()
			current := seq == mc.loadSeq
			if current {
				mc.cancelLoad = nil
			}
			mc.mu.Unlock()

			if !current {
				return
			}
			if err != nil {
				mc.loadFailed(path, err)
				return
			}
			mc.loadSucceeded(ds)
		})
	})
}

func (mc *MainController) loadSucceeded(ds *models.Dataset) {
	mc.repo.Set(ds)
	mc.state.Reset(ds.Len())
	mc.search.Clear()
	mc.sort = models.Unsorted()
	mc.order = nil

	mc.view.SetWindowTitle(fmt.Sprintf("%s - %s", AppTitle, ds.Path))
	mc.render()

	mc.emitEvent("file_loaded", ds)
}

func (mc *MainController) loadFailed(path string, err error) {
	mc.logger.Error("Controller", err, map[string]interface{}{"path": path})
	mc.view.ShowError("Failed to load file", err)
	mc.view.UpdateStatus("Failed to load file")
	mc.emitEvent("load_failed", path)
}

// OpenRecent loads a file from the recent list, dropping it if it is gone.
func (mc *MainController) OpenRecent(path string) {
	if services.FileExists(path) {
		mc.LoadFile(path)
		return
	}

	mc.view.ShowWarning("File Not Found", fmt.Sprintf("The file %s does not exist.", path))
	mc.recent.Remove(path)
	mc.refreshRecentFiles()
}

func (mc *MainController) ClearRecentFiles() {
	mc.recent.Clear()
	mc.refreshRecentFiles()
}

// LoadLastViewed reopens the file that was on screen when the viewer last closed.
func (mc *MainController) LoadLastViewed() {
	last := mc.recent.LastViewed()
	if last != "" && services.FileExists(last) {
		mc.LoadFile(last)
	}
}

func (mc *MainController) refreshRecentFiles() {
	mc.view.UpdateRecentFiles(mc.recent.Existing())
}

// Navigation

// NextRecord moves to the following record in record view.
func (mc *MainController) NextRecord() {
	if !mc.recordViewActive() {
		return
	}
	if mc.state.Next() {
		mc.render()
	}
}

// PreviousRecord moves to the preceding record in record view.
func (mc *MainController) PreviousRecord() {
	if !mc.recordViewActive() {
		return
	}
	if mc.state.Previous() {
		mc.render()
	}
}

func (mc *MainController) recordViewActive() bool {
	return mc.repo.Get() != nil && mc.state.Mode() == models.RecordMode
}

func (mc *MainController) SwitchToRecordView() {
	if !mc.state.SetMode(models.RecordMode) {
		return
	}

	mc.searchVisible = false
	mc.search.Clear()
	mc.view.SetSearchVisible(false)
	mc.view.SetViewMode(models.RecordMode)
	mc.render()
}

func (mc *MainController) SwitchToTableView() {
	if !mc.state.SetMode(models.TableMode) {
		return
	}

	mc.view.SetViewMode(models.TableMode)
	mc.render()
}

func (mc *MainController) ToggleView() {
	if mc.state.Mode() == models.RecordMode {
		mc.SwitchToTableView()
	} else {
		mc.SwitchToRecordView()
	}
}

// SelectTableCell opens the record with dataset index row in record view.
func (mc *MainController) SelectTableCell(row int) {
	if mc.repo.Get() == nil {
		return
	}
	if !mc.state.SetIndex(row) {
		return
	}
	mc.SwitchToRecordView()
}

// SortByColumn sorts the table by col, flipping direction on repeated clicks.
func (mc *MainController) SortByColumn(col int) {
	ds := mc.repo.Get()
	if ds == nil || col < 0 || col >= ds.Width() {
		return
	}

	mc.sort = mc.sort.Toggle(col)
	mc.order = mc.sort.Order(ds)
	if mc.search.Active() {
		mc.search.Run(ds, mc.order, mc.search.Text())
	}
	mc.render()
}

// Header reassignment

// SelectCurrentRecordAsHeader asks for confirmation and then promotes the
// current record to header.
func (mc *MainController) SelectCurrentRecordAsHeader() {
	if !mc.recordViewActive() {
		return
	}
	ds := mc.repo.Get()

	if ds.Len() <= 1 {
		mc.view.ShowWarning("Cannot Change Header", "Cannot set header when only one data row exists.")
		return
	}

	index := mc.state.Index()
	candidate, err := ds.Record(index)
	if err != nil {
		mc.logger.Error("Controller", err, nil)
		return
	}

	id := ds.ID
	mc.view.ConfirmHeaderRow(ds.Headers(), candidate, index, func(confirmed bool) {
		if !confirmed {
			return
		}
		// Another file may have loaded while the dialog was open.
		if current := mc.repo.Get(); current == nil || current.ID != id {
			mc.logger.Warning("Controller", "dataset replaced before header confirmation", map[string]interface{}{"index": index})
			return
		}
		mc.ReassignHeader(index)
	})
}

// ReassignHeader promotes record index to header without asking.
func (mc *MainController) ReassignHeader(index int) {
	ds := mc.repo.Get()
	if ds == nil {
		return
	}

	next, err := ds.ReassignHeader(index)
	if err != nil {
		if errors.Is(err, models.ErrTooFewRecords) {
			mc.view.ShowWarning("Cannot Change Header", "Cannot set header when only one data row exists.")
		}
		mc.logger.Error("Controller", err, map[string]interface{}{"index": index})
		return
	}

	mc.repo.Set(next)
	mc.state.Resize(next.Len())
	mc.search.Clear()
	mc.sort = models.Unsorted()
	mc.order = nil

	if mc.state.Mode() == models.TableMode {
		mc.SwitchToRecordView()
	} else {
		mc.render()
	}
	mc.view.FlashStatus("Header row updated", headerFlashPeriod)

	mc.emitEvent("header_changed", index)
}

// Zoom

func (mc *MainController) ZoomIn()  { mc.zoom(models.ZoomStep) }
func (mc *MainController) ZoomOut() { mc.zoom(-models.ZoomStep) }

func (mc *MainController) ResetZoom() {
	if level, changed := mc.state.ResetZoom(); changed {
		mc.applyZoom(level)
	}
}

func (mc *MainController) zoom(delta int) {
	if level, changed := mc.state.Zoom(delta); changed {
		mc.applyZoom(level)
	}
}

func (mc *MainController) applyZoom(level int) {
	mode := mc.state.Mode()
	mc.view.SetZoom(mode, level)
	mc.view.FlashStatus(fmt.Sprintf("Zoom: %d%%", level), zoomFlashDuration)
	mc.logger.Debug("Controller", "zoom changed", map[string]interface{}{
		"view": mode.String(),
		"zoom": level,
	})
}

// Search

// ToggleSearch shows or hides the table search bar. Hiding it clears the search.
func (mc *MainController) ToggleSearch() {
	mc.searchVisible = !mc.searchVisible
	mc.view.SetSearchVisible(mc.searchVisible)
	if !mc.searchVisible {
		mc.ClearSearch()
	}
}

// Search highlights every table cell containing text, ignoring case.
func (mc *MainController) Search(text string) {
	ds := mc.repo.Get()
	if text == "" || ds == nil {
		return
	}

	count := mc.search.Run(ds, mc.order, text)
	mc.logger.Debug("Controller", "search", map[string]interface{}{
		"text":    text,
		"matches": count,
	})
	mc.view.UpdateSearch(mc.search)
}

func (mc *MainController) NextSearchResult() {
	if mc.search.Next() {
		mc.view.UpdateSearch(mc.search)
	}
}

func (mc *MainController) PreviousSearchResult() {
	if mc.search.Previous() {
		mc.view.UpdateSearch(mc.search)
	}
}

func (mc *MainController) ClearSearch() {
	mc.search.Clear()
	mc.view.UpdateSearch(mc.search)
}

// Rendering

func (mc *MainController) render() {
	ds := mc.repo.Get()
	if ds == nil {
		mc.view.ClearData()
		mc.view.UpdateStatus(mc.statusText())
		return
	}

	switch mc.state.Mode() {
	case models.RecordMode:
		record, err := ds.Record(mc.state.Index())
		if err != nil {
			mc.logger.Error("Controller", err, nil)
			return
		}
		mc.view.DisplayRecord(ds.Headers(), record, mc.state.Index(), ds.Len())
	case models.TableMode:
		mc.view.DisplayTable(ds, mc.order, mc.sort)
		mc.view.UpdateSearch(mc.search)
	}

	mc.view.UpdateStatus(mc.statusText())
}

func (mc *MainController) statusText() string {
	return StatusText(mc.version, mc.state.Mode(), mc.repo.Get(), mc.state.Index())
}

// Events

func (mc *MainController) initializeEventHandlers() {
	mc.addEventListener("file_loaded", mc.onFileLoaded)
	mc.addEventListener("header_changed", mc.onHeaderChanged)
}

func (mc *MainController) addEventListener(eventType string, handler EventHandler) {
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent runs handlers in registration order on the calling goroutine.
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	for _, handler := range mc.eventHandlers[eventType] {
		if err := handler(data); err != nil {
			mc.logger.Error("Controller", fmt.Errorf("event handler (%s): %w", eventType, err), nil)
		}
	}
}

func (mc *MainController) onFileLoaded(data interface{}) error {
	ds, ok := data.(*models.Dataset)
	if !ok {
		return fmt.Errorf("invalid data type for file_loaded event")
	}

	mc.recent.Add(ds.Path)
	mc.recent.SetLastViewed(ds.Path)
	mc.refreshRecentFiles()
	return nil
}

func (mc *MainController) onHeaderChanged(data interface{}) error {
	index, ok := data.(int)
	if !ok {
		return fmt.Errorf("invalid data type for header_changed event")
	}

	ds := mc.repo.Get()
	mc.logger.Info("Controller", "header row reassigned", map[string]interface{}{
		"record":  index,
		"columns": ds.Width(),
		"rows":    ds.Len(),
	})
	return nil
}

// Shutdown cancels any load in flight.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	if mc.cancelLoad != nil {
		mc.cancelLoad()
		mc.cancelLoad = nil
	}
	mc.mu.Unlock()

	stats := mc.repo.Stats()
	mc.logger.Info("Controller", "controller shutdown", map[string]interface{}{
		"dataset_loaded": stats.Loaded,
		"datasets_shown": stats.Replaced,
	})
}
