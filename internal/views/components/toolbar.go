package components

import (
	"csv-reader/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the view switch buttons and the search toggle.
type Toolbar struct {
	container    *fyne.Container
	recordButton *widget.Button
	tableButton  *widget.Button
	searchButton *widget.Button

	recordHandler func()
	tableHandler  func()
	searchHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.recordButton = widget.NewButton("Record View", nil)
	t.tableButton = widget.NewButton("Table View", nil)
	t.searchButton = widget.NewButton("Search", nil)
	t.searchButton.Hide()

	t.SetMode(models.RecordMode)
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.recordButton,
		t.tableButton,
		widget.NewSeparator(),
		t.searchButton,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.recordButton.OnTapped = func() {
		if t.recordHandler != nil {
			t.recordHandler()
		}
	}

	t.tableButton.OnTapped = func() {
		if t.tableHandler != nil {
			t.tableHandler()
		}
	}

	t.searchButton.OnTapped = func() {
		if t.searchHandler != nil {
			t.searchHandler()
		}
	}
}

func (t *Toolbar) SetRecordHandler(handler func()) {
	t.recordHandler = handler
}

func (t *Toolbar) SetTableHandler(handler func()) {
	t.tableHandler = handler
}

func (t *Toolbar) SetSearchHandler(handler func()) {
	t.searchHandler = handler
}

// SetMode highlights the active view's button. The search toggle only
// appears in table view.
func (t *Toolbar) SetMode(mode models.ViewMode) {
	if mode == models.RecordMode {
		t.recordButton.Importance = widget.HighImportance
		t.tableButton.Importance = widget.MediumImportance
		t.searchButton.Hide()
	} else {
		t.recordButton.Importance = widget.MediumImportance
		t.tableButton.Importance = widget.HighImportance
		t.searchButton.Show()
	}
	t.recordButton.Refresh()
	t.tableButton.Refresh()
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
