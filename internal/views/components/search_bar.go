package components

import (
	"csv-reader/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar is the find strip shown above the table.
type SearchBar struct {
	container   *fyne.Container
	entry       *widget.Entry
	findButton  *widget.Button
	prevButton  *widget.Button
	nextButton  *widget.Button
	clearButton *widget.Button
	resultLabel *widget.Label

	findHandler  func(string)
	prevHandler  func()
	nextHandler  func()
	clearHandler func()
}

func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	sb.container.Hide()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("Search...")
	sb.entry.OnSubmitted = func(text string) { sb.find() }

	sb.findButton = widget.NewButton("Find", sb.find)
	sb.prevButton = widget.NewButton("Previous", func() {
		if sb.prevHandler != nil {
			sb.prevHandler()
		}
	})
	sb.nextButton = widget.NewButton("Next", func() {
		if sb.nextHandler != nil {
			sb.nextHandler()
		}
	})
	sb.clearButton = widget.NewButton("Clear", func() {
		sb.entry.SetText("")
		if sb.clearHandler != nil {
			sb.clearHandler()
		}
	})
	sb.resultLabel = widget.NewLabel("")
}

func (sb *SearchBar) buildLayout() {
	buttons := container.NewHBox(
		sb.findButton,
		sb.prevButton,
		sb.nextButton,
		sb.resultLabel,
		sb.clearButton,
	)
	sb.container = container.NewBorder(nil, nil, widget.NewLabel("Search:"), buttons, sb.entry)
}

func (sb *SearchBar) find() {
	if sb.findHandler != nil {
		sb.findHandler(sb.entry.Text)
	}
}

func (sb *SearchBar) SetFindHandler(handler func(string)) { sb.findHandler = handler }
func (sb *SearchBar) SetPreviousHandler(handler func())   { sb.prevHandler = handler }
func (sb *SearchBar) SetNextHandler(handler func())       { sb.nextHandler = handler }
func (sb *SearchBar) SetClearHandler(handler func())      { sb.clearHandler = handler }

// Update shows the result summary. Unsubmitted text in the entry is left alone.
func (sb *SearchBar) Update(search *models.Search) {
	sb.resultLabel.SetText(search.Summary())
}

// SetVisible shows or hides the bar, focusing the entry when shown. Hiding
// empties the entry.
func (sb *SearchBar) SetVisible(visible bool, canvas fyne.Canvas) {
	if !visible {
		sb.entry.SetText("")
		sb.container.Hide()
		return
	}
	sb.container.Show()
	if canvas != nil {
		canvas.Focus(sb.entry)
	}
}

func (sb *SearchBar) Summary() string {
	return sb.resultLabel.Text
}

func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
