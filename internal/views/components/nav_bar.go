package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// NavBar is the previous / position / next strip under the record view.
type NavBar struct {
	container  *fyne.Container
	prevButton *widget.Button
	nextButton *widget.Button
	label      *widget.Label
}

func NewNavBar(onPrevious, onNext func()) *NavBar {
	nb := &NavBar{
		prevButton: widget.NewButton("< Previous", onPrevious),
		nextButton: widget.NewButton("Next >", onNext),
		label:      widget.NewLabelWithStyle("No file loaded", fyne.TextAlignCenter, fyne.TextStyle{}),
	}

	nb.container = container.NewHBox(
		nb.prevButton,
		layout.NewSpacer(),
		nb.label,
		layout.NewSpacer(),
		nb.nextButton,
	)
	nb.SetPosition("No file loaded", false, false)
	return nb
}

// SetPosition updates the label and enables the buttons that can move.
func (nb *NavBar) SetPosition(text string, hasPrevious, hasNext bool) {
	nb.label.SetText(text)
	setEnabled(nb.prevButton, hasPrevious)
	setEnabled(nb.nextButton, hasNext)
}

func (nb *NavBar) Text() string {
	return nb.label.Text
}

func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

// NavigationText renders the position label for record index of total.
func NavigationText(index, total int) string {
	if total == 0 {
		return "No file loaded"
	}
	return fmt.Sprintf("Record %d of %d", index+1, total)
}
