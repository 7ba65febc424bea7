package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// PreviewRows lays out the current header and the candidate row under
// "Col k" column titles. Short rows are padded with empty cells.
func PreviewRows(current, candidate []string) [][]string {
	width := max(len(current), len(candidate))

	titles := make([]string, width+1)
	titles[0] = ""
	for i := 0; i < width; i++ {
		titles[i+1] = fmt.Sprintf("Col %d", i+1)
	}

	row := func(label string, values []string) []string {
		out := make([]string, width+1)
		out[0] = label
		copy(out[1:], values)
		return out
	}

	return [][]string{
		titles,
		row("Current header", current),
		row("New header", candidate),
	}
}

// ShowHeaderPreview asks whether record index should become the header row.
func ShowHeaderPreview(current, candidate []string, index int, callback func(bool), window fyne.Window) {
	rows := PreviewRows(current, candidate)

	grid := container.NewGridWithColumns(len(rows[0]))
	for r, values := range rows {
		for _, v := range values {
			style := fyne.TextStyle{Bold: r == 0}
			label := widget.NewLabelWithStyle(v, fyne.TextAlignLeading, style)
			label.Truncation = fyne.TextTruncateEllipsis
			grid.Add(label)
		}
	}

	message := widget.NewLabel(fmt.Sprintf(
		"Use record %d as the header row? The current header becomes a data row.", index+1))
	message.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(message, nil, nil, nil, container.NewHScroll(grid))

	d := dialog.NewCustomConfirm("Set Header Row", "Use as Header", "Cancel", content, callback, window)
	d.Resize(fyne.NewSize(600, 250))
	d.Show()
}
