package controllers

import (
	"fmt"

	"csv-reader/internal/models"
)

// StatusText renders the persistent status bar line for the current state.
func StatusText(version string, mode models.ViewMode, ds *models.Dataset, index int) string {
	if ds == nil {
		return fmt.Sprintf("Ready | %s", version)
	}
	if mode == models.RecordMode {
		return fmt.Sprintf("Record View - Record %d of %d | %s", index+1, ds.Len(), version)
	}
	return fmt.Sprintf("Table View - %d rows, %d columns | %s", ds.Len(), ds.Width(), version)
}
