// Package help holds the text shown by the Help menu.
package help

import (
	_ "embed"
	"fmt"
)

//go:embed quick_reference.md
var quickReference string

//go:embed changelog.md
var changelog string

func QuickReference() string {
	return quickReference
}

func Changelog() string {
	return changelog
}

// About renders the about box for the given version.
func About(version string) string {
	return fmt.Sprintf(`# CSV/XLSX Reader

**Version:** %s

A viewer for CSV and XLSX files with record and table view modes.

**Features:**

- Support for CSV and XLSX files
- Multi-sheet XLSX files (loads first sheet)
- Dual view modes (Record and Table)
- Dynamic header row selection
- Keyboard navigation and shortcuts
- Zoom (40%%-300%%)
- Recent files tracking
- Auto-load last viewed file
`, version)
}
