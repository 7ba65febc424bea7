package services

import (
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoSheets    = errors.New("XLSX file contains no sheets")
	ErrNotWorkbook = errors.New("file is not an XLSX workbook")
)

// xlsx files are zip containers; older detectors report them as plain zip.
var workbookTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/zip",
}

// ReadXLSXFile returns the rows of the first sheet in the workbook at path.
// Missing cells come back as empty strings.
func ReadXLSXFile(path string) ([][]string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), workbookTypes...) {
		return nil, fmt.Errorf("%w: detected %s", ErrNotWorkbook, mtype.String())
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return padRows(rows), nil
}

// padRows widens every row to the widest one. GetRows trims trailing blank
// cells, which would otherwise narrow the header and hide columns.
func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}
