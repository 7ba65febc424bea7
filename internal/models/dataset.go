package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrNoRecords       = errors.New("no data records found")
	ErrIndexOutOfRange = errors.New("record index out of range")
	ErrTooFewRecords   = errors.New("cannot set header when only one data row exists")
)

// Dataset is one loaded table: a header row and the records below it.
// A dataset is never mutated after construction; operations that change the
// shape of the data return a new Dataset.
type Dataset struct {
	ID       string
	Path     string
	LoadTime time.Time

	headers []string
	rows    [][]string
}

// NewDataset builds a dataset from raw rows where rows[0] is the header.
func NewDataset(path string, rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	if len(rows) == 1 {
		return nil, ErrNoRecords
	}

	return newDataset(path, rows[0], rows[1:]), nil
}

func newDataset(path string, headers []string, rows [][]string) *Dataset {
	return &Dataset{
		ID:       uuid.NewString(),
		Path:     path,
		LoadTime: time.Now(),
		headers:  headers,
		rows:     rows,
	}
}

// Headers returns a copy of the header row.
func (d *Dataset) Headers() []string {
	return append([]string(nil), d.headers...)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Width returns the number of header columns.
func (d *Dataset) Width() int {
	return len(d.headers)
}

// Row returns the raw record at index i without padding.
func (d *Dataset) Row(i int) []string {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Record returns a copy of record i padded with empty strings to the header width.
func (d *Dataset) Record(i int) ([]string, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(d.rows))
	}
	return pad(d.rows[i], len(d.headers)), nil
}

// Cell returns the value at row, col or "" when the record is short.
func (d *Dataset) Cell(row, col int) string {
	if row < 0 || row >= len(d.rows) || col < 0 {
		return ""
	}
	r := d.rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// MaxRowWidth returns the widest row across the header and all records.
func (d *Dataset) MaxRowWidth() int {
	width := len(d.headers)
	for _, r := range d.rows {
		if len(r) > width {
			width = len(r)
		}
	}
	return width
}

func pad(row []string, width int) []string {
	out := make([]string, max(len(row), width))
	copy(out, row)
	return out
}
