package models

import (
	"fmt"
)

// ReassignHeader promotes record i to the header row. The old header becomes
// the first record, followed by the records before and after i. The new
// header is padded with generated ColumnN names to the widest row, and every
// record is padded with empty strings to the new header width.
func (d *Dataset) ReassignHeader(i int) (*Dataset, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(d.rows))
	}
	if len(d.rows) <= 1 {
		return nil, ErrTooFewRecords
	}

	width := d.MaxRowWidth()

	header := make([]string, width)
	copy(header, d.rows[i])
	for col := len(d.rows[i]); col < width; col++ {
		header[col] = fmt.Sprintf("Column%d", col+1)
	}

	rows := make([][]string, 0, len(d.rows))
	rows = append(rows, pad(d.headers, width))
	for idx, r := range d.rows {
		if idx == i {
			continue
		}
		rows = append(rows, pad(r, width))
	}

	next := newDataset(d.Path, header, rows)
	next.LoadTime = d.LoadTime
	return next, nil
}
