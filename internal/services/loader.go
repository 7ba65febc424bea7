package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"csv-reader/internal/logger"
	"csv-reader/internal/models"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// FileType is a supported tabular file format.
type FileType string

const (
	TypeCSV  FileType = "csv"
	TypeXLSX FileType = "xlsx"
)

// DetectType maps a path's extension to a FileType.
func DetectType(path string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return TypeCSV, nil
	case ".xlsx":
		return TypeXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

// IsSupported reports whether path has a loadable extension.
func IsSupported(path string) bool {
	_, err := DetectType(path)
	return err == nil
}

// DataService reads CSV and XLSX files into datasets.
type DataService struct {
	logger  logger.Logger
	timings *LoadTimings
}

func NewDataService(log logger.Logger) *DataService {
	return &DataService{logger: log, timings: NewLoadTimings()}
}

// Timings returns the load durations recorded so far.
func (s *DataService) Timings() *LoadTimings {
	return s.timings
}

// Load reads the whole file at path. The first row becomes the header.
func (s *DataService) Load(ctx context.Context, path string) (*models.Dataset, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fileType, err := DetectType(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var rows [][]string
	switch fileType {
	case TypeCSV:
		rows, err = ReadCSVFile(path)
	case TypeXLSX:
		rows, err = ReadXLSXFile(path)
	}
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	ds, err := models.NewDataset(path, rows)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	s.timings.Record(fileType, elapsed)

	s.logger.Info("DataService", "file loaded", map[string]interface{}{
		"path":        path,
		"type":        string(fileType),
		"rows":        ds.Len(),
		"columns":     ds.Width(),
		"load_id":     ds.ID,
		"duration_ms": elapsed.Milliseconds(),
	})

	return ds, nil
}
