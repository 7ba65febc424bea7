package models

import "sync"

// DatasetRepository holds the dataset currently on screen. Loads happen off
// the UI goroutine, so access is guarded.
type DatasetRepository struct {
	mu      sync.RWMutex
	current *Dataset
	history int
}

func NewDatasetRepository() *DatasetRepository {
	return &DatasetRepository{}
}

// Set replaces the current dataset wholesale.
func (r *DatasetRepository) Set(ds *Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = ds
	if ds != nil {
		r.history++
	}
}

// Get returns the current dataset or nil when nothing is loaded.
func (r *DatasetRepository) Get() *Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// DatasetStats summarises what is held in memory.
type DatasetStats struct {
	Loaded   bool
	Path     string
	Rows     int
	Columns  int
	Replaced int
}

func (r *DatasetRepository) Stats() DatasetStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := DatasetStats{Replaced: r.history}
	if r.current != nil {
		stats.Loaded = true
		stats.Path = r.current.Path
		stats.Rows = r.current.Len()
		stats.Columns = r.current.Width()
	}
	return stats
}
