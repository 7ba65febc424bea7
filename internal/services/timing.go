package services

import (
	"sync"
	"time"
)

// LoadTimings records how long loads take, per file type.
type LoadTimings struct {
	mu      sync.RWMutex
	timings map[FileType][]time.Duration
}

func NewLoadTimings() *LoadTimings {
	return &LoadTimings{timings: make(map[FileType][]time.Duration)}
}

func (lt *LoadTimings) Record(fileType FileType, d time.Duration) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.timings[fileType] = append(lt.timings[fileType], d)
}

// Count is the number of loads recorded for fileType.
func (lt *LoadTimings) Count(fileType FileType) int {
	lt.mu.RLock()
	defer lt.mu.RUnlock()
	return len(lt.timings[fileType])
}

func (lt *LoadTimings) Average(fileType FileType) time.Duration {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	timings := lt.timings[fileType]
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range timings {
		total += d
	}
	return total / time.Duration(len(timings))
}

// Reset drops the recorded timings of fileType, or of every type when it is empty.
func (lt *LoadTimings) Reset(fileType FileType) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	if fileType == "" {
		lt.timings = make(map[FileType][]time.Duration)
	} else {
		delete(lt.timings, fileType)
	}
}
