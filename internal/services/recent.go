package services

import (
	"os"
	"slices"
)

const (
	recentFilesKey    = "recentFiles"
	lastViewedFileKey = "lastViewedFile"

	DefaultMaxRecentFiles = 10
)

// Preferences is the subset of the toolkit settings store the viewer uses.
// fyne.Preferences satisfies it.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
	StringList(key string) []string
	SetStringList(key string, value []string)
}

// RecentFiles keeps the most-recently-used file list and the last viewed file.
type RecentFiles struct {
	prefs Preferences
	limit int
}

func NewRecentFiles(prefs Preferences, limit int) *RecentFiles {
	if limit <= 0 {
		limit = DefaultMaxRecentFiles
	}
	return &RecentFiles{prefs: prefs, limit: limit}
}

// List returns the stored paths, most recent first.
func (r *RecentFiles) List() []string {
	return r.prefs.StringList(recentFilesKey)
}

// Existing returns the stored paths that still exist on disk, capped at the limit.
func (r *RecentFiles) Existing() []string {
	var out []string
	for _, p := range r.List() {
		if len(out) == r.limit {
			break
		}
		if FileExists(p) {
			out = append(out, p)
		}
	}
	return out
}

// Add moves path to the front of the list, dropping duplicates and trimming to the limit.
func (r *RecentFiles) Add(path string) {
	if path == "" {
		return
	}

	list := slices.DeleteFunc(slices.Clone(r.List()), func(p string) bool { return p == path })
	list = append([]string{path}, list...)
	if len(list) > r.limit {
		list = list[:r.limit]
	}
	r.prefs.SetStringList(recentFilesKey, list)
}

func (r *RecentFiles) Remove(path string) {
	list := r.List()
	if !slices.Contains(list, path) {
		return
	}
	list = slices.DeleteFunc(slices.Clone(list), func(p string) bool { return p == path })
	r.prefs.SetStringList(recentFilesKey, list)
}

func (r *RecentFiles) Clear() {
	r.prefs.SetStringList(recentFilesKey, []string{})
}

func (r *RecentFiles) LastViewed() string {
	return r.prefs.String(lastViewedFileKey)
}

func (r *RecentFiles) SetLastViewed(path string) {
	r.prefs.SetString(lastViewedFileKey, path)
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
