package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type memoryPrefs struct {
	strings map[string]string
	lists   map[string][]string
}

func newMemoryPrefs() *memoryPrefs {
	return &memoryPrefs{strings: map[string]string{}, lists: map[string][]string{}}
}

func (m *memoryPrefs) String(key string) string                 { return m.strings[key] }
func (m *memoryPrefs) SetString(key, value string)              { m.strings[key] = value }
func (m *memoryPrefs) StringList(key string) []string           { return m.lists[key] }
func (m *memoryPrefs) SetStringList(key string, value []string) { m.lists[key] = value }

func TestRecentFilesAddMovesToFront(t *testing.T) {
	r := NewRecentFiles(newMemoryPrefs(), 3)

	r.Add("a.csv")
	r.Add("b.csv")
	r.Add("a.csv")
	assert.Equal(t, []string{"a.csv", "b.csv"}, r.List())

	r.Add("c.csv")
	r.Add("d.csv")
	assert.Equal(t, []string{"d.csv", "c.csv", "a.csv"}, r.List())

	r.Add("")
	assert.Len(t, r.List(), 3)
}

func TestRecentFilesDefaultLimit(t *testing.T) {
	r := NewRecentFiles(newMemoryPrefs(), 0)
	for i := 0; i < 15; i++ {
		r.Add(fmt.Sprintf("%d.csv", i))
	}
	assert.Len(t, r.List(), DefaultMaxRecentFiles)
	assert.Equal(t, "14.csv", r.List()[0])
}

func TestRecentFilesRemoveAndClear(t *testing.T) {
	r := NewRecentFiles(newMemoryPrefs(), 10)
	r.Add("a.csv")
	r.Add("b.csv")

	r.Remove("a.csv")
	assert.Equal(t, []string{"b.csv"}, r.List())
	r.Remove("missing.csv")
	assert.Equal(t, []string{"b.csv"}, r.List())

	r.Clear()
	assert.Empty(t, r.List())
}

func TestRecentFilesExistingSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	present := writeFile(t, "here.csv", "a\n1\n")

	r := NewRecentFiles(newMemoryPrefs(), 10)
	r.Add(filepath.Join(dir, "gone.csv"))
	r.Add(present)

	assert.Equal(t, []string{present}, r.Existing())
}

func TestRecentFilesLastViewed(t *testing.T) {
	r := NewRecentFiles(newMemoryPrefs(), 10)
	assert.Equal(t, "", r.LastViewed())
	r.SetLastViewed("x.csv")
	assert.Equal(t, "x.csv", r.LastViewed())
}
