package catalog

import (
	"sort"

	"github.com/saveli-project/saveli/pkg/paths"
)

// SavePath is one save location of an entry. Path is the persisted
// environment-variable template; Expanded is derived from it on every
// load and never persisted, because the environment can differ between
// machines and runs.
type SavePath struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Expanded string `json:"-"`
}

// NewSavePath builds a resolved save path from a template.
func NewSavePath(id, template string) (SavePath, error) {
	s := SavePath{ID: id, Path: template}
	if err := s.Resolve(); err != nil {
		return SavePath{}, err
	}
	return s, nil
}

// Resolve recomputes Expanded from the stored template.
func (s *SavePath) Resolve() error {
	expanded, err := paths.Resolve(s.Path)
	if err != nil {
		return err
	}
	s.Expanded = expanded
	return nil
}

// Entry is one managed application. Two entries with the same ID are
// the same application; the Custom flag marks user additions, which
// take precedence over bundled entries during merge.
type Entry struct {
	Title  string     `json:"title"`
	ID     string     `json:"id"`
	Custom bool       `json:"custom,omitempty"`
	Saves  []SavePath `json:"saves"`
}

// less orders entries by ID ascending, custom entries before bundled
// ones with the same ID, ties broken by title. Deduplication keeps the
// first occurrence, so this order is what makes custom entries win.
func less(a, b Entry) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	if a.Custom != b.Custom {
		return a.Custom
	}
	return a.Title < b.Title
}

// sortAndDedup sorts entries and drops later duplicates by ID.
func sortAndDedup(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	out := entries[:0]
	for _, e := range entries {
		if len(out) > 0 && out[len(out)-1].ID == e.ID {
			continue
		}
		out = append(out, e)
	}
	return out
}
