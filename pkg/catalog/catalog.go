// Package catalog owns the versioned collection of known applications
// and their save locations. A catalog lives as a JSON document inside
// the storage root; a bundled default catalog seeds a fresh root.
package catalog

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/logging"
)

// SupportedVersion is the newest catalog schema this build understands.
// Older versions load as-is, the schema has only ever grown.
const SupportedVersion = 1

// FileName is the catalog document inside the storage root.
const FileName = "catalog.json"

//go:embed embedded/catalog.json
var bundledCatalog []byte

// Catalog is the versioned list of entries backed by a file in the
// storage root.
type Catalog struct {
	Version int     `json:"version"`
	Entries []Entry `json:"games"`

	path string
}

// Open loads the catalog stored under storageRoot. If none exists yet,
// the bundled default catalog is materialized there first.
func Open(storageRoot string) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	path := filepath.Join(storageRoot, FileName)
	if _, err := os.Stat(path); err == nil {
		return loadFrom(path)
	}

	logger.Info().Str("path", path).Msg("No catalog found, seeding from bundled defaults")

	c, err := Load(bundledCatalog)
	if err != nil {
		return nil, err
	}
	c.path = path
	if err := c.Save(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load parses a catalog document, enforces the version gate, sorts and
// deduplicates entries, and resolves every save path. A single
// resolution failure fails the whole load: catalog integrity is
// all-or-nothing.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogParse, "failed to parse the catalog")
	}

	if c.Version > SupportedVersion {
		return nil, errors.Newf(errors.ErrCatalogTooNew,
			"the catalog version (%d) is too new, up to version %d is supported",
			c.Version, SupportedVersion)
	}

	c.Entries = sortAndDedup(c.Entries)

	for i := range c.Entries {
		for j := range c.Entries[i].Saves {
			if err := c.Entries[i].Saves[j].Resolve(); err != nil {
				return nil, err
			}
		}
	}

	return &c, nil
}

func loadFrom(path string) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogParse, "failed to read the catalog at %s", path)
	}

	c, err := Load(data)
	if err != nil {
		return nil, err
	}
	c.path = path

	logger.Info().Int("entries", len(c.Entries)).Str("path", path).Msg("Loaded catalog")
	return c, nil
}

// Save serializes the entries back to the catalog file with the
// current schema version, overwriting the prior document.
func (c *Catalog) Save() error {
	logger := logging.GetLogger("catalog")
	logger.Info().Str("path", c.path).Msg("Saving catalog")

	c.Version = SupportedVersion

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrCatalogPersist, "failed to serialize the catalog")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrCatalogPersist, "failed to create %s", filepath.Dir(c.path))
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrCatalogPersist, "failed to write the catalog to %s", c.path)
	}

	return nil
}

// FindByID returns the entry with the given id, or nil.
func (c *Catalog) FindByID(id string) *Entry {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i]
		}
	}
	return nil
}

// Search returns entries whose id or title contains the keyword.
// Matching is case-sensitive. An empty keyword is a user error.
func (c *Catalog) Search(keyword string) ([]Entry, error) {
	if keyword == "" {
		return nil, errors.New(errors.ErrInvalidInput, "the keyword must not be empty")
	}

	var found []Entry
	for _, e := range c.Entries {
		if strings.Contains(e.ID, keyword) || strings.Contains(e.Title, keyword) {
			found = append(found, e)
		}
	}
	return found, nil
}

// Add upserts a user customization: any existing custom entry with the
// same id is replaced, while a bundled entry with that id is left in
// place as a fallback record. The catalog is persisted afterwards.
func (c *Catalog) Add(entry Entry) error {
	kept := c.Entries[:0]
	for _, e := range c.Entries {
		if e.ID == entry.ID && e.Custom {
			continue
		}
		kept = append(kept, e)
	}
	c.Entries = append(kept, entry)

	return c.Save()
}
