// Package catalog maps human-readable language names to model language codes.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed languages.json
var defaultLanguages []byte

// Entry is a single language record.
// Field names follow the FLORES-200 data file the table was built from.
type Entry struct {
	DisplayName string `json:"Language" yaml:"Language"`
	Code        string `json:"FLORES-200 code" yaml:"FLORES-200 code"`
}

// Catalog is a read-only language table. It is safe for concurrent use.
type Catalog struct {
	entries []Entry
	byName  map[string]string
}

// New builds a catalog from entries. Display names are matched
// case-insensitively and the first entry with a given name wins.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("language table is empty")
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]string, len(entries)),
	}

	for i, e := range entries {
		if e.DisplayName == "" {
			return nil, fmt.Errorf("entry %d: language name is required", i)
		}
		if e.Code == "" {
			return nil, fmt.Errorf("entry %d (%s): language code is required", i, e.DisplayName)
		}
		c.entries = append(c.entries, e)

		key := foldName(e.DisplayName)
		if _, exists := c.byName[key]; !exists {
			c.byName[key] = e.Code
		}
	}

	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultLanguages))
}

// Load reads a JSON language table.
func Load(r io.Reader) (*Catalog, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse language table: %w", err)
	}
	return New(entries)
}

// LoadFile reads a language table from disk. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language table: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var entries []Entry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse language table %s: %w", path, err)
		}
		return New(entries)
	default:
		c, err := Load(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return c, nil
	}
}

// Open loads the table at path, or the embedded table when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LookupCode returns the code for a display name.
// The boolean is false when no entry matches.
func (c *Catalog) LookupCode(displayName string) (string, bool) {
	code, ok := c.byName[foldName(displayName)]
	return code, ok
}

// Names returns all display names in table order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.DisplayName)
	}
	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// foldName case-folds a display name. A Caser holds state, so one is built per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
