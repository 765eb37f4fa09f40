package levels

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/ungravity/scoring"
)

var ErrEmptyCatalog = errors.New("levels: catalog has no levels")

// Entry is one playable level.
type Entry struct {
	ID  string `yaml:"id"`
	Map string `yaml:"map"`

	ParTimeMs float64 `yaml:"par_time_ms"`
	MaxTimeMs float64 `yaml:"max_time_ms"`
}

// Catalog is the ordered level list.
type Catalog struct {
	Levels []Entry `yaml:"levels"`
}

func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(c.Levels) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(c.Levels))
	for i, e := range c.Levels {
		if e.ID == "" || e.Map == "" {
			return nil, fmt.Errorf("catalog entry %d: id and map are required", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return &c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}

func (c *Catalog) At(i int) (Entry, bool) {
	if c == nil || i < 0 || i >= len(c.Levels) {
		return Entry{}, false
	}
	return c.Levels[i], true
}

// Index returns the position of id, or -1.
func (c *Catalog) Index(id string) int {
	if c == nil {
		return -1
	}
	for i, e := range c.Levels {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Tuning returns the scoring bounds for id. Entries that leave either bound
// unset use scoring.DefaultTuning as a pair.
func (c *Catalog) Tuning(id string) scoring.Tuning {
	i := c.Index(id)
	if i < 0 {
		return scoring.DefaultTuning
	}
	e := c.Levels[i]
	if e.ParTimeMs <= 0 || e.MaxTimeMs <= 0 {
		return scoring.DefaultTuning
	}
	return scoring.Tuning{ParTimeMs: e.ParTimeMs, MaxTimeMs: e.MaxTimeMs}
}
