package levels

import (
	"errors"
	"testing"

	"github.com/milk9111/ungravity/scoring"
)

func TestBundledCatalog(t *testing.T) {
	c, err := LoadCatalog(FS, CatalogFile)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 levels, got %d", c.Len())
	}
	if e, ok := c.At(0); !ok || e.ID != "map101" {
		t.Fatalf("first level = %+v", e)
	}
	if got := c.Tuning("map101"); got != (scoring.Tuning{ParTimeMs: 25000, MaxTimeMs: 120000}) {
		t.Fatalf("map101 tuning = %+v", got)
	}
	if got := c.Tuning("map102"); got != scoring.DefaultTuning {
		t.Fatalf("map102 should use default tuning, got %+v", got)
	}
	if got := c.Tuning("nope"); got != scoring.DefaultTuning {
		t.Fatalf("unknown id should use default tuning, got %+v", got)
	}
	if c.Index("map103") != 2 || c.Index("nope") != -1 {
		t.Fatalf("Index lookup wrong")
	}
	if _, ok := c.At(3); ok {
		t.Fatalf("At past the end should fail")
	}
}

func TestParseCatalogErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no_levels", "levels: []\n"},
		{"missing_map", "levels:\n  - id: a\n"},
		{"duplicate", "levels:\n  - id: a\n    map: a.tmx\n  - id: a\n    map: b.tmx\n"},
		{"bad_yaml", "levels: [\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(c.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := ParseCatalog([]byte("levels: []\n")); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}
