package levels

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/ungravity/tmx"
)

const tinyMap = `<map width="2" height="2" tilewidth="32" tileheight="32">
 <objectgroup name="Level"><object id="1" name="star" x="0" y="0" width="10" height="10"/></objectgroup>
</map>`

func TestLoaderEmbedded(t *testing.T) {
	l := NewLoader(nil, nil)
	for _, res := range []string{"maps/map101.tmx", "./maps/map101.tmx"} {
		m, err := l.LoadMap(context.Background(), res)
		if err != nil {
			t.Fatalf("LoadMap(%q): %v", res, err)
		}
		if len(m.Layers) != 2 {
			t.Fatalf("expected 2 object layers, got %d", len(m.Layers))
		}
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tiny.tmx"), []byte(tinyMap), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.tmx"), []byte("<map><objectgroup>"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(os.DirFS(dir), nil)

	m, err := l.LoadMap(context.Background(), "tiny.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if len(m.Objects()) != 1 {
		t.Fatalf("expected 1 object, got %d", len(m.Objects()))
	}

	_, err = l.LoadMap(context.Background(), "missing.tmx")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if le.Status != 0 || le.Resource != "missing.tmx" || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("unexpected LoadError %+v", le)
	}

	_, err = l.LoadMap(context.Background(), "broken.tmx")
	var pe *tmx.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoaderHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.tmx" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(tinyMap))
	}))
	defer srv.Close()

	l := NewLoader(nil, srv.Client())
	m, err := l.LoadMap(context.Background(), srv.URL+"/ok.tmx")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if len(m.Objects()) != 1 {
		t.Fatalf("expected 1 object, got %d", len(m.Objects()))
	}

	_, err = l.Load(context.Background(), srv.URL+"/missing.tmx")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if le.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", le.Status)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, srv.URL+"/ok.tmx"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *LoadError
		want string
	}{
		{"status", &LoadError{Resource: "u", Status: 500}, "levels: failed to load u (500)"},
		{"fs", &LoadError{Resource: "f", Err: fs.ErrNotExist}, "levels: failed to load f: file does not exist"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Fatalf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestLoaderURLSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(tinyMap))
	}))
	defer srv.Close()

	l := NewLoader(nil, srv.Client())
	l.MaxBytes = int64(len(tinyMap))
	if _, err := l.Load(context.Background(), srv.URL+"/exact.tmx"); err != nil {
		t.Fatalf("body at the limit rejected: %v", err)
	}

	l.MaxBytes = int64(len(tinyMap)) - 1
	_, err := l.Load(context.Background(), srv.URL+"/big.tmx")
	if !errors.Is(err, ErrMapTooLarge) {
		t.Fatalf("expected ErrMapTooLarge, got %v", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Status != http.StatusOK {
		t.Fatalf("expected LoadError with status 200, got %v", err)
	}
}
