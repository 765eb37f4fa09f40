package levels

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/milk9111/ungravity/tmx"
)

// Loader fetches map resources. URLs go over HTTP; everything else is read
// from the loader's filesystem.
type Loader struct {
	fsys   fs.FS
	client *http.Client

	// MaxBytes caps a fetched URL body.
	MaxBytes int64
}

// DefaultMaxMapBytes is the default cap on map bodies fetched over HTTP.
const DefaultMaxMapBytes = 16 << 20

// NewLoader returns a loader reading from fsys. A nil fsys means the bundled
// maps, a nil client means http.DefaultClient.
func NewLoader(fsys fs.FS, client *http.Client) *Loader {
	if fsys == nil {
		fsys = FS
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{fsys: fsys, client: client, MaxBytes: DefaultMaxMapBytes}
}

func (l *Loader) Load(ctx context.Context, resource string) ([]byte, error) {
	if isURL(resource) {
		return l.fetch(ctx, resource)
	}

	name := cleanResource(resource)
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, &LoadError{Resource: resource, Err: err}
	}
	return data, nil
}

// LoadMap fetches and parses resource.
func (l *Loader) LoadMap(ctx context.Context, resource string) (*tmx.Map, error) {
	data, err := l.Load(ctx, resource)
	if err != nil {
		return nil, err
	}
	m, err := tmx.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resource, err)
	}
	return m, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{Resource: url, Err: err}
	}
	res, err := l.client.Do(req)
	if err != nil {
		return nil, &LoadError{Resource: url, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &LoadError{Resource: url, Status: res.StatusCode}
	}

	limit := l.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxMapBytes
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, limit+1))
	if err != nil {
		return nil, &LoadError{Resource: url, Status: res.StatusCode, Err: err}
	}
	if int64(len(data)) > limit {
		return nil, &LoadError{Resource: url, Status: res.StatusCode, Err: fmt.Errorf("%w: over %d bytes", ErrMapTooLarge, limit)}
	}
	return data, nil
}

func isURL(resource string) bool {
	return strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://")
}

func cleanResource(resource string) string {
	s := strings.ReplaceAll(resource, "\\", "/")
	s = strings.TrimPrefix(s, "./")
	return path.Clean(s)
}
