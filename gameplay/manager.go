package gameplay

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/milk9111/ungravity/level"
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/progress"
	"github.com/milk9111/ungravity/tmx"
)

var ErrNoLevels = errors.New("gameplay: no levels")

// MapLoader fetches and parses a map resource.
type MapLoader interface {
	LoadMap(ctx context.Context, resource string) (*tmx.Map, error)
}

// LoadStatus is the outcome of the latest load request.
type LoadStatus struct {
	Token  uint64
	Index  int
	Info   string
	Result level.Result
	Err    error
}

type loadResult struct {
	token uint64
	index int
	m     *tmx.Map
	err   error
}

// Manager loads levels by index. Fetching happens on a goroutine; building
// the session happens in Poll on the caller's goroutine. Only the newest
// request is ever applied.
type Manager struct {
	catalog  *levels.Catalog
	loader   MapLoader
	progress *progress.Progress
	opts     SessionOptions
	logger   *log.Logger

	index   int
	session *Session

	token   uint64
	pending bool
	cancel  context.CancelFunc
	results chan loadResult
}

func NewManager(catalog *levels.Catalog, loader MapLoader, p *progress.Progress, opts SessionOptions, logger *log.Logger) *Manager {
	return &Manager{
		catalog:  catalog,
		loader:   loader,
		progress: p,
		opts:     opts,
		logger:   logger,
		results:  make(chan loadResult, 4),
	}
}

// Resolve clamps index to the catalog and falls back to the first level when
// the target is locked.
func (m *Manager) Resolve(index int) int {
	n := m.catalog.Len()
	if n == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index > n-1 {
		index = n - 1
	}
	if e, _ := m.catalog.At(index); !progress.IsLevelUnlocked(m.progress, e.ID) {
		return 0
	}
	return index
}

// Request starts loading the level at index and returns its token. Any
// previous request is cancelled and its result will be ignored. The current
// session is dropped until the new one is built.
func (m *Manager) Request(ctx context.Context, index int) uint64 {
	if m.cancel != nil {
		m.cancel()
	}
	m.token++
	token := m.token
	m.index = m.Resolve(index)
	m.session = nil
	m.pending = true

	entry, ok := m.catalog.At(m.index)
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	if m.logger != nil {
		m.logger.Debug("loading level", "level", entry.ID, "resource", entry.Map, "token", token)
	}

	go func(index int, resource string) {
		r := loadResult{token: token, index: index, err: ErrNoLevels}
		if ok {
			r.m, r.err = m.loader.LoadMap(ctx, resource)
		}
		select {
		case m.results <- r:
		case <-ctx.Done():
		}
	}(m.index, entry.Map)

	return token
}

// Poll applies a finished load without blocking. It reports false while the
// latest request is still in flight.
func (m *Manager) Poll() (LoadStatus, bool) {
	for {
		select {
		case r := <-m.results:
			if st, ok := m.apply(r); ok {
				return st, true
			}
		default:
			return LoadStatus{}, false
		}
	}
}

// Wait blocks until the latest request completes or ctx is done.
func (m *Manager) Wait(ctx context.Context) (LoadStatus, error) {
	for {
		select {
		case r := <-m.results:
			if st, ok := m.apply(r); ok {
				return st, nil
			}
		case <-ctx.Done():
			return LoadStatus{}, ctx.Err()
		}
	}
}

func (m *Manager) apply(r loadResult) (LoadStatus, bool) {
	if r.token != m.token {
		if m.logger != nil {
			m.logger.Debug("discarding stale load", "token", r.token, "latest", m.token)
		}
		return LoadStatus{}, false
	}
	m.pending = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	st := LoadStatus{Token: r.token, Index: r.index}
	entry, _ := m.catalog.At(r.index)
	if r.err != nil {
		st.Err = r.err
		if m.logger != nil {
			m.logger.Error("level load failed", "level", entry.ID, "resource", entry.Map, "err", r.err)
		}
		return st, true
	}

	s := NewSession(m.opts)
	st.Result = s.Build(r.m)
	st.Info = fmt.Sprintf("TMX: %s · layers=%d · objects=%d", entry.ID, len(r.m.Layers), st.Result.ObjectsCount)
	m.session = s
	if m.logger != nil {
		m.logger.Info("level loaded", "level", entry.ID, "stars", st.Result.StarsTotal, "objects", st.Result.ObjectsCount)
	}
	return st, true
}

func (m *Manager) Index() int {
	return m.index
}

func (m *Manager) Level() levels.Entry {
	e, _ := m.catalog.At(m.index)
	return e
}

func (m *Manager) Session() *Session {
	return m.session
}

func (m *Manager) Pending() bool {
	return m.pending
}

// Close cancels any load in flight.
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
