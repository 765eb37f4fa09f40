package progress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

var ErrNotFound = errors.New("progress: key not found")

// Backend stores opaque values by key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store loads and saves the progress document as one unit.
type Store struct {
	Backend Backend
	Key     string
	Logger  *log.Logger
}

func NewStore(b Backend, logger *log.Logger) *Store {
	return &Store{Backend: b, Key: Key, Logger: logger}
}

// Load returns the stored document. Missing data gives an empty document and
// malformed data is normalised and logged.
func (s *Store) Load(ctx context.Context) (*Progress, error) {
	data, err := s.Backend.Get(ctx, s.key())
	if errors.Is(err, ErrNotFound) {
		return New(), nil
	}
	if err != nil {
		return New(), fmt.Errorf("load progress: %w", err)
	}

	p, err := Decode(data)
	if err != nil && s.Logger != nil {
		s.Logger.Warn("progress normalised", "key", s.key(), "err", err)
	}
	return p, nil
}

func (s *Store) Save(ctx context.Context, p *Progress) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := s.Backend.Put(ctx, s.key(), data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	if err := s.Backend.Delete(ctx, s.key()); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.Backend.Close()
}

func (s *Store) key() string {
	if s.Key == "" {
		return Key
	}
	return s.Key
}

// MemoryBackend keeps values in a map.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryBackend) Close() error { return nil }

// FileBackend writes each key to <Dir>/<key>.json.
type FileBackend struct {
	Dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("progress: cannot create directory %s: %w", dir, err)
	}
	return &FileBackend{Dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Put replaces the file atomically through a temp file in the same directory.
func (f *FileBackend) Put(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.Dir, key+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, f.path(key)); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

func (f *FileBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (f *FileBackend) Close() error { return nil }

func expandHome(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("progress: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}
