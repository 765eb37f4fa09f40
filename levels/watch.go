package levels

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long a file must stay quiet before it is reported.
const DefaultWatchDebounce = 150 * time.Millisecond

type WatchOptions struct {
	// Debounce is the quiet period after the last write. Zero means
	// DefaultWatchDebounce.
	Debounce time.Duration
	// Match selects the files to report. Nil means IsLevelFile.
	Match func(path string) bool
}

// Watcher reports edited map and catalog files. Bursts of writes to the same
// files, as editors produce on save, are reported once the directory settles.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	match    func(string) bool

	Events chan string
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(opts WatchOptions, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:       fw,
		debounce: opts.Debounce,
		match:    opts.Match,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultWatchDebounce
	}
	if w.match == nil {
		w.match = IsLevelFile
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !w.match(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)
		case <-timer.C:
			if !w.flush(pending) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// flush sends pending paths in name order and clears the set. It returns
// false when the watcher closed mid-send.
func (w *Watcher) flush(pending map[string]struct{}) bool {
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	sort.Strings(names)
	clear(pending)

	for _, name := range names {
		select {
		case w.Events <- name:
		case <-w.closeCh:
			return false
		}
	}
	return true
}

// IsLevelFile reports whether path is a map or catalog file.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tmx" || ext == ".yaml" || ext == ".yml"
}

// Poll returns the next pending change without blocking.
func (w *Watcher) Poll() (string, bool) {
	select {
	case name, ok := <-w.Events:
		return name, ok
	default:
		return "", false
	}
}
