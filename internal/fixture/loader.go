// Package fixture loads JSON event fixtures and the YAML suites that
// describe them, and watches both for changes so the runner can re-run
// on save.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// LoadEvent reads one JSON fixture file into an untyped value. The result
// is handed to the handler as-is, so a fixture holding a JSON array or
// scalar exercises the "not a dictionary" path.
func LoadEvent(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var evt interface{}
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return evt, nil
}

// Loader reads a YAML suite file and watches it (and its fixture
// directory) for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Suite
	onChange []func(*Suite)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	s, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = s
	return l, nil
}

// Suite returns the current (latest) suite.
func (l *Loader) Suite() *Suite {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the suite reloads.
func (l *Loader) OnChange(fn func(*Suite)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// CasePath resolves a case's fixture file against the suite's directory.
func (l *Loader) CasePath(c Case) string {
	return filepath.Join(l.Suite().Dir, c.File)
}

// Watch starts a background goroutine that reloads the suite and fires
// the OnChange callbacks whenever the suite file or any fixture in the
// suite directory is written. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("suite watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("suite watcher add %s: %w", l.path, err)
	}
	if err := w.Add(l.Suite().Dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("suite watcher add %s: %w", l.Suite().Dir, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					s, err := l.load()
					if err != nil {
						// Keep running with the old suite.
						continue
					}
					l.mu.Lock()
					l.current = s
					callbacks := make([]func(*Suite), len(l.onChange))
					copy(callbacks, l.onChange)
					l.mu.Unlock()
					for _, fn := range callbacks {
						fn(s)
					}
				}
			case <-w.Errors:
				// Ignore watcher errors.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

// Reload forces an immediate re-read of the suite file.
func (l *Loader) Reload() (*Suite, error) {
	s, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = s
	callbacks := make([]func(*Suite), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(s)
	}
	return s, nil
}

func (l *Loader) load() (*Suite, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", l.path, err)
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", l.path, err)
	}
	// Apply defaults and resolve the fixture dir against the suite file.
	if s.Dir == "" {
		s.Dir = "events"
	}
	if !filepath.IsAbs(s.Dir) {
		s.Dir = filepath.Join(filepath.Dir(l.path), s.Dir)
	}
	return &s, nil
}
