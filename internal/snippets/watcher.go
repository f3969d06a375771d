package snippets

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ignorePatterns filters events the reload should never act on: private
// helper modules, hidden files and editor swap files.
var ignorePatterns = []string{
	"_*.py",
	".*",
	"*~",
	"*.swp",
	"#*#",
}

// Watcher invalidates cached snippets when their override files change.
type Watcher struct {
	dir        string
	fsWatcher  *fsnotify.Watcher
	invalidate func(filename string)
	done       chan struct{}
}

func NewWatcher(dir string, invalidate func(filename string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		dir:        dir,
		fsWatcher:  fsWatcher,
		invalidate: invalidate,
		done:       make(chan struct{}),
	}, nil
}

func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}
	log.Info("watching snippet overrides", "dir", w.dir)
	go w.run()
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("snippet watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	name := filepath.Base(event.Name)
	if shouldIgnore(name) {
		return
	}
	if matched, _ := doublestar.Match("*.py", name); !matched {
		return
	}

	log.Info("snippet changed, reloading", "file", name, "op", event.Op.String())
	w.invalidate(name)
}

func shouldIgnore(name string) bool {
	for _, pattern := range ignorePatterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}
