package snippets

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/encoding/unicode"

	"github.com/uemcp/uemcp/internal/logger"
)

//go:embed py/*.py
var embedded embed.FS

var log = logger.ForComponent("snippets")

// Library serves snippet source text. Resolution order: override directory
// (if configured), then the embedded defaults. Loaded content is cached until
// the watcher invalidates it.
type Library struct {
	overrideDir string
	mu          sync.RWMutex
	cache       map[string]string
	watcher     *Watcher
}

func NewLibrary(overrideDir string) *Library {
	return &Library{
		overrideDir: overrideDir,
		cache:       make(map[string]string),
	}
}

// Load returns the snippet source for a registered tool name.
func (l *Library) Load(name string) (string, error) {
	entry, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return l.loadFile(entry.Filename)
}

func (l *Library) loadFile(filename string) (string, error) {
	l.mu.RLock()
	cached, ok := l.cache[filename]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	content, err := l.read(filename)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	l.cache[filename] = content
	l.mu.Unlock()
	return content, nil
}

func (l *Library) read(filename string) (string, error) {
	if l.overrideDir != "" {
		path := filepath.Join(l.overrideDir, filename)
		if data, err := os.ReadFile(path); err == nil {
			log.Debug("loaded snippet override", "file", path)
			return decodeSnippet(data)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("read snippet %s: %w", path, err)
		}
	}

	data, err := embedded.ReadFile("py/" + filename)
	if err != nil {
		return "", fmt.Errorf("snippet not found: %s", filename)
	}
	return decodeSnippet(data)
}

// invalidate drops a cached snippet after the watcher sees it change.
func (l *Library) invalidate(filename string) {
	l.mu.Lock()
	delete(l.cache, filename)
	l.mu.Unlock()
}

// StartWatcher begins hot reload of the override directory. A no-op when no
// override directory is configured.
func (l *Library) StartWatcher() error {
	if l.overrideDir == "" {
		return nil
	}
	w, err := NewWatcher(l.overrideDir, l.invalidate)
	if err != nil {
		return err
	}
	l.watcher = w
	return w.Start()
}

func (l *Library) Close() error {
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}

// decodeSnippet normalizes snippet bytes to UTF-8 text. Editors on Windows
// save Python files with BOMs and occasionally as UTF-16; the injected code
// must be clean UTF-8.
func decodeSnippet(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return string(data[3:]), nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}), bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := decoder.Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode utf-16 snippet: %w", err)
		}
		return string(decoded), nil
	default:
		return string(data), nil
	}
}

// BuildExecCode wraps a snippet with the parameter prelude the editor side
// expects: MCP_PARAMS is bound to the JSON-decoded params before the snippet
// body runs. When an override directory exists it is pushed onto sys.path so
// custom snippets can import the shared _lib helpers.
func (l *Library) BuildExecCode(snippet string, params map[string]any) (string, error) {
	if params == nil {
		params = map[string]any{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal snippet params: %w", err)
	}
	// The params JSON rides inside a Python raw triple-quoted string;
	// a ''' sequence inside a value would terminate it early.
	if strings.Contains(string(paramsJSON), "'''") {
		return "", fmt.Errorf("snippet params must not contain ''' sequences")
	}

	var b strings.Builder
	b.WriteString("import json\n")
	b.WriteString("import sys\n")
	if l.overrideDir != "" {
		fmt.Fprintf(&b, "sys.path.insert(0, r'''%s''')\n", l.overrideDir)
	}
	fmt.Fprintf(&b, "MCP_PARAMS = json.loads(r'''%s''')\n\n", paramsJSON)
	b.WriteString(snippet)
	b.WriteString("\n")
	return b.String(), nil
}
