package snippets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCatalogMatchesEmbeddedFiles(t *testing.T) {
	lib := NewLibrary("")

	for _, entry := range Catalog() {
		content, err := lib.Load(entry.Name)
		if err != nil {
			t.Errorf("load %s: %v", entry.Name, err)
			continue
		}
		if !strings.Contains(content, "json") {
			t.Errorf("snippet %s does not emit JSON output", entry.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no_such_tool"); err == nil {
		t.Error("expected error for unknown snippet")
	}
}

func TestPrivateHelpersNotRegistered(t *testing.T) {
	for _, entry := range Catalog() {
		if strings.HasPrefix(entry.Filename, "_") {
			t.Errorf("private helper %s must not be registered", entry.Filename)
		}
	}
}

func TestOverrideShadowsEmbedded(t *testing.T) {
	dir := t.TempDir()
	override := "print('overridden')\n"
	if err := os.WriteFile(filepath.Join(dir, "clear_selection.py"), []byte(override), 0600); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(dir)
	content, err := lib.Load("clear_selection")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if content != override {
		t.Errorf("override not used, got %q", content)
	}

	// Tools without an override still resolve to the embedded default.
	content, err = lib.Load("take_screenshot")
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if !strings.Contains(content, "HighResShot") {
		t.Errorf("embedded snippet not served: %q", content)
	}
}

func TestDecodeSnippetEncodings(t *testing.T) {
	plain := "print('ok')"

	utf8BOM := append([]byte{0xEF, 0xBB, 0xBF}, plain...)
	got, err := decodeSnippet(utf8BOM)
	if err != nil || got != plain {
		t.Errorf("utf-8 BOM: got %q, err %v", got, err)
	}

	utf16le := []byte{0xFF, 0xFE}
	for _, r := range plain {
		utf16le = append(utf16le, byte(r), 0x00)
	}
	got, err = decodeSnippet(utf16le)
	if err != nil || got != plain {
		t.Errorf("utf-16 LE: got %q, err %v", got, err)
	}

	got, err = decodeSnippet([]byte(plain))
	if err != nil || got != plain {
		t.Errorf("plain utf-8: got %q, err %v", got, err)
	}
}

func TestBuildExecCode(t *testing.T) {
	lib := NewLibrary("")

	code, err := lib.BuildExecCode("print(MCP_PARAMS['x'])", map[string]any{"x": 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(code, `MCP_PARAMS = json.loads(r'''{"x":1}''')`) {
		t.Errorf("params prelude missing:\n%s", code)
	}
	if !strings.HasSuffix(code, "print(MCP_PARAMS['x'])\n") {
		t.Errorf("snippet body not appended:\n%s", code)
	}
	if strings.Contains(code, "sys.path.insert") {
		t.Error("no sys.path injection expected without an override dir")
	}
}

func TestBuildExecCodeRejectsTripleQuote(t *testing.T) {
	lib := NewLibrary("")
	_, err := lib.BuildExecCode("pass", map[string]any{"code": "x = '''y'''"})
	if err == nil {
		t.Error("params containing triple quotes must be rejected")
	}
}

func TestBuildExecCodeWithOverrideDir(t *testing.T) {
	dir := t.TempDir()
	lib := NewLibrary(dir)

	code, err := lib.BuildExecCode("pass", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(code, "sys.path.insert(0, r'''"+dir+"''')") {
		t.Errorf("override dir should be pushed onto sys.path:\n%s", code)
	}
}

func TestWatcherInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clear_selection.py")
	if err := os.WriteFile(path, []byte("print('v1')\n"), 0600); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(dir)
	if err := lib.StartWatcher(); err != nil {
		t.Fatalf("start watcher: %v", err)
	}
	defer lib.Close()

	content, err := lib.Load("clear_selection")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(content, "v1") {
		t.Fatalf("unexpected initial content %q", content)
	}

	if err := os.WriteFile(path, []byte("print('v2')\n"), 0600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		content, err = lib.Load("clear_selection")
		if err == nil && strings.Contains(content, "v2") {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("cache never picked up the rewritten snippet, last content %q", content)
}

func TestWatcherIgnoresHelpers(t *testing.T) {
	if !shouldIgnore("_lib.py") {
		t.Error("underscore helpers should be ignored")
	}
	if !shouldIgnore(".hidden.py") {
		t.Error("hidden files should be ignored")
	}
	if !shouldIgnore("focus_viewport.py.swp") {
		t.Error("swap files should be ignored")
	}
	if shouldIgnore("focus_viewport.py") {
		t.Error("regular snippets must not be ignored")
	}
}
