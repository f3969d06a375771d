// Package snippets manages the library of Python payloads injected into the
// editor's scripting runtime via exec_editor_python. Defaults ship embedded
// in the binary; an optional override directory shadows them and is
// hot-reloaded on change. Snippets are opaque payloads: nothing here
// interprets what they do inside the editor.
package snippets

import "fmt"

// Entry describes one registered snippet. Filenames starting with an
// underscore are shared helpers, never registered as tools.
type Entry struct {
	Name        string
	Filename    string
	Description string
}

var registry = []Entry{
	{
		Name:        "focus_viewport",
		Filename:    "focus_viewport.py",
		Description: "Focus the viewport on an actor or location",
	},
	{
		Name:        "take_screenshot",
		Filename:    "take_screenshot.py",
		Description: "Capture a screenshot of the active viewport",
	},
	{
		Name:        "get_selected_actors",
		Filename:    "get_selected_actors.py",
		Description: "Get currently selected actors in the editor",
	},
	{
		Name:        "set_selected_actors",
		Filename:    "set_selected_actors.py",
		Description: "Set editor selection to specified actors",
	},
	{
		Name:        "clear_selection",
		Filename:    "clear_selection.py",
		Description: "Clear the current editor selection",
	},
	{
		Name:        "get_current_level_info",
		Filename:    "get_current_level_info.py",
		Description: "Get information about the current level",
	},
	{
		Name:        "search_unreal_docs",
		Filename:    "search_unreal_docs.py",
		Description: "Search Unreal Engine Python API documentation",
	},
}

// Catalog returns all registered snippets in a stable order.
func Catalog() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a tool name to its registry entry.
func Lookup(name string) (Entry, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown snippet: %s", name)
}
