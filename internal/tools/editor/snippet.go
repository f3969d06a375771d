package editor

import (
	"encoding/json"
	"fmt"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/snippets"
	"github.com/uemcp/uemcp/internal/tools"
	"github.com/uemcp/uemcp/pkg/protocol"
)

// snippetTool wraps one registered snippet as an MCP tool. Parameter maps
// pass straight through to MCP_PARAMS; validate rejects calls before any
// socket is opened.
type snippetTool struct {
	client      *bridge.Client
	lib         *snippets.Library
	entry       snippets.Entry
	title       string
	schema      string
	annotations map[string]bool
	validate    func(params map[string]any) error
}

func (t *snippetTool) Name() string        { return t.entry.Name }
func (t *snippetTool) Description() string { return t.entry.Description }
func (t *snippetTool) Title() string       { return t.title }

func (t *snippetTool) Schema() json.RawMessage {
	return json.RawMessage(t.schema)
}

func (t *snippetTool) Annotations() map[string]bool {
	return t.annotations
}

func (t *snippetTool) Execute(input json.RawMessage) (interface{}, error) {
	params, err := decodeParams(input)
	if err != nil {
		return nil, err
	}

	if t.validate != nil {
		if err := t.validate(params); err != nil {
			return protocol.Error(err.Error()), nil
		}
	}

	return execSnippet(t.client, t.lib, t.entry.Name, params), nil
}

func mustEntry(name string) snippets.Entry {
	entry, err := snippets.Lookup(name)
	if err != nil {
		panic(err)
	}
	return entry
}

func snippetTools(client *bridge.Client, lib *snippets.Library) []tools.Tool {
	return []tools.Tool{
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("focus_viewport"),
			title:  "Focus Viewport",
			schema: `{
				"type": "object",
				"properties": {
					"target": {
						"type": "string",
						"description": "Name or label of the actor to focus on (takes precedence over location)"
					},
					"location": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3,
						"description": "[X, Y, Z] coordinates to focus on"
					},
					"distance": {
						"type": "number",
						"description": "Distance from the target (default: 1000.0)"
					},
					"orientation": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3,
						"description": "[Pitch, Yaw, Roll] for the viewport camera"
					}
				},
				"required": []
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate: func(params map[string]any) error {
				if params["target"] == nil && params["location"] == nil {
					return fmt.Errorf("either 'target' or 'location' must be provided")
				}
				return nil
			},
		},
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("take_screenshot"),
			title:  "Take Screenshot",
			schema: `{
				"type": "object",
				"properties": {
					"filepath": {
						"type": "string",
						"description": "Path to save the screenshot (.png appended if missing)"
					}
				},
				"required": ["filepath"]
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate: func(params map[string]any) error {
				if s, _ := params["filepath"].(string); s == "" {
					return fmt.Errorf("filepath is required")
				}
				return nil
			},
		},
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("get_selected_actors"),
			title:  "Get Selected Actors",
			schema: `{
				"type": "object",
				"properties": {},
				"required": []
			}`,
			annotations: tools.ReadOnlyAnnotations(),
		},
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("set_selected_actors"),
			title:  "Set Selected Actors",
			schema: `{
				"type": "object",
				"properties": {
					"actor_names": {
						"type": "array",
						"items": {"type": "string"},
						"minItems": 1,
						"description": "Actor names or labels to select"
					}
				},
				"required": ["actor_names"]
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate: func(params map[string]any) error {
				names, ok := params["actor_names"].([]any)
				if !ok || len(names) == 0 {
					return fmt.Errorf("actor_names must be a non-empty list")
				}
				return nil
			},
		},
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("clear_selection"),
			title:  "Clear Selection",
			schema: `{
				"type": "object",
				"properties": {},
				"required": []
			}`,
			annotations: tools.SafeWriteAnnotations(),
		},
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("get_current_level_info"),
			title:  "Get Current Level Info",
			schema: `{
				"type": "object",
				"properties": {
					"include_streaming": {
						"type": "boolean",
						"description": "Include streaming level details (default: true)"
					}
				},
				"required": []
			}`,
			annotations: tools.ReadOnlyAnnotations(),
		},
		&snippetTool{
			client: client,
			lib:    lib,
			entry:  mustEntry("search_unreal_docs"),
			title:  "Search Unreal Docs",
			schema: `{
				"type": "object",
				"properties": {
					"query": {
						"type": "string",
						"description": "Module, class or function name to look up"
					}
				},
				"required": ["query"]
			}`,
			annotations: tools.ReadOnlyAnnotations(),
			validate: func(params map[string]any) error {
				if s, _ := params["query"].(string); s == "" {
					return fmt.Errorf("query parameter is required")
				}
				return nil
			},
		},
	}
}
