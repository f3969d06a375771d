package history

import (
	"encoding/json"
	"fmt"

	"github.com/uemcp/uemcp/internal/tools"
)

type queryRequest struct {
	Limit   int    `json:"limit,omitempty"`
	Command string `json:"command,omitempty"`
}

// Tool exposes the command log as a read-only MCP tool.
type Tool struct {
	store *Store
}

func NewTool(store *Store) *Tool {
	return &Tool{store: store}
}

func (t *Tool) Name() string {
	return "command_history"
}

func (t *Tool) Description() string {
	return "List recent commands sent to the Unreal Editor with status and timing"
}

func (t *Tool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"limit": {
				"type": "integer",
				"description": "Maximum entries to return (default: 50, max: 500)",
				"minimum": 1
			},
			"command": {
				"type": "string",
				"description": "Only return entries for this command type (optional)"
			}
		},
		"required": []
	}`)
}

func (t *Tool) Title() string {
	return "Command History"
}

func (t *Tool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *Tool) Execute(input json.RawMessage) (interface{}, error) {
	var req queryRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fmt.Errorf("invalid request: %w", err)
		}
	}

	entries, err := t.store.Recent(req.Limit, req.Command)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	}, nil
}
