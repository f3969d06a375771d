package tools

import (
	"encoding/json"

	"github.com/uemcp/uemcp/internal/bridge"
)

// HealthTool reports server status and the advisory liveness of the editor
// connection. It never dials: real commands reconnect on their own.
type HealthTool struct {
	client    *bridge.Client
	toolCount func() int
}

func NewHealthTool(client *bridge.Client, toolCount func() int) *HealthTool {
	return &HealthTool{client: client, toolCount: toolCount}
}

func (t *HealthTool) Name() string {
	return "health"
}

func (t *HealthTool) Description() string {
	return "Check bridge health and Unreal Editor connection state"
}

func (t *HealthTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *HealthTool) Title() string {
	return "Bridge Health"
}

func (t *HealthTool) Annotations() map[string]bool {
	return ReadOnlyAnnotations()
}

func (t *HealthTool) Execute(input json.RawMessage) (interface{}, error) {
	stats := t.client.Stats()
	return map[string]interface{}{
		"status":      "healthy",
		"unreal_addr": t.client.Addr(),
		"connection":  stats,
		"tools":       t.toolCount(),
	}, nil
}
