package editor

import (
	"encoding/json"
	"strings"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/pkg/protocol"
)

// extractLastJSONLine finds the snippet's result in captured stdout.
// Snippets may print debug text before their final json.dumps line, so the
// scan runs from the end and only accepts status-tagged objects.
func extractLastJSONLine(output string) (*protocol.Response, bool) {
	if output == "" {
		return nil, false
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			continue
		}
		// Any status-tagged object counts as the verdict; Normalize maps
		// nonstandard status values the same way it maps untagged peers.
		if _, ok := raw["status"]; !ok {
			continue
		}
		return bridge.Normalize(raw), true
	}

	return nil, false
}
