package editor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/tools"
	"github.com/uemcp/uemcp/pkg/protocol"
)

type execRequest struct {
	Code string `json:"code"`
}

// ExecTool runs arbitrary Python inside the editor process. This is the
// primary tool; everything else in the catalog is a convenience wrapper
// around it or a native editor command.
type ExecTool struct {
	client *bridge.Client
}

func NewExecTool(client *bridge.Client) *ExecTool {
	return &ExecTool{client: client}
}

func (t *ExecTool) Name() string {
	return ExecCommand
}

func (t *ExecTool) Description() string {
	return "Execute Python code in the Unreal Editor with full editor privileges. " +
		"PRIMARY TOOL: use for operations no convenience wrapper covers. " +
		"Only for trusted local clients; the code runs unsandboxed."
}

func (t *ExecTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"code": {
				"type": "string",
				"description": "Python code to execute; should end by printing a JSON status line"
			}
		},
		"required": ["code"]
	}`)
}

func (t *ExecTool) Title() string {
	return "Execute Editor Python"
}

func (t *ExecTool) Annotations() map[string]bool {
	return tools.DestructiveAnnotations()
}

func (t *ExecTool) Execute(input json.RawMessage) (interface{}, error) {
	var req execRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if strings.TrimSpace(req.Code) == "" {
		return protocol.Error("Python code cannot be empty"), nil
	}

	return sendCommand(t.client, ExecCommand, map[string]any{"code": req.Code}), nil
}
