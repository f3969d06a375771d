// Package editor exposes the Unreal Editor tool catalog. Every tool resolves
// to one command over the bridge; snippet-backed tools wrap the primary
// exec_editor_python command with a payload from the snippet library.
package editor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/logger"
	"github.com/uemcp/uemcp/internal/snippets"
	"github.com/uemcp/uemcp/internal/tools"
	"github.com/uemcp/uemcp/pkg/protocol"
)

var log = logger.ForComponent("editor")

// ExecCommand is the editor command every snippet tool rides on.
const ExecCommand = "exec_editor_python"

// GetTools builds the full catalog.
func GetTools(client *bridge.Client, lib *snippets.Library) []tools.Tool {
	catalog := []tools.Tool{
		NewExecTool(client),
	}
	catalog = append(catalog, snippetTools(client, lib)...)
	catalog = append(catalog, actorTools(client)...)
	catalog = append(catalog, levelTools(client)...)
	return catalog
}

// sendCommand issues one editor command and folds transport failures into
// the canonical error shape. Tools surface editor and transport failures the
// same way — as a canonical response — so an MCP client always sees one
// contract.
func sendCommand(client *bridge.Client, command string, params map[string]any) *protocol.Response {
	resp, _ := client.Send(context.Background(), command, params)
	return resp
}

// decodeParams parses tool input into a parameter map for pass-through
// commands.
func decodeParams(input json.RawMessage) (map[string]any, error) {
	if len(input) == 0 {
		return map[string]any{}, nil
	}
	var params map[string]any
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}

// execSnippet loads a snippet, injects params, runs it remotely and parses
// the JSON line the snippet printed.
func execSnippet(client *bridge.Client, lib *snippets.Library, name string, params map[string]any) *protocol.Response {
	snippet, err := lib.Load(name)
	if err != nil {
		log.Error("snippet load failed", "snippet", name, "error", err)
		return protocol.Error(fmt.Sprintf("failed to load snippet: %v", err))
	}

	code, err := lib.BuildExecCode(snippet, params)
	if err != nil {
		return protocol.Error(err.Error())
	}

	resp := sendCommand(client, ExecCommand, map[string]any{"code": code})
	if !resp.IsSuccess() {
		return resp
	}

	return parseExecResult(resp.Result)
}

// parseExecResult interprets the exec_editor_python result contract:
// success bool, output stdout text, error_output stderr text. The snippet's
// own verdict is the final JSON line it printed to stdout.
func parseExecResult(result map[string]any) *protocol.Response {
	success, _ := result["success"].(bool)
	if !success {
		errMsg, _ := result["error"].(string)
		if errMsg == "" {
			errMsg = "Python execution failed"
		}
		if errOutput, _ := result["error_output"].(string); errOutput != "" {
			errMsg = errMsg + "\n" + errOutput
		}
		return protocol.Error(errMsg)
	}

	output, _ := result["output"].(string)
	if parsed, ok := extractLastJSONLine(output); ok {
		return parsed
	}

	preview := output
	if len(preview) > 500 {
		preview = preview[:500]
	}
	if preview == "" {
		preview = "No output"
	}
	resp := protocol.Error("Snippet did not print a parseable JSON result")
	resp.Details = map[string]any{"output_preview": preview}
	return resp
}
