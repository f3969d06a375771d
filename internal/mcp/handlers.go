package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/uemcp/uemcp/internal/logger"
	"github.com/uemcp/uemcp/internal/tools"
	"github.com/uemcp/uemcp/pkg/protocol"
	"github.com/uemcp/uemcp/pkg/version"
)

var log = logger.ForComponent("mcp")

// toolCallTimeout bounds a single tools/call. Editor operations (asset
// loads, screenshots, large Python snippets) can run long; the socket
// deadline below this still bounds each wire exchange.
const toolCallTimeout = 4 * time.Minute

type Handler struct {
	registry    *tools.Registry
	initialized bool
	clientInfo  ClientInfo
}

type ClientInfo struct {
	Name    string
	Version string
}

func NewHandler(registry *tools.Registry) *Handler {
	return &Handler{registry: registry}
}

// Handle dispatches one MCP method. A nil *JSONRPCError means success.
func (h *Handler) Handle(method string, params json.RawMessage) (any, *protocol.JSONRPCError) {
	switch method {
	case "initialize":
		result, err := h.handleInitialize(params)
		if err != nil {
			return nil, &protocol.JSONRPCError{Code: -32603, Message: err.Error()}
		}
		return result, nil
	case "ping":
		return map[string]any{}, nil
	case "tools/list":
		return h.handleListTools(), nil
	case "tools/call":
		result, err := h.handleCallTool(params)
		if err != nil {
			var toolErr *tools.ToolError
			if errors.As(err, &toolErr) {
				return nil, &protocol.JSONRPCError{Code: toolErr.Code, Message: toolErr.Message}
			}
			return nil, &protocol.JSONRPCError{Code: -32603, Message: err.Error()}
		}
		return result, nil
	case "notifications/initialized":
		h.initialized = true
		return map[string]any{}, nil
	default:
		return nil, &protocol.JSONRPCError{
			Code:    -32601,
			Message: fmt.Sprintf("Method not found: %s", method),
		}
	}
}

func (h *Handler) handleInitialize(params json.RawMessage) (any, error) {
	initReq := struct {
		ProtocolVersion string `json:"protocolVersion"`
		ClientInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}{}

	if len(params) > 0 {
		if err := json.Unmarshal(params, &initReq); err != nil {
			return nil, fmt.Errorf("failed to parse initialize request: %w", err)
		}
	}

	h.clientInfo.Name = initReq.ClientInfo.Name
	h.clientInfo.Version = initReq.ClientInfo.Version

	log.Info("client initialized",
		"client", h.clientInfo.Name,
		"client_version", h.clientInfo.Version,
		"protocol", initReq.ProtocolVersion)

	return map[string]any{
		"protocolVersion": negotiateProtocolVersion(initReq.ProtocolVersion),
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "Unreal MCP Bridge",
			"version": version.Version,
		},
	}, nil
}

func negotiateProtocolVersion(clientVersion string) string {
	for _, v := range version.SupportedProtocolVersions {
		if clientVersion == v {
			return v
		}
	}
	return version.ProtocolVersion
}

func (h *Handler) handleListTools() any {
	toolsList := h.registry.List()
	toolsData := make([]protocol.Tool, len(toolsList))

	for i, t := range toolsList {
		var schema any
		if err := json.Unmarshal(t.Schema(), &schema); err != nil {
			schema = json.RawMessage(t.Schema())
		}

		toolData := protocol.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: schema,
		}

		if annotated, ok := t.(tools.AnnotatedTool); ok {
			toolData.Title = annotated.Title()
			toolData.Annotations = annotated.Annotations()
		}

		toolsData[i] = toolData
	}

	return map[string]any{"tools": toolsData}
}

func (h *Handler) handleCallTool(params json.RawMessage) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool execution panicked: %v", r)
			log.Error("tool panic recovered",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	callReq := struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}{}

	if err := json.Unmarshal(params, &callReq); err != nil {
		return nil, fmt.Errorf("failed to parse tool call request: %w", err)
	}

	if callReq.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}

	result, err = h.registry.ExecuteWithTimeout(callReq.Name, callReq.Arguments, toolCallTimeout)
	if err != nil {
		var toolErr *tools.ToolError
		if errors.As(err, &toolErr) {
			return nil, toolErr
		}
		return nil, tools.NewToolExecutionError(callReq.Name, err)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": string(resultJSON),
			},
		},
	}, nil
}
