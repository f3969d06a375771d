// Package protocol defines the wire types shared by the bridge and the MCP
// server: the JSON command format spoken to the Unreal Editor listener, the
// canonical response shape returned to every caller, and the JSON-RPC 2.0
// envelope used on the MCP side.
package protocol

// Command is the single request shape the editor listener accepts: one JSON
// object, UTF-8, no delimiter. Type selects the remote operation; Params is
// command-specific and opaque to the transport.
type Command struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the canonical response contract. Every exchange with the editor
// yields exactly one Response, regardless of which upstream shape the peer
// produced.
type Response struct {
	Status  string         `json:"status"`
	Result  map[string]any `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// IsSuccess reports whether the response carries a success status.
func (r *Response) IsSuccess() bool {
	return r != nil && r.Status == StatusSuccess
}

// Success builds a canonical success response. A nil result map is replaced
// with an empty one so callers can always index into Result.
func Success(result map[string]any) *Response {
	if result == nil {
		result = map[string]any{}
	}
	return &Response{Status: StatusSuccess, Result: result}
}

// Error builds a canonical error response.
func Error(msg string) *Response {
	return &Response{Status: StatusError, Error: msg}
}

type JSONRPCRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      any            `json:"id,omitempty"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params,omitempty"`
}

type JSONRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *JSONRPCError `json:"error,omitempty"`
}

type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Tool is the MCP wire representation of a registered tool.
type Tool struct {
	Name        string          `json:"name"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description"`
	InputSchema any             `json:"inputSchema"`
	Annotations map[string]bool `json:"annotations,omitempty"`
}
