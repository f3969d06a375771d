package editor

import (
	"encoding/json"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/pkg/protocol"
)

// commandTool forwards its parameters verbatim to a native editor command.
// The params are opaque to the bridge; the peer validates and executes.
type commandTool struct {
	client      *bridge.Client
	name        string
	title       string
	description string
	schema      string
	annotations map[string]bool
	validate    func(params map[string]any) error
}

func (t *commandTool) Name() string        { return t.name }
func (t *commandTool) Description() string { return t.description }
func (t *commandTool) Title() string       { return t.title }

func (t *commandTool) Schema() json.RawMessage {
	return json.RawMessage(t.schema)
}

func (t *commandTool) Annotations() map[string]bool {
	return t.annotations
}

func (t *commandTool) Execute(input json.RawMessage) (interface{}, error) {
	params, err := decodeParams(input)
	if err != nil {
		return nil, err
	}

	if t.validate != nil {
		if err := t.validate(params); err != nil {
			return protocol.Error(err.Error()), nil
		}
	}

	return sendCommand(t.client, t.name, params), nil
}
