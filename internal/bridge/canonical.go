package bridge

import "github.com/uemcp/uemcp/pkg/protocol"

// The editor has shipped three response shapes over its lifetime: the
// canonical tagged success/error pair and an older untagged form that either
// carries success:false with an error/message string or nothing recognizable
// at all. Each raw object is classified into exactly one variant before
// normalization so the mapping is an exhaustive switch, not field probing
// scattered through callers.

type rawKind int

const (
	rawAbsent rawKind = iota
	rawSuccess
	rawError
	rawLegacyFailure
	rawLegacy
)

const noResponseMsg = "no response from Unreal Engine"
const unknownErrorMsg = "unknown Unreal error"

func classify(raw map[string]any) rawKind {
	if raw == nil {
		return rawAbsent
	}
	switch raw["status"] {
	case protocol.StatusError:
		return rawError
	case protocol.StatusSuccess:
		return rawSuccess
	}
	if v, ok := raw["success"].(bool); ok && !v {
		return rawLegacyFailure
	}
	return rawLegacy
}

// Normalize maps any raw peer response onto the canonical contract. It is
// pure and total: every input, nil included, yields exactly one canonical
// response and no error path exists.
func Normalize(raw map[string]any) *protocol.Response {
	switch classify(raw) {
	case rawAbsent:
		return protocol.Error(noResponseMsg)

	case rawError:
		resp := protocol.Error(errorMessage(raw))
		if details, ok := raw["details"].(map[string]any); ok {
			resp.Details = details
		}
		return resp

	case rawSuccess:
		return protocol.Success(resultMap(raw["result"]))

	case rawLegacyFailure:
		return protocol.Error(errorMessage(raw))

	default:
		// Untagged object: assumed successful and wrapped whole. Older
		// peers report success this way, so the permissive default is
		// load-bearing, not a defect.
		return protocol.Success(raw)
	}
}

// NormalizeError converts a transport failure into the canonical error shape.
func NormalizeError(err error) *protocol.Response {
	if err == nil {
		return protocol.Error(noResponseMsg)
	}
	return protocol.Error(err.Error())
}

func errorMessage(raw map[string]any) string {
	if msg, ok := raw["error"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := raw["message"].(string); ok && msg != "" {
		return msg
	}
	return unknownErrorMsg
}

func resultMap(v any) map[string]any {
	switch result := v.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return result
	default:
		// A scalar result would violate the contract; keep the value
		// rather than dropping it.
		return map[string]any{"value": result}
	}
}
