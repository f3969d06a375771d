package version

// Version is the server version reported during MCP initialize.
const Version = "0.3.0"

// ProtocolVersion is the MCP protocol revision this server prefers.
const ProtocolVersion = "2025-03-26"

// SupportedProtocolVersions lists revisions the server can negotiate down to.
var SupportedProtocolVersions = []string{
	"2025-03-26",
	"2024-11-05",
}
