package editor

import (
	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/tools"
)

func levelTools(client *bridge.Client) []tools.Tool {
	return []tools.Tool{
		&commandTool{
			client:      client,
			name:        "create_level",
			title:       "Create Level",
			description: "Create a new level asset and open it in the editor",
			schema: `{
				"type": "object",
				"properties": {
					"level_name": {
						"type": "string",
						"description": "Name of the new level"
					},
					"folder": {
						"type": "string",
						"description": "Content folder to create the level in (optional)"
					},
					"template_level": {
						"type": "string",
						"description": "Existing level to use as a template (optional)"
					}
				},
				"required": ["level_name"]
			}`,
			annotations: tools.NonIdempotentWriteAnnotations(),
			validate:    requireString("level_name"),
		},
		&commandTool{
			client:      client,
			name:        "open_level",
			title:       "Open Level",
			description: "Open an existing level in the editor",
			schema: `{
				"type": "object",
				"properties": {
					"level": {
						"type": "string",
						"description": "Asset path of the level to open"
					}
				},
				"required": ["level"]
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate:    requireString("level"),
		},
		&commandTool{
			client:      client,
			name:        "save_current_level",
			title:       "Save Current Level",
			description: "Save the currently open level",
			schema: `{
				"type": "object",
				"properties": {},
				"required": []
			}`,
			annotations: tools.SafeWriteAnnotations(),
		},
		&commandTool{
			client:      client,
			name:        "save_all_levels",
			title:       "Save All Levels",
			description: "Save every dirty level and package in the project",
			schema: `{
				"type": "object",
				"properties": {},
				"required": []
			}`,
			annotations: tools.SafeWriteAnnotations(),
		},
	}
}
