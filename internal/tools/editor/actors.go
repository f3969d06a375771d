package editor

import (
	"fmt"

	"github.com/uemcp/uemcp/internal/bridge"
	"github.com/uemcp/uemcp/internal/tools"
)

func requireString(key string) func(params map[string]any) error {
	return func(params map[string]any) error {
		if s, _ := params[key].(string); s == "" {
			return fmt.Errorf("'%s' parameter is required", key)
		}
		return nil
	}
}

// actorTools covers the native actor commands the editor plugin handles
// without going through the Python runtime.
func actorTools(client *bridge.Client) []tools.Tool {
	return []tools.Tool{
		&commandTool{
			client:      client,
			name:        "get_actors_in_level",
			title:       "Get Actors In Level",
			description: "List all actors in the current level with name, class and transform",
			schema: `{
				"type": "object",
				"properties": {},
				"required": []
			}`,
			annotations: tools.ReadOnlyAnnotations(),
		},
		&commandTool{
			client:      client,
			name:        "find_actors_by_name",
			title:       "Find Actors By Name",
			description: "Find actors in the current level whose name matches a pattern",
			schema: `{
				"type": "object",
				"properties": {
					"pattern": {
						"type": "string",
						"description": "Name pattern to match (supports * wildcards)"
					}
				},
				"required": ["pattern"]
			}`,
			annotations: tools.ReadOnlyAnnotations(),
			validate:    requireString("pattern"),
		},
		&commandTool{
			client:      client,
			name:        "get_actor_properties",
			title:       "Get Actor Properties",
			description: "Return the full property set of an actor, including components and transform detail",
			schema: `{
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"description": "Name of the actor to inspect"
					}
				},
				"required": ["name"]
			}`,
			annotations: tools.ReadOnlyAnnotations(),
			validate:    requireString("name"),
		},
		&commandTool{
			client:      client,
			name:        "spawn_actor",
			title:       "Spawn Actor",
			description: "Spawn a built-in actor (StaticMeshActor, PointLight, SpotLight, DirectionalLight, CameraActor) in the current level",
			schema: `{
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"description": "Unique name for the new actor"
					},
					"type": {
						"type": "string",
						"enum": ["StaticMeshActor", "PointLight", "SpotLight", "DirectionalLight", "CameraActor"],
						"description": "Actor class to spawn"
					},
					"location": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3,
						"description": "[X, Y, Z] spawn location (default: origin)"
					},
					"rotation": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3,
						"description": "[Pitch, Yaw, Roll] spawn rotation"
					},
					"scale": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3,
						"description": "[X, Y, Z] scale (default: [1,1,1])"
					}
				},
				"required": ["name", "type"]
			}`,
			annotations: tools.NonIdempotentWriteAnnotations(),
			validate: func(params map[string]any) error {
				if err := requireString("name")(params); err != nil {
					return err
				}
				return requireString("type")(params)
			},
		},
		&commandTool{
			client:      client,
			name:        "delete_actor",
			title:       "Delete Actor",
			description: "Delete an actor from the current level by name",
			schema: `{
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"description": "Name of the actor to delete"
					}
				},
				"required": ["name"]
			}`,
			annotations: tools.DestructiveAnnotations(),
			validate:    requireString("name"),
		},
		&commandTool{
			client:      client,
			name:        "set_actor_transform",
			title:       "Set Actor Transform",
			description: "Update an actor's location, rotation and/or scale",
			schema: `{
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"description": "Name of the actor to modify"
					},
					"location": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3
					},
					"rotation": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3
					},
					"scale": {
						"type": "array",
						"items": {"type": "number"},
						"minItems": 3,
						"maxItems": 3
					}
				},
				"required": ["name"]
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate:    requireString("name"),
		},
		&commandTool{
			client:      client,
			name:        "set_actor_property",
			title:       "Set Actor Property",
			description: "Set a single named property on an actor; the value may be any JSON type the property accepts",
			schema: `{
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"description": "Name of the actor to modify"
					},
					"property_name": {
						"type": "string",
						"description": "Property to set, e.g. bHidden or Mobility"
					},
					"property_value": {
						"description": "New value; type must match the property"
					}
				},
				"required": ["name", "property_name", "property_value"]
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate: func(params map[string]any) error {
				if err := requireString("name")(params); err != nil {
					return err
				}
				if err := requireString("property_name")(params); err != nil {
					return err
				}
				if _, ok := params["property_value"]; !ok {
					return fmt.Errorf("'property_value' parameter is required")
				}
				return nil
			},
		},
		&commandTool{
			client:      client,
			name:        "set_actor_static_mesh",
			title:       "Set Actor Static Mesh",
			description: "Assign a static mesh asset to an actor's mesh component",
			schema: `{
				"type": "object",
				"properties": {
					"name": {
						"type": "string",
						"description": "Name of the target actor"
					},
					"static_mesh": {
						"type": "string",
						"description": "Asset path of the mesh, e.g. /Engine/BasicShapes/Cube"
					},
					"component_name": {
						"type": "string",
						"description": "Specific mesh component to target (optional)"
					}
				},
				"required": ["name", "static_mesh"]
			}`,
			annotations: tools.SafeWriteAnnotations(),
			validate: func(params map[string]any) error {
				if err := requireString("name")(params); err != nil {
					return err
				}
				return requireString("static_mesh")(params)
			},
		},
	}
}
