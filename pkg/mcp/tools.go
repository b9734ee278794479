package mcp

// toolDefinitions returns the static tool catalog. The catalog is built once
// at server construction and returned wholesale by tools/list; it never
// changes afterwards.
func toolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "list_devices",
			Description: "List all devices, optionally filtered by zone name",
			InputSchema: objectSchema(map[string]any{
				"zone": map[string]any{
					"type":        "string",
					"description": "Optional zone name to filter devices by (case-insensitive)",
				},
			}),
		},
		{
			Name:        "control_device",
			Description: "Set a capability value on a device (e.g. onoff, dim, target_temperature)",
			InputSchema: objectSchema(map[string]any{
				"device_id": map[string]any{
					"type":        "string",
					"description": "ID of the device to control",
				},
				"capability": map[string]any{
					"type":        "string",
					"description": "Capability ID to set",
				},
				"value": map[string]any{
					"description": "Value to set; booleans, numbers and strings are accepted",
				},
			}, "device_id", "capability", "value"),
		},
		{
			Name:        "get_device_info",
			Description: "Get detailed information about a device, including current capability values",
			InputSchema: objectSchema(map[string]any{
				"device_id": map[string]any{
					"type":        "string",
					"description": "ID of the device to inspect",
				},
			}, "device_id"),
		},
		{
			Name:        "list_zones",
			Description: "List all zones (rooms/areas), sorted by name",
			InputSchema: objectSchema(nil),
		},
		{
			Name:        "list_flows",
			Description: "List all automation flows",
			InputSchema: objectSchema(map[string]any{
				"enabled_only": map[string]any{
					"type":        "boolean",
					"description": "Only list flows that are currently enabled",
				},
			}),
		},
		{
			Name:        "trigger_flow",
			Description: "Request a flow to be triggered by ID",
			InputSchema: objectSchema(map[string]any{
				"flow_id": map[string]any{
					"type":        "string",
					"description": "ID of the flow to trigger",
				},
			}, "flow_id"),
		},
		{
			Name:        "get_flow_info",
			Description: "Get detailed information about an automation flow",
			InputSchema: objectSchema(map[string]any{
				"flow_id": map[string]any{
					"type":        "string",
					"description": "ID of the flow to inspect",
				},
			}, "flow_id"),
		},
	}
}

// objectSchema builds a JSON Schema object declaration with the given
// properties and required field names.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{"type": "object"}
	if properties == nil {
		properties = map[string]any{}
	}
	schema["properties"] = properties
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
