package schema

import (
	"encoding/json"
	"testing"
)

func controlSchema() json.RawMessage {
	return json.RawMessage(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"device_id": {"type": "string"},
			"capability": {"type": "string"},
			"value": {}
		},
		"required": ["device_id", "capability", "value"],
		"additionalProperties": false
	}`)
}

func TestValidateArguments_ValidPayload(t *testing.T) {
	v := NewValidator()

	err := v.ValidateArguments(controlSchema(), map[string]any{
		"device_id":  "dev-1",
		"capability": "onoff",
		"value":      true,
	})
	if err != nil {
		t.Errorf("expected valid arguments, got: %v", err)
	}
}

func TestValidateArguments_MissingRequired(t *testing.T) {
	v := NewValidator()

	err := v.ValidateArguments(controlSchema(), map[string]any{
		"device_id": "dev-1",
	})
	if err == nil {
		t.Error("expected validation error for missing required fields")
	}
}

func TestValidateArguments_WrongType(t *testing.T) {
	v := NewValidator()

	err := v.ValidateArguments(controlSchema(), map[string]any{
		"device_id":  float64(7),
		"capability": "onoff",
		"value":      true,
	})
	if err == nil {
		t.Error("expected validation error for non-string device_id")
	}
}

func TestValidateArguments_UnknownProperty(t *testing.T) {
	v := NewValidator()

	err := v.ValidateArguments(controlSchema(), map[string]any{
		"device_id":  "dev-1",
		"capability": "onoff",
		"value":      true,
		"unknown":    "field",
	})
	if err == nil {
		t.Error("expected validation error for unknown property")
	}
}

func TestValidateArguments_EmptySchema(t *testing.T) {
	v := NewValidator()

	// Empty schema means no validation
	err := v.ValidateArguments(json.RawMessage(`{}`), map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("empty schema should skip validation, got: %v", err)
	}
}

func TestValidateArguments_NilSchema(t *testing.T) {
	v := NewValidator()

	err := v.ValidateArguments(nil, map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateArguments_NilArguments(t *testing.T) {
	v := NewValidator()

	schema := json.RawMessage(`{"type": "object"}`)
	if err := v.ValidateArguments(schema, nil); err != nil {
		t.Errorf("nil arguments should validate as an empty object, got: %v", err)
	}
}

func TestValidateArguments_CachesSchema(t *testing.T) {
	v := NewValidator()
	schema := controlSchema()

	args := map[string]any{
		"device_id":  "dev-1",
		"capability": "onoff",
		"value":      true,
	}

	// First call compiles
	if err := v.ValidateArguments(schema, args); err != nil {
		t.Fatal(err)
	}

	// Second call should use cache
	if err := v.ValidateArguments(schema, args); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 1 {
		t.Errorf("expected 1 cached schema, got %d", cacheSize)
	}
}

func TestValidateArguments_BadSchema(t *testing.T) {
	v := NewValidator()

	err := v.ValidateArguments(json.RawMessage(`{not json`), map[string]any{})
	if err == nil {
		t.Error("expected compile error for malformed schema document")
	}
}
