package mcp

import (
	"math"
	"strconv"
	"strings"
)

// requiredString returns the named argument as a non-empty string.
// Identifier fields (device IDs, capability names, flow IDs) go through here
// before any provider call is made.
func requiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", NewValidationError("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", NewValidationError("parameter %q must be a string, got %T", key, v)
	}
	if s == "" {
		return "", NewValidationError("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

// optionalBool returns the named argument as a boolean, false when absent.
func optionalBool(args map[string]any, key string) (bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, NewValidationError("parameter %q must be a boolean, got %T", key, v)
	}
	return b, nil
}

// optionalZoneFilter returns the trimmed zone filter, or "" when no filter
// was supplied. An absent argument and a blank string both mean "no filter";
// a non-string value is rejected.
func optionalZoneFilter(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", NewValidationError("parameter %q must be a string, got %T", key, v)
	}
	return strings.TrimSpace(s), nil
}

// coerceCapabilityValue normalizes a raw tool-call value into the value sent
// to the platform: a boolean, a finite number, or a non-empty string. The
// function is total over its input domain; anything it cannot coerce becomes
// a validation error, never a silent pass-through.
func coerceCapabilityValue(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, NewValidationError("parameter %q is required", "value")
	case bool:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewValidationError("parameter %q must be a finite number", "value")
		}
		return v, nil
	case string:
		if v == "" {
			return nil, NewValidationError("parameter %q must not be an empty string", "value")
		}
		if v == "true" {
			return true, nil
		}
		if v == "false" {
			return false, nil
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			// strconv accepts "inf" and "nan" spellings; those are not
			// valid capability values.
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return nil, NewValidationError("parameter %q must be a finite number", "value")
			}
			return n, nil
		}
		return v, nil
	default:
		return nil, NewValidationError("parameter %q has unsupported type %T", "value", raw)
	}
}
