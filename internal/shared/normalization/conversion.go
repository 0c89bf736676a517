package normalization

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AsString trims string values and renders numeric ids in their shortest form. Anything
// else yields "".
func AsString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

// FirstString returns the first key of m holding a non-empty AsString value.
func FirstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := AsString(m[key]); value != "" {
			return value
		}
	}
	return ""
}

// MapFromPayload unwraps a {"data": {...}} envelope into a plain map.
func MapFromPayload(value any) map[string]any {
	if value == nil {
		return nil
	}
	if typed, ok := value.(map[string]any); ok {
		if data, ok := typed["data"].(map[string]any); ok {
			return data
		}
		return typed
	}
	return nil
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
