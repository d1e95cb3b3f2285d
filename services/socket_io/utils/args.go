package socketio_utils

// Helpers for reading socket.io message payloads, which arrive as
// map[string]interface{} once the JSON body is decoded.

// PayloadOf returns the first argument as an object payload, or nil.
func PayloadOf(args []interface{}) map[string]interface{} {
	if len(args) < 1 {
		return nil
	}
	payload, ok := args[0].(map[string]interface{})
	if !ok {
		return nil
	}
	return payload
}

// StringField reads a string field, returning "" when absent or mistyped.
func StringField(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	value, _ := payload[key].(string)
	return value
}

// StringSliceField reads an array-of-strings field.
func StringSliceField(payload map[string]interface{}, key string) []string {
	if payload == nil {
		return nil
	}
	raw, ok := payload[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		value, ok := item.(string)
		if !ok {
			return nil
		}
		values = append(values, value)
	}
	return values
}

// IntField reads a numeric field. JSON numbers decode as float64, but an
// int is accepted as well for tests that inject payloads directly.
func IntField(payload map[string]interface{}, key string) (int, bool) {
	if payload == nil {
		return 0, false
	}
	switch value := payload[key].(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	default:
		return 0, false
	}
}
