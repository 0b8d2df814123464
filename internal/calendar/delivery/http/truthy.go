package http

import (
	"bytes"
	"encoding/json"
)

// truthy decodes any JSON value with loose truthiness: false, null, 0, ""
// are false, everything else (including "false" and {}) is true. Callers of
// the webhook are scripts that send "1", 1 or true interchangeably.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*t = false
	case bytes.Equal(data, []byte("true")):
		*t = true
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = s != ""
	case data[0] == '{' || data[0] == '[':
		*t = true
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = n != 0
	}
	return nil
}
