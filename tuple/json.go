package tuple

import (
	"bytes"
	"encoding/json"
)

// Splits a JSON array into exactly [n] raw slots. A JSON null decodes to a nil
// slice and no error so that callers leave their receiver untouched.
func decodeArray(data []byte, name string, n int) ([]json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if err := fromSlice(raw, "array", name, n); err != nil {
		return nil, err
	}
	return raw, nil
}
