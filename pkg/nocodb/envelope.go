package nocodb

import (
	"encoding/json"
)

// UnwrapList extracts the list payload from a NocoDB response body.
//
// The API is not consistent about envelopes: depending on the endpoint and
// server version a listing arrives as a bare array or wrapped under "list",
// "bases", "tables", or "data". If body is already a JSON array its elements
// are returned unchanged; if it is an object, the keys are scanned in order
// and the first one holding an array wins. Anything else yields an empty
// slice.
func UnwrapList(body []byte, keys ...string) []json.RawMessage {
	var direct []json.RawMessage
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return []json.RawMessage{}
	}

	for _, key := range keys {
		value, ok := wrapped[key]
		if !ok {
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err == nil {
			return items
		}
	}

	return []json.RawMessage{}
}
