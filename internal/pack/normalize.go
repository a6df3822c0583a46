package pack

import (
	"encoding/json"
	"strings"
)

// NormalizeJSON validates and prettifies data when path names a JSON file.
//
// Paths without a .json suffix (case-sensitive) pass through untouched. For
// .json paths, valid JSON is re-serialized with stable two-space indentation;
// anything that fails to parse is returned as-is, so garbage bytes behind a
// JSON-looking name degrade to a verbatim copy instead of an error.
func NormalizeJSON(path string, data []byte) []byte {
	if !strings.HasSuffix(path, ".json") {
		return data
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return data
	}

	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return data
	}
	return pretty
}
