package pack

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

// Tests that non-JSON paths pass through byte-for-byte.
func TestNormalizeJSONPassthroughForOtherPaths(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	got := NormalizeJSON("textures/icon.png", data)
	if !bytes.Equal(got, data) {
		t.Error("Non-JSON path should pass through unchanged")
	}
}

// Tests that the suffix match is case-sensitive and exact.
func TestNormalizeJSONSuffixIsCaseSensitive(t *testing.T) {
	data := []byte(`{"a":1}`)

	if got := NormalizeJSON("file.JSON", data); !bytes.Equal(got, data) {
		t.Error("Uppercase .JSON suffix should not trigger normalization")
	}
	if got := NormalizeJSON("file.jsonx", data); !bytes.Equal(got, data) {
		t.Error(".jsonx suffix should not trigger normalization")
	}
}

// Tests that valid JSON is prettified and still parses to an equal value.
func TestNormalizeJSONRoundTripsValue(t *testing.T) {
	data := []byte(`{"x":1,"nested":{"list":[1,2,3],"s":"v"}}`)

	got := NormalizeJSON("config.json", data)
	if bytes.Equal(got, data) {
		t.Error("Compact JSON should have been reformatted")
	}

	var original, normalized any
	if err := json.Unmarshal(data, &original); err != nil {
		t.Fatalf("Test fixture is not valid JSON: %v", err)
	}
	if err := json.Unmarshal(got, &normalized); err != nil {
		t.Fatalf("Normalized output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(original, normalized) {
		t.Errorf("Normalized JSON is not value-equal to the input\nwant: %v\ngot:  %v", original, normalized)
	}
}

// Tests that malformed JSON behind a .json name falls back to the original
// bytes without raising an error.
func TestNormalizeJSONMalformedFallsBack(t *testing.T) {
	data := []byte(`{"broken": `)
	got := NormalizeJSON("broken.json", data)
	if !bytes.Equal(got, data) {
		t.Error("Malformed JSON should fall back to the original bytes")
	}
}

// Tests that garbage bytes (e.g. a wrong-key decryption) are tolerated.
func TestNormalizeJSONGarbageFallsBack(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0xff}
	got := NormalizeJSON("entity.json", garbage)
	if !bytes.Equal(got, garbage) {
		t.Error("Garbage bytes should fall back to a verbatim copy")
	}
}
