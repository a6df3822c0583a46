package pack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "packlift/internal/errors"
)

// Tests loading a well-formed manifest and parsing its UUID.
func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"header":{"name":"Glow Pack","uuid":"7f9c24e5-1a2b-4c3d-8e4f-5a6b7c8d9e0f"}}`)
	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), data, 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	manifest, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	if manifest.Header.Name != "Glow Pack" {
		t.Errorf("Name = %q, want Glow Pack", manifest.Header.Name)
	}

	id, err := manifest.ID()
	if err != nil {
		t.Fatalf("Failed to parse manifest UUID: %v", err)
	}
	if id.String() != "7f9c24e5-1a2b-4c3d-8e4f-5a6b7c8d9e0f" {
		t.Errorf("UUID = %s", id)
	}
}

// Tests that a manifest that is not JSON yields a decode error.
func TestLoadManifestMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	_, err := LoadManifest(dir)
	if !errors.Is(err, kerrors.ErrManifestDecode) {
		t.Errorf("Expected ErrManifestDecode, got: %v", err)
	}
}

// Tests that a malformed header UUID is a typed error.
func TestManifestInvalidUUID(t *testing.T) {
	manifest := &Manifest{Header: ManifestHeader{UUID: "not-a-uuid"}}
	_, err := manifest.ID()
	if !errors.Is(err, kerrors.ErrManifestUUID) {
		t.Errorf("Expected ErrManifestUUID, got: %v", err)
	}
}

// Tests that a missing manifest is an I/O error.
func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a wrapped os.ErrNotExist, got: %v", err)
	}
}
