package pack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	kerrors "packlift/internal/errors"
)

// ManifestFileName is the fixed name of the pack manifest sidecar.
const ManifestFileName = "manifest.json"

// Manifest is the subset of the pack manifest Packlift reads. The pipeline
// itself copies the manifest verbatim without parsing it; only key store
// lookups and inspection need these fields.
type Manifest struct {
	Header ManifestHeader `json:"header"`
}

// ManifestHeader identifies the pack.
type ManifestHeader struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// ID returns the header UUID in parsed form.
func (m *Manifest) ID() (uuid.UUID, error) {
	id, err := uuid.Parse(m.Header.UUID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", kerrors.ErrManifestUUID, m.Header.UUID)
	}
	return id, nil
}

// LoadManifest reads and parses the manifest of the pack at packDir.
func LoadManifest(packDir string) (*Manifest, error) {
	path := filepath.Join(packDir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrManifestDecode, err)
	}

	return &manifest, nil
}
