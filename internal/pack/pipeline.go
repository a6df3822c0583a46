package pack

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	logger "packlift/internal/logging"
	"packlift/internal/utils"
)

// SidecarFiles are copied verbatim from the pack root to the output root,
// never decrypted or normalized.
var SidecarFiles = []string{ManifestFileName, IconFileName}

// IconFileName is the fixed name of the pack's icon sidecar.
const IconFileName = "pack_icon.png"

// Options adjusts a Decrypt run.
type Options struct {
	// Only restricts processing to entries whose index path matches at
	// least one of these doublestar globs. Empty means every entry.
	Only []string

	// Logger receives per-entry notices. The zero value is silent.
	Logger logger.Logger
}

func (o Options) wants(path string) bool {
	if len(o.Only) == 0 {
		return true
	}
	for _, pattern := range o.Only {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Decrypt reconstructs the plaintext asset tree of the pack at packDir into
// outputDir using masterKey.
//
// The run is fail-fast: the first error aborts it and is returned. A failed
// run can leave a partially written output tree behind; callers must treat
// the output root as untrusted whenever an error is returned.
func Decrypt(masterKey, packDir, outputDir string, opts Options) error {
	if err := utils.EnsureDir(outputDir); err != nil {
		return err
	}

	for _, name := range SidecarFiles {
		if err := utils.CopyFile(filepath.Join(packDir, name), filepath.Join(outputDir, name)); err != nil {
			return err
		}
	}

	index, err := DecodeContentIndex(filepath.Join(packDir, IndexFileName), masterKey)
	if err != nil {
		return err
	}
	opts.Logger.Debugf("content index lists %d entries", len(index.Content))

	for _, entry := range index.Content {
		if !opts.wants(entry.Path) {
			opts.Logger.Debugf("skipping %s: excluded by filter", entry.Path)
			continue
		}
		if err := processEntry(entry, packDir, outputDir, opts.Logger); err != nil {
			return err
		}
	}

	return nil
}
