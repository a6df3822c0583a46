package pack

import (
	"fmt"
	"os"
	"path/filepath"

	logger "packlift/internal/logging"
	"packlift/internal/utils"
)

// processEntry recovers a single listed file from packDir into outputDir.
//
// Entries whose source is missing or not a regular file are skipped without
// error; the index routinely lists directory placeholders and files the
// vendor never shipped. Every other failure aborts the whole run.
func processEntry(entry ContentEntry, packDir, outputDir string, log logger.Logger) error {
	src := filepath.Join(packDir, entry.Path)
	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		log.Debugf("skipping %s: not a regular file", entry.Path)
		return nil
	}

	dst := filepath.Join(outputDir, entry.Path)
	if err := utils.EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	if entry.Key == nil {
		// Plaintext entry. Decrypting in place makes src and dst the same
		// file; there is nothing to do then.
		if src == dst {
			return nil
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}
		if err := writeEntry(dst, NormalizeJSON(entry.Path, data)); err != nil {
			return err
		}
		log.Infof("copied %s", entry.Path)
		return nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := decryptInPlace(data, *entry.Key); err != nil {
		return fmt.Errorf("failed to decrypt %s: %w", entry.Path, err)
	}
	if err := writeEntry(dst, NormalizeJSON(entry.Path, data)); err != nil {
		return err
	}
	log.Infof("decrypted %s", entry.Path)
	return nil
}

func writeEntry(dst string, data []byte) error {
	// #nosec G306 -- recovered assets should be readable by the user's tools.
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
