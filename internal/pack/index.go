package pack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	kerrors "packlift/internal/errors"
)

const (
	// IndexFileName is the fixed name of the encrypted content index.
	IndexFileName = "contents.json"

	// indexHeaderSize is the length of the opaque unencrypted header at the
	// start of the index file. Only bytes past it are ciphertext.
	indexHeaderSize = 256
)

// ContentEntry is one listed file in the content index. Key is nil for
// entries stored in plaintext.
type ContentEntry struct {
	Path string  `json:"path"`
	Key  *string `json:"key"`
}

// ContentIndex is the decrypted file list of a pack.
type ContentIndex struct {
	Content []ContentEntry `json:"content"`
}

// DecodeContentIndex reads the index file at path, decrypts the payload past
// the fixed header with masterKey, and parses it into a ContentIndex.
//
// A file shorter than the header is rejected with ErrIndexTooShort rather
// than being read as an empty index. A payload that does not parse as JSON
// is rejected with ErrIndexDecode; the usual cause is a wrong master key.
func DecodeContentIndex(path string, masterKey string) (*ContentIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("unable to stat %s: %w", path, err)
	}
	if info.Size() < indexHeaderSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", kerrors.ErrIndexTooShort, path, info.Size())
	}

	if _, err := file.Seek(indexHeaderSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("unable to seek past index header in %s: %w", path, err)
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read index payload from %s: %w", path, err)
	}

	if err := decryptInPlace(payload, masterKey); err != nil {
		return nil, err
	}

	// Some packs pad the decrypted payload with trailing NUL bytes.
	if i := bytes.IndexByte(payload, 0); i >= 0 {
		payload = payload[:i]
	}

	var index ContentIndex
	if err := json.Unmarshal(payload, &index); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrIndexDecode, err)
	}

	return &index, nil
}
