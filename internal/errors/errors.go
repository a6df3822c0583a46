package errors

import "errors"

// Key material errors indicate unusable key input. They are caller defects,
// not recoverable runtime conditions.
var (
	// ErrKeyTooShort indicates the supplied key has fewer than 32 bytes.
	ErrKeyTooShort = errors.New("key must be at least 32 bytes")

	// ErrInvalidKeyLength indicates the cipher was handed a key slice that is
	// not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid cipher key length")

	// ErrInvalidIVLength indicates the cipher was handed an initialization
	// vector that is not exactly 16 bytes.
	ErrInvalidIVLength = errors.New("invalid initialization vector length")
)

// Pack structure errors indicate the input directory is not a usable pack.
var (
	// ErrIndexTooShort indicates the content index file ends before its
	// fixed-size header does.
	ErrIndexTooShort = errors.New("content index is shorter than its 256-byte header")

	// ErrIndexDecode indicates the decrypted index payload is not a valid
	// file list. This usually means the master key is wrong.
	ErrIndexDecode = errors.New("content index did not decode to a file list")

	// ErrManifestDecode indicates the pack manifest is not valid JSON.
	ErrManifestDecode = errors.New("manifest is not valid JSON")

	// ErrManifestUUID indicates the manifest header carries a malformed UUID.
	ErrManifestUUID = errors.New("manifest header UUID is invalid")
)

// Key store errors indicate issues with the persistent key store.
var (
	// ErrKeyNotFound indicates no key is stored for the requested pack.
	ErrKeyNotFound = errors.New("no stored key for this pack")

	// ErrKeyExists indicates a key is already stored for this pack.
	ErrKeyExists = errors.New("a key is already stored for this pack")
)
