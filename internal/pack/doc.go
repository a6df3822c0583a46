// Package pack implements the decryption pipeline for encrypted resource
// packs.
//
// A pack is a directory holding a fixed-name manifest and icon (copied
// verbatim), a contents.json index, and content files at arbitrary relative
// paths. The index is the interesting part: its first 256 bytes are an
// opaque header and the rest is an AES-256 CFB-8 encrypted JSON file list,
// where each listed file optionally carries its own decryption key.
//
// # Key material
//
// Every key in the format doubles as its own IV: the first 32 bytes of the
// key string are the AES key and the first 16 of those same bytes are the
// initialization vector. This is a property of the wire format, replicated
// here exactly for compatibility; a fresh design would derive the IV
// independently.
//
// # Error behavior
//
// The pipeline is deliberately asymmetric about parse failures. A content
// index that fails to parse after decryption is fatal, because a wrong key
// or a wrong offset means nothing downstream can be trusted. A content file
// with a .json name that fails to parse is tolerated and written verbatim,
// because vendors ship malformed JSON and the recovered bytes are still
// useful. Do not unify the two paths.
//
// Entries whose source file is absent are skipped silently; indexes often
// list placeholders. Any real I/O failure aborts the run, and callers must
// treat the output root as untrusted after any error.
package pack
