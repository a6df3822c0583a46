// Package errors defines sentinel errors shared across Packlift.
//
// Callers wrap these with fmt.Errorf and %w to add context, and match them
// with errors.Is. The groups mirror the failure classes of the decryption
// pipeline: bad key material, broken pack structure, and key store misses.
package errors
