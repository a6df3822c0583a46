// Package keystore persists master keys per pack UUID.
//
// Keys live in a TOML file under the user's config directory
// (e.g. ~/.config/packlift/keys.toml). The decrypt and inspect commands use
// the store to resolve a pack's key from its manifest UUID when the user
// does not pass one explicitly.
//
// Keys are stored as supplied; the store performs no strength validation.
package keystore
