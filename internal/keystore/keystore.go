package keystore

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	kerrors "packlift/internal/errors"
)

// Store maps pack UUIDs to their master keys.
type Store struct {
	Packs map[string]StoredKey `toml:"packs"`
}

// StoredKey is one remembered master key.
type StoredKey struct {
	Key     string    `toml:"key"`
	AddedAt time.Time `toml:"added_at"`
}

// Load reads the user's key store. A missing store file yields an empty
// store, not an error.
func Load() (*Store, error) {
	store := &Store{
		Packs: make(map[string]StoredKey),
	}

	path := storePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return store, nil
	}

	if err := loadTOML(path, store); err != nil {
		return nil, fmt.Errorf("failed to load key store: %w", err)
	}
	if store.Packs == nil {
		store.Packs = make(map[string]StoredKey)
	}

	return store, nil
}

// Save persists the store to the user's config directory.
func (s *Store) Save() error {
	if err := saveTOML(storePath(), s); err != nil {
		return fmt.Errorf("failed to save key store: %w", err)
	}
	return nil
}

// Lookup returns the stored master key for the given pack.
func (s *Store) Lookup(id uuid.UUID) (string, error) {
	entry, ok := s.Packs[id.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, id)
	}
	return entry.Key, nil
}

// Add records a master key for the given pack. Re-adding the same pack
// without force is rejected so a typo cannot silently clobber a good key.
func (s *Store) Add(id uuid.UUID, key string, force bool) error {
	if _, ok := s.Packs[id.String()]; ok && !force {
		return fmt.Errorf("%w: %s", kerrors.ErrKeyExists, id)
	}
	s.Packs[id.String()] = StoredKey{
		Key:     key,
		AddedAt: time.Now().UTC(),
	}
	return nil
}

// Remove deletes the stored key for the given pack. It reports whether an
// entry was present.
func (s *Store) Remove(id uuid.UUID) bool {
	if _, ok := s.Packs[id.String()]; !ok {
		return false
	}
	delete(s.Packs, id.String())
	return true
}

// IDs returns the stored pack UUIDs in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.Packs))
	for id := range s.Packs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
