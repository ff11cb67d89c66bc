package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON replaces the store's contents with the state in the given file.
// It decodes into a scratch store first: a malformed file leaves the
// current state untouched.
func (s *Store) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading store file: %w", err)
	}
	var loaded Store
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing store file %s: %w", path, err)
	}
	if loaded.Users == nil {
		loaded.Users = map[string]*User{}
	}
	for _, u := range loaded.Users {
		u.ensureCollections()
	}
	s.Users = loaded.Users
	return nil
}

// SaveJSON writes the store's contents to the given file.
func (s *Store) SaveJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}
