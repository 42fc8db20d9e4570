// Package savestore persists game saves in named slots in a bbolt database.
package savestore

import (
	"errors"
	"fmt"
	"sort"

	bbolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/textquest/internal/game/session"
)

// ErrNotFound is returned when a slot holds no save.
var ErrNotFound = errors.New("savestore: slot not found")

var bucketSaves = []byte("saves")

// Store wraps a bbolt database holding YAML-encoded saves keyed by slot name.
type Store struct {
	bolt *bbolt.DB
}

// Open opens or creates the database file at path and ensures the saves
// bucket exists.
//
// Postcondition: Returns a usable Store or an error with nothing left open.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("savestore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSaves)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("savestore: create bucket: %w", err)
	}
	return &Store{bolt: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.bolt != nil {
		return s.bolt.Close()
	}
	return nil
}

// Path returns the filesystem path of the database.
func (s *Store) Path() string {
	if s.bolt != nil {
		return s.bolt.Path()
	}
	return ""
}

// Put writes sv to slot, replacing any previous save there.
//
// Precondition: slot must be non-empty; sv must be non-nil.
func (s *Store) Put(slot string, sv *session.Save) error {
	if slot == "" {
		return errors.New("savestore: empty slot name")
	}
	data, err := yaml.Marshal(sv)
	if err != nil {
		return fmt.Errorf("savestore: encode slot %q: %w", slot, err)
	}
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSaves).Put([]byte(slot), data)
	})
}

// Get reads the save in slot.
//
// Postcondition: Returns the decoded save, or an error wrapping ErrNotFound
// for an empty slot.
func (s *Store) Get(slot string) (*session.Save, error) {
	var data []byte
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketSaves).Get([]byte(slot))
		if v == nil {
			return fmt.Errorf("slot %q: %w", slot, ErrNotFound)
		}
		// bbolt values are only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	var sv session.Save
	if err := yaml.Unmarshal(data, &sv); err != nil {
		return nil, fmt.Errorf("savestore: decode slot %q: %w", slot, err)
	}
	return &sv, nil
}

// List returns every occupied slot name in sorted order.
func (s *Store) List() ([]string, error) {
	var slots []string
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSaves).ForEach(func(k, _ []byte) error {
			slots = append(slots, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("savestore: list: %w", err)
	}
	sort.Strings(slots)
	return slots, nil
}
