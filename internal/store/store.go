// Package store keeps saved persons in a password-encrypted zstore database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zpersona/internal/person"
)

const (
	saltFile       = "salt"
	recordsName    = "persons"
	preferenceName = "preferences"
	preferencesKey = "tui"
)

var (
	// ErrNotFound is returned when no record matches an id.
	ErrNotFound = errors.New("record not found")
	// ErrAmbiguous is returned when an id prefix matches several records.
	ErrAmbiguous = errors.New("ambiguous record id")
)

// Record is a saved person.
type Record struct {
	ID        string        `json:"id"`
	Locale    string        `json:"locale"`
	Person    person.Person `json:"person"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewRecord assigns a fresh id to p.
func NewRecord(locale string, p person.Person, now time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		Locale:    locale,
		Person:    p,
		CreatedAt: now,
	}
}

// ShortID is the first block of the id, enough to address a record in
// a personal store.
func (r Record) ShortID() string {
	id, _, _ := strings.Cut(r.ID, "-")
	return id
}

// Preferences are user settings kept next to the records.
type Preferences struct {
	Locale string `json:"locale,omitempty"`
}

// envelope wraps JSON so settings of any shape share one collection.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Store is an open, unlocked database.
type Store struct {
	db          *zstore.Store
	records     *zstore.Collection[Record]
	preferences *zstore.Collection[envelope]
}

// IsFirstRun reports whether dir holds no store yet.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, saltFile))
	return err != nil
}

// OpenDir opens the store in dir, creating the directory if needed.
func OpenDir(dir, password string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return Open(zfilesystem.NewOSFileSystem(dir), password)
}

// Open unlocks the store on fsys. A wrong password yields
// zstore.ErrWrongPassword.
func Open(fsys zfilesystem.ReadWriteFileFS, password string) (*Store, error) {
	db, err := zstore.Open(fsys, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	records, err := zstore.NewCollection[Record](db, recordsName)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open store: %s: %w", recordsName, err)
	}

	prefs, err := zstore.NewCollection[envelope](db, preferenceName)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open store: %s: %w", preferenceName, err)
	}

	return &Store{db: db, records: records, preferences: prefs}, nil
}

// Save writes r, replacing any record with the same id.
func (s *Store) Save(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("save record: empty id")
	}
	if err := s.records.Put(r.ID, r); err != nil {
		return fmt.Errorf("save record %s: %w", r.ShortID(), err)
	}
	return nil
}

// List returns every record, newest first.
func (s *Store) List() ([]Record, error) {
	rs, err := s.records.List()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	// zstore does not guarantee order
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
	return rs, nil
}

// Find returns the record whose id equals or starts with id.
func (s *Store) Find(id string) (Record, error) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return Record{}, ErrNotFound
	}

	rs, err := s.List()
	if err != nil {
		return Record{}, err
	}

	var match []Record
	for _, r := range rs {
		if r.ID == id {
			return r, nil
		}
		if strings.HasPrefix(r.ID, id) {
			match = append(match, r)
		}
	}

	switch len(match) {
	case 0:
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return match[0], nil
	}
	return Record{}, fmt.Errorf("%w: %s matches %d records", ErrAmbiguous, id, len(match))
}

// Delete removes the record addressed by id or id prefix and returns it.
func (s *Store) Delete(id string) (Record, error) {
	r, err := s.Find(id)
	if err != nil {
		return Record{}, err
	}
	if err := s.records.Delete(r.ID); err != nil {
		return Record{}, fmt.Errorf("delete record %s: %w", r.ShortID(), err)
	}
	return r, nil
}

// Preferences returns the saved preferences, or the zero value if none
// were saved or they cannot be read.
func (s *Store) Preferences() Preferences {
	var p Preferences
	env, err := s.preferences.Get(preferencesKey)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return Preferences{}
	}
	return p
}

// SavePreferences replaces the saved preferences.
func (s *Store) SavePreferences(p Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := s.preferences.Put(preferencesKey, envelope{Data: data}); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Close locks the store.
func (s *Store) Close() {
	s.db.Close()
}
