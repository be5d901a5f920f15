package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/turkosaurus/userview/internal/types"
)

// Record is a user as stored in the fixture file. Password is never served.
type Record struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Age       int    `yaml:"age"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
}

// User returns the public view of r.
func (r Record) User() types.User {
	return types.User{
		ID:        types.Int(r.ID),
		FirstName: types.Text(r.FirstName),
		LastName:  types.Text(r.LastName),
		Age:       types.Int(int64(r.Age)),
		Email:     types.Text(r.Email),
	}
}

type fixtureFile struct {
	Users []Record `yaml:"users"`
}

// Store is a read-only, in-memory user collection in fixture order.
type Store struct {
	records []Record
	byID    map[int64]int
}

// NewStore indexes records. IDs must be unique.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records: records,
		byID:    make(map[int64]int, len(records)),
	}
	for i, r := range records {
		if _, dup := s.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %d", r.ID)
		}
		s.byID[r.ID] = i
	}
	return s, nil
}

// LoadFixture reads a YAML fixture with a top-level "users" list.
func LoadFixture(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %q: %w", path, err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %q: %w", path, err)
	}
	s, err := NewStore(f.Users)
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", path, err)
	}
	return s, nil
}

// All returns every user in fixture order.
func (s *Store) All() []types.User {
	out := make([]types.User, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.User())
	}
	return out
}

// Get looks a user up by id.
func (s *Store) Get(id int64) (types.User, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.User{}, false
	}
	return s.records[i].User(), true
}

// Len returns the number of users.
func (s *Store) Len() int {
	return len(s.records)
}
