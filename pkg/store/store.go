package store

import (
	"math"
	"sort"

	"github.com/redhat-data-and-ai/profilemanager/pkg/profile"
)

const firstID = 1

// Store owns every Profile in memory and assigns sequential integer ids
// nextID is always greater than any id created or inserted since the last Clear
// NOTE: This store does NOT handle locking - callers must ensure single-threaded use
type Store struct {
	profiles map[int]*profile.Profile
	nextID   int
}

// New creates an empty Store whose first created profile gets id 1
func New() *Store {
	return &Store{
		profiles: make(map[int]*profile.Profile),
		nextID:   firstID,
	}
}

// Create allocates the next id, stores a new profile and returns the id
func (s *Store) Create(name string, age int, city, country string) int {
	id := s.nextID
	s.nextID++
	s.profiles[id] = profile.New(id, name, age, city, country)
	return id
}

// Find returns the profile stored under id
// The handle must not be kept across Remove, Clear, Insert or a load
func (s *Store) Find(id int) (*profile.Profile, bool) {
	p, ok := s.profiles[id]
	return p, ok
}

// Remove deletes the profile stored under id
// Returns false if there was nothing to delete
func (s *Store) Remove(id int) bool {
	if _, ok := s.profiles[id]; !ok {
		return false
	}
	delete(s.profiles, id)
	return true
}

// ListIDs returns all stored ids sorted ascending
// Map iteration order is random, so the ids are sorted on every call
func (s *Store) ListIDs() []int {
	ids := make([]int, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Size returns the number of stored profiles
func (s *Store) Size() int {
	return len(s.profiles)
}

// Clear empties the store and resets id allocation
func (s *Store) Clear() {
	s.profiles = make(map[int]*profile.Profile)
	s.nextID = firstID
}

// Insert stores a fully built profile under its own id
// A taken id is rejected without touching the store; on success nextID moves past the id.
// math.MaxInt is rejected too since no id could follow it.
func (s *Store) Insert(p *profile.Profile) bool {
	id := p.ID()
	if id == math.MaxInt {
		return false
	}
	if _, exists := s.profiles[id]; exists {
		return false
	}
	s.profiles[id] = p

	if id >= s.nextID {
		s.nextID = id + 1
	}
	return true
}

// Compile-time interface compliance check
var _ ProfileStoreInterface = (*Store)(nil)
