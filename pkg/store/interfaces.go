package store

import "github.com/redhat-data-and-ai/profilemanager/pkg/profile"

//go:generate mockgen -destination=../../internal/cli/mocks/mock_store.go -package=mocks github.com/redhat-data-and-ai/profilemanager/pkg/store ProfileStoreInterface

// ProfileStoreInterface defines the in-memory profile repository operations
// This interface enables mocking in tests and is what the menu, serializer and export consume
type ProfileStoreInterface interface {
	// Create allocates the next sequential id, stores a new profile and returns the id
	Create(name string, age int, city, country string) int

	// Find returns the stored profile for id
	// The returned handle is only valid until the next mutating store operation
	Find(id int) (*profile.Profile, bool)

	// Remove deletes the profile for id and reports whether anything was deleted
	Remove(id int) bool

	// ListIDs returns every stored id sorted ascending
	ListIDs() []int

	// Size returns the number of stored profiles
	Size() int

	// Clear removes every profile and resets id allocation to its initial state
	Clear()

	// Insert stores a pre-built profile keyed by its own id
	// Returns false without mutating the store if the id is already taken
	Insert(p *profile.Profile) bool
}
