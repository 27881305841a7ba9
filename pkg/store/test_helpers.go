package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redhat-data-and-ai/profilemanager/pkg/profile"
)

// seedProfile describes a profile created through Create during test setup
type seedProfile struct {
	Name    string
	Age     int
	City    string
	Country string
	Hobbies []string
}

// seed creates the given profiles in order and returns their ids
func seed(t *testing.T, s ProfileStoreInterface, profiles ...seedProfile) []int {
	t.Helper()
	ids := make([]int, 0, len(profiles))
	for _, sp := range profiles {
		id := s.Create(sp.Name, sp.Age, sp.City, sp.Country)
		p, ok := s.Find(id)
		if !ok {
			t.Fatalf("profile %d not found right after create", id)
		}
		for _, h := range sp.Hobbies {
			p.AddHobby(h)
		}
		ids = append(ids, id)
	}
	return ids
}

// RemoveTestCase defines a test case for Remove operations
type RemoveTestCase struct {
	Name       string
	ID         int
	SetupFunc  func(t *testing.T, store ProfileStoreInterface)
	VerifyFunc func(t *testing.T, store ProfileStoreInterface)
	WantOK     bool
}

// InsertTestCase defines a test case for Insert operations
type InsertTestCase struct {
	Name       string
	Profile    func() *profile.Profile
	SetupFunc  func(t *testing.T, store ProfileStoreInterface)
	VerifyFunc func(t *testing.T, store ProfileStoreInterface)
	WantOK     bool
}

// FindTestCase defines a test case for Find operations
type FindTestCase struct {
	Name      string
	ID        int
	SetupFunc func(t *testing.T, store ProfileStoreInterface)
	WantFound bool
	WantName  string
}

// RunRemoveTests runs table-driven tests for Remove operation
func RunRemoveTests(t *testing.T, tests []RemoveTestCase, storeFactory func() ProfileStoreInterface) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			store := storeFactory()
			tt.SetupFunc(t, store)

			ok := store.Remove(tt.ID)

			assert.Equal(t, tt.WantOK, ok)
			_, found := store.Find(tt.ID)
			assert.False(t, found)
			if tt.VerifyFunc != nil {
				tt.VerifyFunc(t, store)
			}
		})
	}
}

// RunInsertTests runs table-driven tests for Insert operation
func RunInsertTests(t *testing.T, tests []InsertTestCase, storeFactory func() ProfileStoreInterface) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			store := storeFactory()
			tt.SetupFunc(t, store)

			ok := store.Insert(tt.Profile())

			assert.Equal(t, tt.WantOK, ok)
			if tt.VerifyFunc != nil {
				tt.VerifyFunc(t, store)
			}
		})
	}
}

// RunFindTests runs table-driven tests for Find operation
func RunFindTests(t *testing.T, tests []FindTestCase, storeFactory func() ProfileStoreInterface) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			store := storeFactory()
			tt.SetupFunc(t, store)

			p, found := store.Find(tt.ID)

			assert.Equal(t, tt.WantFound, found)
			if tt.WantFound {
				if assert.NotNil(t, p) {
					assert.Equal(t, tt.ID, p.ID())
					assert.Equal(t, tt.WantName, p.Name())
				}
			} else {
				assert.Nil(t, p)
			}
		})
	}
}

// assertSortedIDs checks the ListIDs/Size contract
func assertSortedIDs(t *testing.T, store ProfileStoreInterface, want []int) {
	t.Helper()
	ids := store.ListIDs()
	assert.Equal(t, store.Size(), len(ids))
	assert.IsIncreasing(t, ids)
	if len(want) == 0 {
		assert.Empty(t, ids)
		return
	}
	assert.Equal(t, want, ids)
}
