package views

import (
	"sync"

	"github.com/dcode-github/property_dashboard/metrics"
)

// AutoPilotStore holds the per-property auto-pilot flags for the process.
// A property with no entry is off.
type AutoPilotStore struct {
	mu    sync.RWMutex
	flags map[string]bool
}

func NewAutoPilotStore() *AutoPilotStore {
	return &AutoPilotStore{flags: make(map[string]bool)}
}

func (s *AutoPilotStore) Get(propertyID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[propertyID]
}

func (s *AutoPilotStore) Set(propertyID string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[propertyID] = on
}

// Toggle flips the flag for one property and returns the new value.
func (s *AutoPilotStore) Toggle(propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[propertyID] = !s.flags[propertyID]
	metrics.AutoPilotToggles.Inc()
	return s.flags[propertyID]
}

// Forget drops the entry for a property, e.g. after it was deleted.
func (s *AutoPilotStore) Forget(propertyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flags, propertyID)
}

func (s *AutoPilotStore) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.flags))
	for id, on := range s.flags {
		out[id] = on
	}
	return out
}
