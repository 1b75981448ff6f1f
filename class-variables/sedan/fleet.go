package sedan

import "sync"

// Fleet scopes a shared wheel count to a container instead of the whole
// process, and guards it with a RWMutex so sedans may be used from many
// goroutines.
type Fleet struct {
	mu         sync.RWMutex
	wheelCount int
}

// NewFleet returns a Fleet whose sedans start with wheels wheels.
func NewFleet(wheels int) *Fleet {
	return &Fleet{wheelCount: wheels}
}

// WheelCount returns the fleet-wide count.
func (f *Fleet) WheelCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.wheelCount
}

// SetWheelCount changes the count for every sedan in the fleet.
func (f *Fleet) SetWheelCount(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wheelCount = n
}

// NewSedan returns a sedan bound to f.
func (f *Fleet) NewSedan(brand string) *FleetSedan {
	return &FleetSedan{Make: brand, fleet: f}
}

// FleetSedan shares its wheel count with every other sedan of its fleet.
type FleetSedan struct {
	Make  string
	fleet *Fleet
}

// WheelCount reads the fleet's count.
func (s *FleetSedan) WheelCount() int { return s.fleet.WheelCount() }

// SetWheelCount writes the fleet's count.
func (s *FleetSedan) SetWheelCount(n int) { s.fleet.SetWheelCount(n) }
