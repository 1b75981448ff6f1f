// Package sedan shows state that belongs to a type rather than to any one
// value of that type.
//
// Go has no class variables. The closest equivalent is a package-level
// variable: every Sedan reads and writes the same cell, and so do the
// package-level accessors.
package sedan

// wheelCount is shared by the type and all its instances.
//
// It is deliberately unsynchronized: two goroutines calling SetWheelCount at
// the same time is a data race (go test -race will flag it). Fleet is the
// guarded version.
var wheelCount = 4

// WheelCount returns the shared wheel count.
func WheelCount() int { return wheelCount }

// SetWheelCount changes the wheel count for every Sedan at once.
func SetWheelCount(n int) { wheelCount = n }

// Sedan is a car whose wheel count is not its own.
type Sedan struct {
	Make string
}

// New returns a Sedan of the given make.
func New(brand string) *Sedan { return &Sedan{Make: brand} }

// ClassWheelCount reads the shared count through an instance.
func (s *Sedan) ClassWheelCount() int { return wheelCount }

// SetClassWheelCount writes the shared count through an instance. Every other
// Sedan sees the change immediately.
func (s *Sedan) SetClassWheelCount(n int) { wheelCount = n }
