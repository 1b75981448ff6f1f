package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVanLostValueUsesLastQueriedYear shows the coupling: lostValue answers
// for whichever year was asked last, not for the caller's year.
func TestVanLostValueUsesLastQueriedYear(t *testing.T) {
	t.Parallel()

	van := NewVan(2010, 30000)
	assert.Equal(t, 15000, van.ValueOfTheYear(2015))
	assert.Equal(t, 15000, van.lostValue())

	assert.Equal(t, 27000, van.ValueOfTheYear(2011))
	assert.Equal(t, 3000, van.lostValue())
	assert.Equal(t, 2011, van.currentYear)

	assert.Equal(t, 15000, NewTruck(2010, 30000).LostValue(2015))
}
