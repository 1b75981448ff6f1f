package sedan_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/marcodamonte/semantics/class-variables/sedan"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// resetWheelCount restores the package-level count after a test. Tests that
// touch it must not run in parallel.
func resetWheelCount(t *testing.T) {
	t.Helper()
	before := sedan.WheelCount()
	t.Cleanup(func() { sedan.SetWheelCount(before) })
}

func TestWheelCountSharedAcrossInstances(t *testing.T) {
	resetWheelCount(t)
	sedan.SetWheelCount(4)

	ford := sedan.New("Ford")
	honda := sedan.New("Honda")
	assert.Equal(t, 4, ford.ClassWheelCount())
	assert.Equal(t, 4, honda.ClassWheelCount())

	sedan.SetWheelCount(5)
	assert.Equal(t, 5, ford.ClassWheelCount())
	assert.Equal(t, 5, honda.ClassWheelCount())

	ford.SetClassWheelCount(3)
	assert.Equal(t, 3, sedan.WheelCount())
	assert.Equal(t, 3, ford.ClassWheelCount())
	assert.Equal(t, 3, honda.ClassWheelCount())
}

func TestWheelCountVisibleToLaterInstances(t *testing.T) {
	resetWheelCount(t)

	sedan.New("Ford").SetClassWheelCount(7)

	assert.Equal(t, 7, sedan.New("Honda").ClassWheelCount())
}

func TestAnySetterReachesEveryInstance(t *testing.T) {
	resetWheelCount(t)

	sedans := []*sedan.Sedan{sedan.New("a"), sedan.New("b"), sedan.New("c")}
	for i, writer := range sedans {
		n := 10 + i
		writer.SetClassWheelCount(n)
		for _, reader := range sedans {
			assert.Equal(t, n, reader.ClassWheelCount(), "after %s set %d", writer.Make, n)
		}
	}
}

func TestFleetSharedAcrossSedans(t *testing.T) {
	t.Parallel()

	fleet := sedan.NewFleet(4)
	ford := fleet.NewSedan("Ford")
	honda := fleet.NewSedan("Honda")

	fleet.SetWheelCount(5)
	assert.Equal(t, 5, ford.WheelCount())
	assert.Equal(t, 5, honda.WheelCount())

	ford.SetWheelCount(3)
	assert.Equal(t, 3, fleet.WheelCount())
	assert.Equal(t, 3, honda.WheelCount())
}

func TestFleetsAreIndependent(t *testing.T) {
	t.Parallel()

	a := sedan.NewFleet(4)
	b := sedan.NewFleet(4)
	a.NewSedan("Ford").SetWheelCount(8)

	assert.Equal(t, 8, a.WheelCount())
	assert.Equal(t, 4, b.WheelCount())
}

// TestFleetConcurrentWriters must pass under -race.
func TestFleetConcurrentWriters(t *testing.T) {
	t.Parallel()

	const writers = 50
	fleet := sedan.NewFleet(4)

	var g errgroup.Group
	for i := 0; i < writers; i++ {
		s := fleet.NewSedan("car")
		g.Go(func() error {
			s.SetWheelCount(6)
			_ = s.WheelCount()
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, 6, fleet.WheelCount())
}

func TestProgramOutput(t *testing.T) {
	resetWheelCount(t)

	var out bytes.Buffer
	for _, s := range sedan.Program().Sections {
		s.Run(&out)
	}
	got := out.String()

	assert.Contains(t, got, "A sedan car has 4 wheels.\n  A Ford sedan has 4 wheels.\n  A Honda sedan has 4 wheels.")
	assert.Contains(t, got, "via the type:\n  A Ford sedan has 5 wheels.\n  A Honda sedan has 5 wheels.")
	assert.Contains(t, got, "A sedan car has 3 wheels.\n  A Ford sedan has 3 wheels.\n  A Honda sedan has 3 wheels.")
	assert.Contains(t, got, "fleet: 6 wheels")
}
