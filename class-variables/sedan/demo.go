package sedan

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/marcodamonte/semantics/internal/demo"
)

// Program returns the class-variables demo.
func Program() demo.Program {
	return demo.Program{
		Name:    "class-variables",
		Summary: "state shared by a type and all its instances",
		Sections: []demo.Section{
			{Title: "Package-level state — shared by the type and every instance", Run: demoShared},
			{Title: "Container-scoped state — Fleet guarded by sync.RWMutex", Run: demoFleet},
		},
	}
}

// demoShared walks through the three steps of the classic demo:
// read via the type, set via the type, set via one instance.
func demoShared(w io.Writer) {
	SetWheelCount(4)

	fmt.Fprintf(w, "  A sedan car has %d wheels.\n", WheelCount())

	ford := New("Ford")
	honda := New("Honda")
	printSedans(w, ford, honda)

	SetWheelCount(5)
	fmt.Fprintln(w, "\n  After changing wheel count via the type:")
	printSedans(w, ford, honda)

	ford.SetClassWheelCount(3) // one instance writes, all instances see it
	fmt.Fprintln(w, "\n  After one instance changed wheel count:")
	fmt.Fprintf(w, "  A sedan car has %d wheels.\n", WheelCount())
	printSedans(w, ford, honda)
}

func printSedans(w io.Writer, sedans ...*Sedan) {
	for _, s := range sedans {
		fmt.Fprintf(w, "  A %s sedan has %d wheels.\n", s.Make, s.ClassWheelCount())
	}
}

// demoFleet repeats the experiment with writers running concurrently. The
// RWMutex makes every write visible to every reader without a data race.
func demoFleet(w io.Writer) {
	fleet := NewFleet(4)
	ford := fleet.NewSedan("Ford")
	honda := fleet.NewSedan("Honda")

	var g errgroup.Group
	for _, s := range []*FleetSedan{ford, honda} {
		s := s
		g.Go(func() error {
			s.SetWheelCount(6)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "  writers failed: %v\n", err)
		return
	}

	fmt.Fprintf(w, "  fleet: %d wheels\n", fleet.WheelCount())
	for _, s := range []*FleetSedan{ford, honda} {
		fmt.Fprintf(w, "  A %s sedan has %d wheels.\n", s.Make, s.WheelCount())
	}
}
