package car

import (
	"fmt"
	"io"

	"github.com/marcodamonte/semantics/internal/demo"
)

// Program returns the parameter-passing demo.
func Program() demo.Program {
	return demo.Program{
		Name:    "parameter-passing",
		Summary: "value parameters vs. shared pointers",
		Sections: []demo.Section{
			{Title: "Number — reassigning the parameter", Run: demoNumber},
			{Title: "String — reassigning the parameter", Run: demoString},
			{Title: "Pointer — mutation reaches the caller", Run: demoPointer},
			{Title: "Pointer — clone first to avoid the side effect", Run: demoClone},
			{Title: "Struct value — the callee already has a copy", Run: demoValue},
		},
	}
}

func demoNumber(w io.Writer) {
	wheelCount := 4
	fmt.Fprintf(w, "  Before: wheelCount = %d\n", wheelCount)
	fmt.Fprintf(w, "  AddTwo(wheelCount) = %d\n", AddTwo(wheelCount))
	fmt.Fprintf(w, "  After call, no side effect, wheelCount = %d\n", wheelCount)
}

func demoString(w io.Writer) {
	carPrice := "20 K"
	fmt.Fprintf(w, "  Before: carPrice = %q\n", carPrice)
	fmt.Fprintf(w, "  AppendDollars(carPrice) = %q\n", AppendDollars(carPrice))
	fmt.Fprintf(w, "  After call, no side effect, carPrice = %q\n", carPrice)
}

func demoPointer(w io.Writer) {
	c := &Car{Make: "Ford"}
	fmt.Fprintf(w, "  Before: car.Make = %q\n", c.Make)
	fmt.Fprintf(w, "  FixMake(car) = %q\n", FixMake(c))
	fmt.Fprintf(w, "  After call, side effect happens, car.Make = %q\n", c.Make)
}

func demoClone(w io.Writer) {
	c := &Car{Make: "Ford"}
	fmt.Fprintf(w, "  Before: car.Make = %q\n", c.Make)
	fmt.Fprintf(w, "  FixMakeCopy(car) = %q\n", FixMakeCopy(c))
	fmt.Fprintf(w, "  After call, no side effect, car.Make = %q\n", c.Make)
}

func demoValue(w io.Writer) {
	c := Car{Make: "Ford"}
	fmt.Fprintf(w, "  Before: car.Make = %q\n", c.Make)
	fmt.Fprintf(w, "  FixMakeValue(car) = %q\n", FixMakeValue(c))
	fmt.Fprintf(w, "  After call, no side effect, car.Make = %q\n", c.Make)
}
