package size

import (
	"fmt"
	"io"

	"github.com/marcodamonte/semantics/internal/demo"
)

// sampleCodes covers every label, a lower-case code, an unmapped code and
// the empty string.
var sampleCodes = []string{"L", "m", "S", "X", ""}

// Program returns the conditions demo. m replaces the embedded table for the
// lookup section; nil keeps the default.
func Program(m *Mapping) demo.Program {
	if m == nil {
		m = Default()
	}
	return demo.Program{
		Name:    "conditions",
		Summary: "four ways to write a multi-way decision",
		Sections: []demo.Section{
			{Title: "if / else if — not a good way", Run: printer(IfName)},
			{Title: "nested conditional expression — a terrible way", Run: printer(TernaryName)},
			{Title: "switch — an acceptable way", Run: printer(SwitchName)},
			{Title: "table lookup — a good way", Run: printer(m.Name)},
		},
	}
}

func printer(name func(string) string) func(io.Writer) {
	return func(w io.Writer) {
		for _, code := range sampleCodes {
			fmt.Fprintf(w, "  size_name(%q) = %s\n", code, name(code))
		}
	}
}
