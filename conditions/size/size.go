// Package size maps one-character size codes to labels four different ways.
//
// All four functions return the same label for the same code; they differ
// only in how the multi-way decision is written. Name, a table lookup, is the
// one to use.
package size

import "golang.org/x/text/cases"

// Unknown is returned for any code without a label.
const Unknown = "Unknown"

// fold makes lookups case-insensitive: Name(c) == Name(lower(c)). A Caser
// keeps state, so each call gets its own.
func fold(code string) string { return cases.Fold().String(code) }

// IfName uses an if / else-if chain. Works, but every new size is another
// branch to read past.
func IfName(code string) string {
	c := fold(code)
	if c == "l" {
		return "Large"
	} else if c == "m" {
		return "Medium"
	} else if c == "s" {
		return "Small"
	} else {
		return Unknown
	}
}

// ifThen stands in for the conditional operator Go does not have. Both
// results are evaluated before the call, unlike a real ?: expression.
func ifThen[T any](cond bool, then, otherwise T) T {
	if cond {
		return then
	}
	return otherwise
}

// TernaryName nests conditional expressions. The hardest of the four to read.
func TernaryName(code string) string {
	c := fold(code)
	return ifThen(c == "l", "Large", ifThen(c == "m", "Medium", ifThen(c == "s", "Small", Unknown)))
}

// SwitchName uses a switch statement. Acceptable.
func SwitchName(code string) string {
	switch fold(code) {
	case "l":
		return "Large"
	case "m":
		return "Medium"
	case "s":
		return "Small"
	default:
		return Unknown
	}
}

// Name looks the code up in the default table. No branching: adding a size
// means adding a line to sizes.yaml.
func Name(code string) string {
	return Default().Name(code)
}
