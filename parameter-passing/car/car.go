// Package car contrasts parameters that cannot leak changes back to the
// caller with ones that can.
//
// Go always passes arguments by value. For an int or a string that value is
// the data itself. For a *Car it is the address, so the callee and the caller
// share one Car.
package car

// FixedMake is what the fix helpers write into Car.Make.
const FixedMake = "I fix the make"

// AddTwo reassigns its parameter. The caller's variable is a different
// variable and stays as it was.
func AddTwo(n int) int {
	n += 2
	return n
}

// AppendDollars reassigns its parameter. Strings are immutable, so += builds
// a new string and the caller's string is untouched.
func AppendDollars(price string) string {
	price += " dollars"
	return price
}

// Car has a single mutable field.
type Car struct {
	Make string
}

// Clone returns a shallow copy of c with its own identity.
func (c *Car) Clone() *Car {
	dup := *c
	return &dup
}

// FixMake mutates the caller's Car in place and returns the new make.
func FixMake(c *Car) string {
	c.Make = FixedMake
	return c.Make
}

// FixMakeCopy clones c before mutating, leaving the caller's Car unchanged.
func FixMakeCopy(c *Car) string {
	dup := c.Clone()
	dup.Make = FixedMake
	return dup.Make
}

// FixMakeValue receives a copy because Car is passed by value.
func FixMakeValue(c Car) string {
	c.Make = FixedMake
	return c.Make
}
