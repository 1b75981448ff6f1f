package main

import (
	"github.com/marcodamonte/semantics/conditions/size"
	"github.com/marcodamonte/semantics/internal/demo"
)

// Run:
//
//	go run ./conditions
func main() {
	demo.Main(size.Program(nil))
}
