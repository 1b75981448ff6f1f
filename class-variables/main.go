package main

import (
	"github.com/marcodamonte/semantics/class-variables/sedan"
	"github.com/marcodamonte/semantics/internal/demo"
)

// Run:
//
//	go run ./class-variables
func main() {
	demo.Main(sedan.Program())
}
