package main

import (
	"github.com/marcodamonte/semantics/internal/demo"
	"github.com/marcodamonte/semantics/parameter-passing/car"
)

// Run:
//
//	go run ./parameter-passing
func main() {
	demo.Main(car.Program())
}
