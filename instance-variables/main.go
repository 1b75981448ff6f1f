package main

import (
	"github.com/marcodamonte/semantics/instance-variables/vehicle"
	"github.com/marcodamonte/semantics/internal/demo"
)

// Run:
//
//	go run ./instance-variables
func main() {
	demo.Main(vehicle.Program())
}
