// Command concepts runs a tour of Go language concepts: custom types,
// variable binding, conversions and functions.
//
// Run:
//
//	go run .
//	go run . --section functions
//	go run . list
package main

import "github.com/marcodamonte/concepts/internal/cli"

func main() {
	cli.Execute()
}
