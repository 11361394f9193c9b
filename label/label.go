// Package label generates the unique assembly labels the code generator
// needs for control flow and string constants.
//
// Label uniqueness used to rely on a process-wide atomic counter; here it
// is an owned field of Generator, so multiple compilations in the same
// process never interfere with each other.
package label

import "fmt"

// Kind identifies what a label is used for, and doubles as the base
// string each generated name is built from.
type Kind string

const (
	Else  Kind = "else"
	Endif Kind = "endif"
	Start Kind = "start"
	End   Kind = "end"
	Str   Kind = "str"
)

// Generator hands out monotonically increasing, globally unique labels
// for a single compilation.
type Generator struct {
	counter int
}

// New returns a Generator starting from zero.
func New() *Generator {
	return &Generator{}
}

// Next returns the next label of the given kind, e.g. "else_3".
func (g *Generator) Next(k Kind) string {
	name := fmt.Sprintf("%s_%d", k, g.counter)
	g.counter++
	return name
}
