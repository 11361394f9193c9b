// This is the main-driver for our compiler.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/binarycraft/impc/compiler"
)

func main() {

	//
	// Look for flags.
	//
	debug := flag.Bool("debug", false, "Insert debug \"stuff\" in our generated output.")
	output := flag.String("o", "output.asm", "The path to write the generated assembly to.")
	flag.Parse()

	//
	// Ensure we have a source file as our single argument.
	//
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: impc [-debug] [-o output.asm] <source-file>\n")
		os.Exit(1)
	}

	//
	// Read the source file to completion.
	//
	src, err := os.ReadFile(flag.Args()[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", flag.Args()[0], err)
		os.Exit(1)
	}

	//
	// Create a compiler-object, with the program as input.
	//
	comp := compiler.New(string(src))

	//
	// Are we inserting debugging "stuff" ?
	//
	if *debug {
		comp.SetDebug(true)
	}

	//
	// Compile.
	//
	out, err := comp.Compile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling: %s\n", err.Error())
		os.Exit(1)
	}

	//
	// No partial output: the file is only created once code
	// generation has fully succeeded.
	//
	if err := compiler.WriteOutput(*output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %s\n", *output, err)
		os.Exit(1)
	}
}
