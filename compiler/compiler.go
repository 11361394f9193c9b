// Package compiler ties the lexer, parser, and code generator together
// into a single, three-phase Compile() call.
//
// In brief we go through a three-step process:
//
//  1. Tokenize the source text (the lex phase).
//
//  2. Parse the tokens into an AST (the parse phase).
//
//  3. Walk the AST twice, emitting assembly (the generate phase).
//
// Each phase's error is wrapped with %w under a "lex: ", "parse: " or
// "generate: " prefix, so the message names the stage that failed and
// errors.Is/As still reach the underlying error.
package compiler

import (
	"fmt"
	"os"

	"github.com/binarycraft/impc/ast"
	"github.com/binarycraft/impc/lexer"
	"github.com/binarycraft/impc/parser"
)

// Compiler holds our object-state.
type Compiler struct {
	// debug holds a flag to decide if debugging comments are emitted
	// alongside the generated instructions.
	debug bool

	// source holds the program text we're compiling.
	source string
}

// New creates a new compiler, given the source text in the constructor.
func New(source string) *Compiler {
	return &Compiler{source: source}
}

// SetDebug changes the debug-flag for our output.
func (c *Compiler) SetDebug(val bool) {
	c.debug = val
}

// Compile converts the input program into x86-64 assembly language.
func (c *Compiler) Compile() (string, error) {
	tokens, err := lexer.Tokenize(c.source)
	if err != nil {
		return "", fmt.Errorf("lex: %w", err)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	asm, err := Generate(program, c.debug)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return asm, nil
}

// Parse exposes the AST for callers (and tests) that want to inspect
// the tree without generating code.
func (c *Compiler) Parse() (*ast.Block, error) {
	tokens, err := lexer.Tokenize(c.source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return program, nil
}

// WriteOutput writes asm to path. No partial output is ever written:
// callers only invoke this once Compile has already succeeded.
func WriteOutput(path, asm string) error {
	if err := os.WriteFile(path, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
