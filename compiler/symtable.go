package compiler

import (
	"fmt"

	"github.com/binarycraft/impc/stack"
)

// addressKind distinguishes where a symbol's value lives.
type addressKind int

const (
	// staticAddr names a data-section label, valid for the whole
	// program.
	staticAddr addressKind = iota
	// frameAddr names an offset from the current frame base (rbp),
	// valid only inside the function that bound it.
	frameAddr
)

// symbol is one binding: a variable or parameter name, its storage
// location, and its declared type.
type symbol struct {
	kind    addressKind
	address string // e.g. "x_res" for static, "rbp+16" for frame
	typ     string // "i32", "i64", or "string"
}

// scope holds the frame bindings introduced by one function body.
type scope map[string]symbol

// table is the symbol table: a flat map of static bindings that is never
// popped, plus a stack of scopes holding frame bindings pushed and
// popped around function bodies.
type table struct {
	static map[string]symbol
	scopes *stack.Stack[scope]
}

func newTable() *table {
	return &table{
		static: make(map[string]symbol),
		scopes: stack.New[scope](),
	}
}

// declareStatic records a module-level variable binding. Re-declaring an
// existing name is a no-op, matching Pass A's "re-encountering a name is
// a no-op" rule.
func (t *table) declareStatic(name, address, typ string) {
	if _, ok := t.static[name]; ok {
		return
	}
	t.static[name] = symbol{kind: staticAddr, address: address, typ: typ}
}

// pushScope opens a fresh frame scope, e.g. on function entry.
func (t *table) pushScope() {
	t.scopes.Push(make(scope))
}

// popScope closes the innermost frame scope, e.g. on function exit.
func (t *table) popScope() {
	_, _ = t.scopes.Pop()
}

// bindFrame records a parameter binding in the innermost scope. scope is
// a reference type, so mutating the peeked map updates the one on the
// stack directly.
func (t *table) bindFrame(name, address, typ string) error {
	top, err := t.scopes.Peek()
	if err != nil {
		return fmt.Errorf("bindFrame: no active scope for %q", name)
	}
	top[name] = symbol{kind: frameAddr, address: address, typ: typ}
	return nil
}

// lookup checks the innermost scope, then falls back to the static
// table; scopes below the innermost one are not consulted. The first
// match wins, so a parameter correctly shadows a module-level variable of
// the same name.
func (t *table) lookup(name string) (symbol, error) {
	if top, err := t.scopes.Peek(); err == nil {
		if sym, ok := top[name]; ok {
			return sym, nil
		}
	}
	if sym, ok := t.static[name]; ok {
		return sym, nil
	}
	return symbol{}, fmt.Errorf("undeclared variable %q", name)
}
