package compiler

import (
	"strings"
	"testing"

	"github.com/binarycraft/impc/ast"
)

func mustGenerate(t *testing.T, src string) string {
	t.Helper()
	out, err := New(src).Compile()
	if err != nil {
		t.Fatalf("unexpected error compiling %q: %v", src, err)
	}
	return out
}

func TestVariableReservationCount(t *testing.T) {
	out := mustGenerate(t, `x:i32 = 1; y:i32 = 2; z:i64 = 3; print(x);`)

	for _, want := range []string{"x_res dd 1", "y_res dd 2", "z_res dq 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRedeclarationIsNoOp(t *testing.T) {
	out := mustGenerate(t, `x:i32 = 1; x:i32 = 1; print(x);`)

	if strings.Count(out, "x_res dd") != 1 {
		t.Errorf("expected exactly one x_res reservation, got output:\n%s", out)
	}
}

func TestFunctionLabelsPrecedeStart(t *testing.T) {
	out := mustGenerate(t, `function f(a:i32){ return a; }; print(f(1));`)

	fIdx := strings.Index(out, "f:")
	startIdx := strings.Index(out, "_start:")
	if fIdx == -1 || startIdx == -1 || fIdx > startIdx {
		t.Fatalf("expected function label before _start, got:\n%s", out)
	}
}

func TestStringLiteralPrint(t *testing.T) {
	out := mustGenerate(t, `print("hi");`)

	if !strings.Contains(out, `db "hi", 0`) {
		t.Errorf("expected a NUL-terminated string constant, got:\n%s", out)
	}
	if !strings.Contains(out, "mov edx, 3") {
		t.Errorf("expected edx loaded with len+1, got:\n%s", out)
	}
}

func TestStringVariableDeclarationEmitsBytes(t *testing.T) {
	out := mustGenerate(t, `s:string = "hi"; print(1);`)

	if !strings.Contains(out, `s_res: db "hi", 0`) {
		t.Errorf("expected a NUL-terminated string constant for s_res, got:\n%s", out)
	}
}

func TestReadingStringVariableIsAnError(t *testing.T) {
	_, err := New(`s:string = "hi"; print(s);`).Compile()
	if err == nil {
		t.Fatalf("expected an error reading a string-typed variable")
	}
}

func TestStringVariableInArithmeticIsAnError(t *testing.T) {
	_, err := New(`s:string = "hi"; x:i32 = 1; print(x + s);`).Compile()
	if err == nil {
		t.Fatalf("expected an error using a string-typed variable in arithmetic")
	}
}

func TestI64BinaryOpUsesWideRegisters(t *testing.T) {
	out := mustGenerate(t, `x:i64 = 10; y:i64 = 20; print(x + y);`)

	if !strings.Contains(out, "add rbx, rcx") {
		t.Errorf("expected a 64-bit addition, got:\n%s", out)
	}
}

func TestLabelsAreDistinct(t *testing.T) {
	out := mustGenerate(t, `
x:i32 = 1;
if (x > 0) { print(x); };
if (x > 0) { print(x); };
`)

	defs := map[string]bool{}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "else_") && strings.HasSuffix(line, ":") {
			defs[line] = true
		}
	}
	if n := len(defs); n < 2 {
		t.Fatalf("expected at least two distinct else labels, got %d in:\n%s", n, out)
	}
}

func TestUndeclaredVariableIsAnError(t *testing.T) {
	_, err := New(`print(y);`).Compile()
	if err == nil {
		t.Fatalf("expected an error for undeclared variable y")
	}
}

func TestAssignmentToParameterIsAnError(t *testing.T) {
	_, err := New(`function f(a:i32){ a = 5; return a; };`).Compile()
	if err == nil {
		t.Fatalf("expected an error assigning to a parameter")
	}
}

// Exercises the symbol table's kinded design directly: a parameter can
// shadow a module-level variable of the same name without the lookup
// silently failing, unlike the flat-map bug this design resolves.
func TestParameterShadowsModuleVariable(t *testing.T) {
	g := newGenerator(false)
	g.syms.declareStatic("x", "x_res", "i32")

	asm, err := g.genFunctionDef(&ast.FunctionDef{
		Name: "f",
		Params: []ast.Param{
			{Name: "x", Type: "i32"},
		},
		Body: &ast.Block{
			Statements: []ast.Expr{
				&ast.Return{Value: &ast.Variable{Name: "x"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(asm, "mov rax, [rbp+16]") {
		t.Errorf("expected the parameter binding to be used, got:\n%s", asm)
	}

	// Outside the function the module-level binding is visible again.
	sym, err := g.syms.lookup("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym.kind != staticAddr {
		t.Errorf("expected the static binding to resurface after the scope pops")
	}
}
