// Package ast defines the tree produced by the parser and consumed by the
// code generator.
package ast

// Expr is implemented by exactly the node types in this package. No other
// type may implement it.
type Expr interface {
	exprNode()
}

// Op identifies a binary operator.
type Op int

// the complete set of binary operators.
const (
	Add Op = iota
	Subtract
	Multiply
	Divide
	LessThan
	GreaterThan
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	}
	return "?"
}

// Param is a single (name, type) pair in a function's parameter list.
type Param struct {
	Name string
	Type string // "i32", "i64", or "string"
}

// FunctionDef declares a named, first-order function.
type FunctionDef struct {
	Name   string
	Params []Param
	Body   *Block
}

func (*FunctionDef) exprNode() {}

// FunctionCall invokes a previously declared function.
type FunctionCall struct {
	Name string
	Args []Expr
}

func (*FunctionCall) exprNode() {}

// IfExpr is a conditional. Alternative is nil when there is no else
// branch.
type IfExpr struct {
	Condition   Expr
	Consequence *Block
	Alternative *Block
}

func (*IfExpr) exprNode() {}

// WhileLoop repeats Body while Condition evaluates truthy.
type WhileLoop struct {
	Condition Expr
	Body      *Block
}

func (*WhileLoop) exprNode() {}

// Assignment binds Value to Name, optionally introducing a static type
// declaration. TypeDecl is "" for the untyped `name = expr` form.
type Assignment struct {
	Name     string
	TypeDecl string
	Value    Expr
}

func (*Assignment) exprNode() {}

// BinaryOp applies Op to Left and Right.
type BinaryOp struct {
	Left  Expr
	Op    Op
	Right Expr
}

func (*BinaryOp) exprNode() {}

// LiteralKind tags the variant held by a Literal node.
type LiteralKind int

const (
	I32 LiteralKind = iota
	I64
	String
	Unit
)

// Literal is a constant value. Exactly one of IntValue/StrValue is
// meaningful, selected by Kind.
type Literal struct {
	Kind     LiteralKind
	IntValue int64
	StrValue string
}

func (*Literal) exprNode() {}

// Variable is a reference to a previously bound name.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}

// Block is the only container node; every program is a top-level Block.
type Block struct {
	Statements []Expr
}

func (*Block) exprNode() {}

// Return yields from the enclosing function with Value's result.
type Return struct {
	Value Expr
}

func (*Return) exprNode() {}

// Print is the built-in print statement.
type Print struct {
	Value Expr
}

func (*Print) exprNode() {}
