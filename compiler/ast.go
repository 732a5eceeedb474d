package compiler

import (
	"fmt"

	"github.com/chazu/celstep/vm"
)

// ---------------------------------------------------------------------------
// AST: Abstract Syntax Tree for expressions
// ---------------------------------------------------------------------------

// Position represents a source location.
type Position struct {
	Offset int // byte offset
	Line   int // 1-based line number
	Column int // 1-based column number, in runes
}

func (p Position) String() string {
	return fmt.Sprintf("L%d:%d", p.Line, p.Column)
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the byte offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return s.Start.Offset <= offset && offset < s.End.Offset
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Span
	node() // marker method
}

// Expr is the interface for expression nodes. Every node owns its children
// exclusively.
type Expr interface {
	Node
	expr() // marker method

	// Op returns the operator tag used when reporting errors about the node.
	Op() vm.Operator
}

// ---------------------------------------------------------------------------
// Literals
// ---------------------------------------------------------------------------

// IntLiteral represents an integer literal.
type IntLiteral struct {
	SpanVal Span
	Value   int64
}

func (n *IntLiteral) Span() Span      { return n.SpanVal }
func (n *IntLiteral) node()           {}
func (n *IntLiteral) expr()           {}
func (n *IntLiteral) Op() vm.Operator { return vm.OperatorLit }

// FloatLiteral represents a floating-point literal.
type FloatLiteral struct {
	SpanVal Span
	Value   float64
}

func (n *FloatLiteral) Span() Span      { return n.SpanVal }
func (n *FloatLiteral) node()           {}
func (n *FloatLiteral) expr()           {}
func (n *FloatLiteral) Op() vm.Operator { return vm.OperatorLit }

// BoolLiteral represents true or false.
type BoolLiteral struct {
	SpanVal Span
	Value   bool
}

func (n *BoolLiteral) Span() Span      { return n.SpanVal }
func (n *BoolLiteral) node()           {}
func (n *BoolLiteral) expr()           {}
func (n *BoolLiteral) Op() vm.Operator { return vm.OperatorLit }

// StringLiteral represents a string literal with escapes decoded.
type StringLiteral struct {
	SpanVal Span
	Value   string
}

func (n *StringLiteral) Span() Span      { return n.SpanVal }
func (n *StringLiteral) node()           {}
func (n *StringLiteral) expr()           {}
func (n *StringLiteral) Op() vm.Operator { return vm.OperatorLit }

// BytesLiteral represents a b"..." literal with escapes decoded.
type BytesLiteral struct {
	SpanVal Span
	Value   []byte
}

func (n *BytesLiteral) Span() Span      { return n.SpanVal }
func (n *BytesLiteral) node()           {}
func (n *BytesLiteral) expr()           {}
func (n *BytesLiteral) Op() vm.Operator { return vm.OperatorLit }

// NullLiteral represents null.
type NullLiteral struct {
	SpanVal Span
}

func (n *NullLiteral) Span() Span      { return n.SpanVal }
func (n *NullLiteral) node()           {}
func (n *NullLiteral) expr()           {}
func (n *NullLiteral) Op() vm.Operator { return vm.OperatorLit }

// ListLiteral represents [e1, e2, ...]. Elements are evaluated when the
// program runs, not when it is parsed.
type ListLiteral struct {
	SpanVal  Span
	Elements []Expr
}

func (n *ListLiteral) Span() Span      { return n.SpanVal }
func (n *ListLiteral) node()           {}
func (n *ListLiteral) expr()           {}
func (n *ListLiteral) Op() vm.Operator { return vm.OperatorLit }

// MapEntry is one key: value pair of a map literal.
type MapEntry struct {
	Key   Expr
	Value Expr
}

// MapLiteral represents {k1: v1, ...}, entries in declaration order.
type MapLiteral struct {
	SpanVal Span
	Entries []MapEntry
}

func (n *MapLiteral) Span() Span      { return n.SpanVal }
func (n *MapLiteral) node()           {}
func (n *MapLiteral) expr()           {}
func (n *MapLiteral) Op() vm.Operator { return vm.OperatorLit }

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

// BinaryOp identifies a binary comparison or arithmetic operator.
type BinaryOp int

const (
	BinaryEq BinaryOp = iota
	BinaryNeq
	BinaryLt
	BinaryLte
	BinaryGte
	BinaryGt
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
)

var binaryOpInfo = map[BinaryOp]struct {
	symbol   string
	operator vm.Operator
}{
	BinaryEq:  {"==", vm.OperatorEq},
	BinaryNeq: {"!=", vm.OperatorNeq},
	BinaryLt:  {"<", vm.OperatorLt},
	BinaryLte: {"<=", vm.OperatorLte},
	BinaryGte: {">=", vm.OperatorGte},
	BinaryGt:  {">", vm.OperatorGt},
	BinaryAdd: {"+", vm.OperatorPlus},
	BinarySub: {"-", vm.OperatorMinus},
	BinaryMul: {"*", vm.OperatorTimes},
	BinaryDiv: {"/", vm.OperatorDiv},
	BinaryMod: {"%", vm.OperatorMod},
}

func (op BinaryOp) String() string { return binaryOpInfo[op].symbol }

// Binary represents a binary operation.
type Binary struct {
	SpanVal  Span
	Operator BinaryOp
	Left     Expr
	Right    Expr
}

func (n *Binary) Span() Span      { return n.SpanVal }
func (n *Binary) node()           {}
func (n *Binary) expr()           {}
func (n *Binary) Op() vm.Operator { return binaryOpInfo[n.Operator].operator }

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota // -x
	UnaryNot                // !x
)

func (op UnaryOp) String() string {
	if op == UnaryNot {
		return "!"
	}
	return "-"
}

// Unary represents a prefix operation.
type Unary struct {
	SpanVal  Span
	Operator UnaryOp
	Operand  Expr
}

func (n *Unary) Span() Span { return n.SpanVal }
func (n *Unary) node()      {}
func (n *Unary) expr()      {}
func (n *Unary) Op() vm.Operator {
	if n.Operator == UnaryNot {
		return vm.OperatorNot
	}
	return vm.OperatorNeg
}

// Or represents a || b || ... with at least two operands.
type Or struct {
	SpanVal  Span
	Operands []Expr
}

func (n *Or) Span() Span      { return n.SpanVal }
func (n *Or) node()           {}
func (n *Or) expr()           {}
func (n *Or) Op() vm.Operator { return vm.OperatorOr }

// And represents a && b && ... with at least two operands.
type And struct {
	SpanVal  Span
	Operands []Expr
}

func (n *And) Span() Span      { return n.SpanVal }
func (n *And) node()           {}
func (n *And) expr()           {}
func (n *And) Op() vm.Operator { return vm.OperatorAnd }

// Ternary represents cond ? then : else.
type Ternary struct {
	SpanVal   Span
	Condition Expr
	Then      Expr
	Else      Expr
}

func (n *Ternary) Span() Span      { return n.SpanVal }
func (n *Ternary) node()           {}
func (n *Ternary) expr()           {}
func (n *Ternary) Op() vm.Operator { return vm.OperatorTernary }

// ---------------------------------------------------------------------------
// Names, access and calls
// ---------------------------------------------------------------------------

// LetBinding represents `let name = value; body`.
type LetBinding struct {
	SpanVal Span
	Name    vm.Identifier
	Value   Expr
	Body    Expr
}

func (n *LetBinding) Span() Span      { return n.SpanVal }
func (n *LetBinding) node()           {}
func (n *LetBinding) expr()           {}
func (n *LetBinding) Op() vm.Operator { return vm.OperatorLetBinding }

// Binding represents a variable reference.
type Binding struct {
	SpanVal Span
	Name    vm.Identifier
}

func (n *Binding) Span() Span      { return n.SpanVal }
func (n *Binding) node()           {}
func (n *Binding) expr()           {}
func (n *Binding) Op() vm.Operator { return vm.OperatorLookup }

// Member represents operand.name.
type Member struct {
	SpanVal Span
	Operand Expr
	Name    vm.Identifier
}

func (n *Member) Span() Span      { return n.SpanVal }
func (n *Member) node()           {}
func (n *Member) expr()           {}
func (n *Member) Op() vm.Operator { return vm.OperatorMember }

// Method represents receiver.name(args). Index syntax receiver[key] parses
// as a method named "get" with the key as its only argument.
type Method struct {
	SpanVal  Span
	Receiver Expr
	Name     vm.Identifier
	Args     []Expr
}

func (n *Method) Span() Span      { return n.SpanVal }
func (n *Method) node()           {}
func (n *Method) expr()           {}
func (n *Method) Op() vm.Operator { return vm.MethodOperator(n.Name) }

// FunctionCall represents name(args).
type FunctionCall struct {
	SpanVal Span
	Name    vm.Identifier
	Args    []Expr
}

func (n *FunctionCall) Span() Span      { return n.SpanVal }
func (n *FunctionCall) node()           {}
func (n *FunctionCall) expr()           {}
func (n *FunctionCall) Op() vm.Operator { return vm.FunctionCallOperator(n.Name) }
