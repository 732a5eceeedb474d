package compiler

import (
	"strconv"
	"strings"
)

// Format renders an expression as a compact S-expression, e.g.
// "(* 22 (+ 4 15))". It is meant for tests and debugging output.
func Format(e Expr) string {
	var sb strings.Builder
	format(&sb, e)
	return sb.String()
}

func format(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *IntLiteral:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLiteral:
		s := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		sb.WriteString(s)
	case *BoolLiteral:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *StringLiteral:
		sb.WriteString(strconv.Quote(n.Value))
	case *BytesLiteral:
		sb.WriteString("b" + strconv.Quote(string(n.Value)))
	case *NullLiteral:
		sb.WriteString("null")
	case *ListLiteral:
		sb.WriteByte('[')
		formatList(sb, n.Elements)
		sb.WriteByte(']')
	case *MapLiteral:
		sb.WriteByte('{')
		for i, entry := range n.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, entry.Key)
			sb.WriteString(": ")
			format(sb, entry.Value)
		}
		sb.WriteByte('}')
	case *Binary:
		sb.WriteString("(" + n.Operator.String() + " ")
		formatList(sb, []Expr{n.Left, n.Right})
		sb.WriteByte(')')
	case *Unary:
		sb.WriteString("(" + n.Operator.String() + " ")
		format(sb, n.Operand)
		sb.WriteByte(')')
	case *Or:
		sb.WriteString("(|| ")
		formatList(sb, n.Operands)
		sb.WriteByte(')')
	case *And:
		sb.WriteString("(&& ")
		formatList(sb, n.Operands)
		sb.WriteByte(')')
	case *Ternary:
		sb.WriteString("(? ")
		formatList(sb, []Expr{n.Condition, n.Then, n.Else})
		sb.WriteByte(')')
	case *LetBinding:
		sb.WriteString("(let " + string(n.Name) + " ")
		formatList(sb, []Expr{n.Value, n.Body})
		sb.WriteByte(')')
	case *Binding:
		sb.WriteString(string(n.Name))
	case *Member:
		sb.WriteString("(. ")
		format(sb, n.Operand)
		sb.WriteString(" " + string(n.Name) + ")")
	case *Method:
		sb.WriteString("(." + string(n.Name) + " ")
		formatList(sb, append([]Expr{n.Receiver}, n.Args...))
		sb.WriteByte(')')
	case *FunctionCall:
		sb.WriteString("(" + string(n.Name))
		for _, arg := range n.Args {
			sb.WriteByte(' ')
			format(sb, arg)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString("<?>")
	}
}

func formatList(sb *strings.Builder, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		format(sb, e)
	}
}

// Children returns the direct sub-expressions of e in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *ListLiteral:
		return n.Elements
	case *MapLiteral:
		out := make([]Expr, 0, 2*len(n.Entries))
		for _, entry := range n.Entries {
			out = append(out, entry.Key, entry.Value)
		}
		return out
	case *Binary:
		return []Expr{n.Left, n.Right}
	case *Unary:
		return []Expr{n.Operand}
	case *Or:
		return n.Operands
	case *And:
		return n.Operands
	case *Ternary:
		return []Expr{n.Condition, n.Then, n.Else}
	case *LetBinding:
		return []Expr{n.Value, n.Body}
	case *Member:
		return []Expr{n.Operand}
	case *Method:
		return append([]Expr{n.Receiver}, n.Args...)
	case *FunctionCall:
		return n.Args
	}
	return nil
}

// Inspect traverses e depth-first, calling fn for every node. Children are
// skipped when fn returns false.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Inspect(child, fn)
	}
}

// NodeAt returns the innermost node whose span contains the byte offset, or
// nil.
func NodeAt(root Expr, offset int) Expr {
	var found Expr
	Inspect(root, func(e Expr) bool {
		if !e.Span().Contains(offset) {
			return false
		}
		found = e
		return true
	})
	return found
}
