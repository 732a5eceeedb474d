package compiler

import (
	"fmt"

	"github.com/chazu/celstep/vm"
)

// ---------------------------------------------------------------------------
// Codegen: Linearize AST to stack-machine instructions
// ---------------------------------------------------------------------------

// indexMethod is the method name index syntax a[k] parses to.
const indexMethod vm.Identifier = "get"

var binaryOpcodes = map[BinaryOp]vm.Opcode{
	BinaryEq:  vm.OpEq,
	BinaryLt:  vm.OpLt,
	BinaryLte: vm.OpLte,
	BinaryGte: vm.OpGte,
	BinaryGt:  vm.OpGt,
	BinaryAdd: vm.OpAdd,
	BinarySub: vm.OpSub,
	BinaryMul: vm.OpMul,
	BinaryDiv: vm.OpDiv,
	BinaryMod: vm.OpMod,
}

// Linearize compiles an expression into a flat instruction sequence. It
// never fails: constructs the interpreter does not support compile to an
// Abort instruction. All jumps are forward.
func Linearize(e Expr) []vm.Instruction {
	return emit(nil, e)
}

// emit appends the instructions for e to code.
func emit(code []vm.Instruction, e Expr) []vm.Instruction {
	switch n := e.(type) {
	// ============ Literals ============
	case *IntLiteral:
		return append(code, vm.Lit(vm.I64(n.Value)))
	case *FloatLiteral:
		return append(code, vm.Lit(vm.F64(n.Value)))
	case *BoolLiteral:
		return append(code, vm.Lit(vm.Bool(n.Value)))
	case *StringLiteral:
		return append(code, vm.Lit(vm.Str(n.Value)))
	case *BytesLiteral:
		return append(code, vm.Lit(vm.Bytes(append([]byte(nil), n.Value...))))
	case *NullLiteral:
		return append(code, vm.Lit(vm.Null{}))
	case *ListLiteral:
		for _, elem := range n.Elements {
			code = emit(code, elem)
		}
		return append(code, vm.MakeList(len(n.Elements)))
	case *MapLiteral:
		for _, entry := range n.Entries {
			code = emit(code, entry.Key)
			code = emit(code, entry.Value)
		}
		return append(code, vm.MakeMap(len(n.Entries)))

	// ============ Operators ============
	case *Binary:
		code = emit(code, n.Left)
		code = emit(code, n.Right)
		if n.Operator == BinaryNeq {
			return append(code, vm.Simple(vm.OpEq), vm.Simple(vm.OpNot))
		}
		return append(code, vm.Simple(binaryOpcodes[n.Operator]))
	case *Unary:
		code = emit(code, n.Operand)
		if n.Operator == UnaryNot {
			return append(code, vm.Simple(vm.OpNot))
		}
		return append(code, vm.Simple(vm.OpNeg))
	case *Or:
		return emitShortCircuit(code, n.Operands, vm.JumpIf, vm.OpOr)
	case *And:
		return emitShortCircuit(code, n.Operands, vm.JumpIfNot, vm.OpAnd)
	case *Ternary:
		code = emit(code, n.Condition)
		then := Linearize(n.Then)
		els := Linearize(n.Else)
		code = append(code,
			vm.JumpIf(len(els)+2),
			vm.JumpError(len(els)+len(then)+2),
		)
		code = append(code, els...)
		code = append(code, vm.Jump(len(then)))
		code = append(code, then...)
		return append(code, vm.Simple(vm.OpTernary))

	// ============ Access ============
	case *Member:
		code = emit(code, n.Operand)
		return append(code, vm.Lit(vm.Str(n.Name)), vm.Member(n.Name))
	case *Method:
		if n.Name == indexMethod && len(n.Args) == 1 {
			code = emit(code, n.Receiver)
			code = emit(code, n.Args[0])
			return append(code, vm.Member(indexMethod))
		}
		return append(code, vm.Simple(vm.OpAbort))

	// ============ Unsupported at run time ============
	case *LetBinding, *Binding, *FunctionCall:
		return append(code, vm.Simple(vm.OpAbort))
	}
	panic(fmt.Sprintf("compiler: cannot linearize %T", e))
}

// emitShortCircuit compiles a variadic Or/And. Each operand after the first
// is preceded by a jump that skips it and its combining instruction when
// the accumulated value already decides the result. Errors do not jump, so
// a later absorbing operand can still override them.
func emitShortCircuit(code []vm.Instruction, operands []Expr, jump func(int) vm.Instruction, combine vm.Opcode) []vm.Instruction {
	code = emit(code, operands[0])
	for _, operand := range operands[1:] {
		sub := Linearize(operand)
		code = append(code, jump(len(sub)+1))
		code = append(code, sub...)
		code = append(code, vm.Simple(combine))
	}
	return code
}
