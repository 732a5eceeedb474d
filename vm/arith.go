package vm

import "math"

var binaryOperators = map[Opcode]Operator{
	OpAdd: OperatorPlus,
	OpSub: OperatorMinus,
	OpMul: OperatorTimes,
	OpDiv: OperatorDiv,
	OpMod: OperatorMod,
	OpLt:  OperatorLt,
	OpLte: OperatorLte,
	OpGte: OperatorGte,
	OpGt:  OperatorGt,
}

// binary evaluates an arithmetic or ordering instruction on a (left) and b
// (right). An error in a takes precedence over an error in b.
func binary(op Opcode, a, b Result) Result {
	if a.Err != nil {
		return a
	}
	if b.Err != nil {
		return b
	}
	switch op {
	case OpLt, OpLte, OpGte, OpGt:
		return compare(op, a.Value, b.Value)
	}

	switch x := a.Value.(type) {
	case I64:
		if y, ok := b.Value.(I64); ok {
			return intArith(op, x, y)
		}
	case F64:
		if y, ok := b.Value.(F64); ok {
			return floatArith(op, x, y)
		}
	}
	return Fail(ErrTypesForOperator(a.Value.Kind(), b.Value.Kind(), binaryOperators[op]))
}

// intArith wraps on overflow.
func intArith(op Opcode, x, y I64) Result {
	switch op {
	case OpAdd:
		return Ok(x + y)
	case OpSub:
		return Ok(x - y)
	case OpMul:
		return Ok(x * y)
	case OpDiv:
		if y == 0 {
			return Fail(ErrDivByZero)
		}
		if x == math.MinInt64 && y == -1 {
			return Ok(x)
		}
		return Ok(x / y)
	case OpMod:
		if y == 0 {
			return Fail(ErrDivByZero)
		}
		if y == -1 {
			return Ok(I64(0))
		}
		return Ok(x % y)
	}
	return Fail(ErrTypesForOperator(KindI64, KindI64, binaryOperators[op]))
}

func floatArith(op Opcode, x, y F64) Result {
	switch op {
	case OpAdd:
		return Ok(x + y)
	case OpSub:
		return Ok(x - y)
	case OpMul:
		return Ok(x * y)
	case OpDiv:
		if y == 0 {
			return Fail(ErrDivByZero)
		}
		return Ok(x / y)
	case OpMod:
		if y == 0 {
			return Fail(ErrDivByZero)
		}
		return Ok(F64(math.Mod(float64(x), float64(y))))
	}
	return Fail(ErrTypesForOperator(KindF64, KindF64, binaryOperators[op]))
}

// compare orders two integers. Other kinds are a type error.
func compare(op Opcode, a, b Value) Result {
	x, okx := a.(I64)
	y, oky := b.(I64)
	if !okx || !oky {
		return Fail(ErrTypesForOperator(a.Kind(), b.Kind(), binaryOperators[op]))
	}
	var r bool
	switch op {
	case OpLt:
		r = x < y
	case OpLte:
		r = x <= y
	case OpGte:
		r = x >= y
	case OpGt:
		r = x > y
	}
	return Ok(Bool(r))
}

func negate(r Result) Result {
	if r.Err != nil {
		return r
	}
	switch v := r.Value.(type) {
	case I64:
		return Ok(-v)
	case F64:
		return Ok(-v)
	}
	return Fail(ErrTypeForOperator(r.Value.Kind(), OperatorNeg))
}

func not(r Result) Result {
	if r.Err != nil {
		return r
	}
	if b, ok := r.Value.(Bool); ok {
		return Ok(!b)
	}
	return Fail(ErrTypeForOperator(r.Value.Kind(), OperatorNot))
}

// combine implements Or (absorbing true) and And (absorbing false). An
// absorbing operand decides the result even when the other one is an error
// or of the wrong kind.
func combine(a, b Result, absorbing bool, op Operator) Result {
	ab, aok := a.Bool()
	bb, bok := b.Bool()
	if (aok && ab == absorbing) || (bok && bb == absorbing) {
		return Ok(Bool(absorbing))
	}
	if a.Err != nil {
		return a
	}
	if b.Err != nil {
		return b
	}
	if aok && bok {
		return Ok(Bool(!absorbing))
	}
	return Fail(ErrTypesForOperator(a.Value.Kind(), b.Value.Kind(), op))
}

// member projects key out of a map operand.
func member(operand, key Result) Result {
	if operand.Err != nil {
		return operand
	}
	if key.Err != nil {
		return key
	}
	m, okm := operand.Value.(Map)
	k, okk := key.Value.(Str)
	if !okm || !okk {
		return Fail(ErrTypesForOperator(operand.Value.Kind(), key.Value.Kind(), OperatorMember))
	}
	v, ok := m[string(k)]
	if !ok {
		return Fail(ErrNoMember(Identifier(k)))
	}
	return Ok(v)
}
