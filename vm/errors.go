package vm

import (
	"fmt"
	"strings"
)

// Identifier is an opaque name. Two identifiers are equal when their text is.
type Identifier string

// Operator tags the language construct an evaluation error is attributed to.
// Method and function-call tags carry the callee name, e.g. "Method(len)".
type Operator string

const (
	OperatorNot        Operator = "Not"
	OperatorNeg        Operator = "Neg"
	OperatorPlus       Operator = "Plus"
	OperatorMinus      Operator = "Minus"
	OperatorTimes      Operator = "Times"
	OperatorDiv        Operator = "Div"
	OperatorMod        Operator = "Mod"
	OperatorOr         Operator = "Or"
	OperatorAnd        Operator = "And"
	OperatorEq         Operator = "Eq"
	OperatorNeq        Operator = "Neq"
	OperatorLte        Operator = "Lte"
	OperatorLt         Operator = "Lt"
	OperatorGt         Operator = "Gt"
	OperatorGte        Operator = "Gte"
	OperatorLit        Operator = "Lit"
	OperatorLookup     Operator = "Lookup"
	OperatorMember     Operator = "Member"
	OperatorLetBinding Operator = "LetBinding"
	OperatorTernary    Operator = "Ternary"
	OperatorJump       Operator = "Jump"
)

// MethodOperator returns the operator tag for a method call named id.
func MethodOperator(id Identifier) Operator {
	return Operator("Method(" + string(id) + ")")
}

// FunctionCallOperator returns the operator tag for a free function call
// named id.
func FunctionCallOperator(id Identifier) Operator {
	return Operator("FunctionCall(" + string(id) + ")")
}

// ErrorCode identifies the variant of an evaluation Error.
type ErrorCode uint8

const (
	ErrNoMethod ErrorCode = iota
	ErrNoMethodOnType
	ErrNoMethodWithSignature
	ErrNoFunction
	ErrInvalidFunctionArity
	ErrInvalidFunctionSignature
	ErrFunctionExecutionError
	ErrInvalidTypeForOperator
	ErrInvalidTypesForOperator
	ErrDivisionByZero
	ErrNoSuchBinding
	ErrNoSuchMember
	ErrInvalidMapKey
	ErrInvalidMapValue
	ErrDuplicateMapKey
	ErrEvaluationTooLarge
	ErrAborted
)

var errorCodeNames = [...]string{
	ErrNoMethod:                 "NoMethod",
	ErrNoMethodOnType:           "NoMethodOnType",
	ErrNoMethodWithSignature:    "NoMethodWithSignature",
	ErrNoFunction:               "NoFunction",
	ErrInvalidFunctionArity:     "InvalidFunctionArity",
	ErrInvalidFunctionSignature: "InvalidFunctionSignature",
	ErrFunctionExecutionError:   "FunctionExecutionError",
	ErrInvalidTypeForOperator:   "InvalidTypeForOperator",
	ErrInvalidTypesForOperator:  "InvalidTypesForOperator",
	ErrDivisionByZero:           "DivisionByZero",
	ErrNoSuchBinding:            "NoSuchBinding",
	ErrNoSuchMember:             "NoSuchMember",
	ErrInvalidMapKey:            "InvalidMapKey",
	ErrInvalidMapValue:          "InvalidMapValue",
	ErrDuplicateMapKey:          "DuplicateMapKey",
	ErrEvaluationTooLarge:       "EvaluationTooLarge",
	ErrAborted:                  "Aborted",
}

func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", uint8(c))
}

// Error is an evaluation failure. It is data: the interpreter pushes it on
// the operand stack like any other result. Only the fields relevant to Code
// are set.
type Error struct {
	Code     ErrorCode
	Name     Identifier // method, function, binding or member name
	Key      string     // DuplicateMapKey
	Kind     Kind       // first operand kind
	Kind2    Kind       // second operand kind (InvalidTypesForOperator)
	ArgKinds []Kind     // signature errors
	Arity    int        // InvalidFunctionArity
	Operator Operator   // operator errors
}

// Error renders the variant and its fields, e.g.
// "InvalidTypesForOperator(Bool, String, Or)".
func (e *Error) Error() string {
	var args []string
	switch e.Code {
	case ErrNoMethod, ErrNoFunction, ErrFunctionExecutionError, ErrNoSuchBinding, ErrNoSuchMember:
		args = []string{string(e.Name)}
	case ErrNoMethodOnType:
		args = []string{e.Kind.String(), string(e.Name)}
	case ErrNoMethodWithSignature:
		args = []string{e.Kind.String(), string(e.Name), kindList(e.ArgKinds)}
	case ErrInvalidFunctionArity:
		args = []string{string(e.Name), fmt.Sprint(e.Arity)}
	case ErrInvalidFunctionSignature:
		args = []string{string(e.Name), kindList(e.ArgKinds)}
	case ErrInvalidTypeForOperator:
		args = []string{e.Kind.String(), string(e.Operator)}
	case ErrInvalidTypesForOperator:
		args = []string{e.Kind.String(), e.Kind2.String(), string(e.Operator)}
	case ErrInvalidMapKey, ErrInvalidMapValue:
		args = []string{e.Kind.String()}
	case ErrDuplicateMapKey:
		args = []string{fmt.Sprintf("%q", e.Key)}
	}
	if len(args) == 0 {
		return e.Code.String()
	}
	return e.Code.String() + "(" + strings.Join(args, ", ") + ")"
}

// Is reports whether target is an *Error with the same rendering, so that
// errors.Is works on structurally equal evaluation errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Equal(t)
}

// Equal reports whether e and o are the same variant with the same fields.
func (e *Error) Equal(o *Error) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Error() == o.Error()
}

func kindList(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Constructors for the error variants the interpreter raises.

func ErrTypeForOperator(k Kind, op Operator) *Error {
	return &Error{Code: ErrInvalidTypeForOperator, Kind: k, Operator: op}
}

func ErrTypesForOperator(a, b Kind, op Operator) *Error {
	return &Error{Code: ErrInvalidTypesForOperator, Kind: a, Kind2: b, Operator: op}
}

func ErrNoMember(name Identifier) *Error {
	return &Error{Code: ErrNoSuchMember, Name: name}
}

func ErrMapKey(k Kind) *Error {
	return &Error{Code: ErrInvalidMapKey, Kind: k}
}

func ErrDuplicateKey(key string) *Error {
	return &Error{Code: ErrDuplicateMapKey, Key: key}
}

var (
	// ErrDivByZero is pushed by Div and Mod when the divisor is zero.
	ErrDivByZero = &Error{Code: ErrDivisionByZero}
	// ErrAbort is pushed by the Abort instruction.
	ErrAbort = &Error{Code: ErrAborted}
	// ErrTooLarge replaces a result whose size exceeds the program limit.
	ErrTooLarge = &Error{Code: ErrEvaluationTooLarge}
)

// Result is an evaluation result: a Value or an *Error. Exactly one of the
// two fields is set. Results are the only thing held on the operand stack.
type Result struct {
	Value Value
	Err   *Error
}

// Ok wraps a value.
func Ok(v Value) Result { return Result{Value: v} }

// Fail wraps an error.
func Fail(err *Error) Result { return Result{Err: err} }

// IsErr reports whether r holds an error.
func (r Result) IsErr() bool { return r.Err != nil }

// Bool returns the boolean held by r, if any.
func (r Result) Bool() (b, ok bool) {
	if r.Err != nil {
		return false, false
	}
	v, ok := r.Value.(Bool)
	return bool(v), ok
}

// String renders r as "Ok(value)" or "Err(error)".
func (r Result) String() string {
	if r.Err != nil {
		return "Err(" + r.Err.Error() + ")"
	}
	return "Ok(" + r.Value.String() + ")"
}

// Display renders just the held value or error.
func (r Result) Display() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Value.String()
}

// Equal reports whether two results hold structurally equal values or equal
// errors.
func (r Result) Equal(o Result) bool {
	if r.Err != nil || o.Err != nil {
		return r.Err.Equal(o.Err)
	}
	return Equal(r.Value, o.Value)
}

func (r Result) clone() Result {
	if r.Err != nil {
		return r
	}
	return Ok(Copy(r.Value))
}
