package vm

import "fmt"

// Opcode identifies an instruction kind.
// Opcodes are organized into ranges by category.
type Opcode byte

const (
	// ========================================================================
	// Constants and construction (0x00-0x0F)
	// ========================================================================

	OpLit       Opcode = 0x00 // Push literal value: LIT <value>
	OpTypeError Opcode = 0x01 // Pop one, push type error for operator: TYPERR <op>
	OpMakeList  Opcode = 0x02 // Pop n, push list: MKLIST <n>
	OpMakeMap   Opcode = 0x03 // Pop 2n, push map: MKMAP <n>

	// ========================================================================
	// Arithmetic (0x10-0x1F)
	// ========================================================================

	OpAdd Opcode = 0x10 // Pop two, push sum
	OpSub Opcode = 0x11 // Pop two, push difference (a - b where b is TOS)
	OpMul Opcode = 0x12 // Pop two, push product
	OpDiv Opcode = 0x13 // Pop two, push quotient
	OpMod Opcode = 0x14 // Pop two, push remainder
	OpNeg Opcode = 0x15 // Negate top of stack

	// ========================================================================
	// Logical operations (0x20-0x2F)
	// ========================================================================

	OpNot Opcode = 0x20 // Negate boolean on top of stack
	OpOr  Opcode = 0x21 // Pop two, push disjunction (true absorbs)
	OpAnd Opcode = 0x22 // Pop two, push conjunction (false absorbs)

	// ========================================================================
	// Comparison (0x30-0x3F)
	// ========================================================================

	OpEq  Opcode = 0x30 // Pop two, push structural equality
	OpLt  Opcode = 0x31 // Pop two, push a < b
	OpLte Opcode = 0x32 // Pop two, push a <= b
	OpGte Opcode = 0x33 // Pop two, push a >= b
	OpGt  Opcode = 0x34 // Pop two, push a > b

	// ========================================================================
	// Stack manipulation (0x40-0x4F)
	// ========================================================================

	OpClone Opcode = 0x40 // Duplicate top of stack
	OpPop   Opcode = 0x41 // Discard top of stack

	// ========================================================================
	// Control flow (0x50-0x5F)
	// ========================================================================

	OpJump      Opcode = 0x50 // Unconditional forward jump: JMP <n>
	OpJumpError Opcode = 0x51 // Jump if top is an error: JMPERR <n>
	OpJumpIf    Opcode = 0x52 // Jump if top is true: JMPIF <n>
	OpJumpIfNot Opcode = 0x53 // Jump if top is false: JMPIFN <n>
	OpAbort     Opcode = 0x54 // Clear the stack, push Aborted, terminate
	OpTernary   Opcode = 0x55 // Pop branch result, drop condition, push result

	// ========================================================================
	// Access (0x60-0x6F)
	// ========================================================================

	OpMember Opcode = 0x60 // Pop key and map, push member: MBR <name>
)

// OpcodeInfo provides metadata about each opcode for display and validation.
type OpcodeInfo struct {
	Name      string // Mnemonic
	StackPop  int    // How many values popped from stack (-1 = operand dependent)
	StackPush int    // How many values pushed to stack
	Operand   bool   // Whether the instruction carries an operand
}

var opcodeInfoTable = map[Opcode]OpcodeInfo{
	OpLit:       {"LIT", 0, 1, true},
	OpTypeError: {"TYPERR", 1, 1, true},
	OpMakeList:  {"MKLIST", -1, 1, true},
	OpMakeMap:   {"MKMAP", -1, 1, true},

	OpAdd: {"ADD", 2, 1, false},
	OpSub: {"SUB", 2, 1, false},
	OpMul: {"MUL", 2, 1, false},
	OpDiv: {"DIV", 2, 1, false},
	OpMod: {"MOD", 2, 1, false},
	OpNeg: {"NEG", 1, 1, false},

	OpNot: {"NOT", 1, 1, false},
	OpOr:  {"OR", 2, 1, false},
	OpAnd: {"AND", 2, 1, false},

	OpEq:  {"EQ", 2, 1, false},
	OpLt:  {"LT", 2, 1, false},
	OpLte: {"LTE", 2, 1, false},
	OpGte: {"GTE", 2, 1, false},
	OpGt:  {"GT", 2, 1, false},

	OpClone: {"CLONE", 1, 2, false},
	OpPop:   {"POP", 1, 0, false},

	OpJump:      {"JMP", 0, 0, true},
	OpJumpError: {"JMPERR", 0, 0, true},
	OpJumpIf:    {"JMPIF", 1, 1, true},
	OpJumpIfNot: {"JMPIFN", 1, 1, true},
	OpAbort:     {"ABRT", -1, 1, false},
	OpTernary:   {"TERNRY", 2, 1, false},

	OpMember: {"MBR", 2, 1, true},
}

// GetOpcodeInfo returns metadata for an opcode.
// Returns an OpcodeInfo with name "UNKNOWN" if the opcode is not recognized.
func GetOpcodeInfo(op Opcode) OpcodeInfo {
	if info, ok := opcodeInfoTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN(0x%02X)", byte(op))}
}

// String returns the mnemonic for the opcode.
func (op Opcode) String() string {
	return GetOpcodeInfo(op).Name
}

// IsJump returns true if this opcode may move the pointer forward.
func (op Opcode) IsJump() bool {
	return op == OpJump || op == OpJumpError || op == OpJumpIf || op == OpJumpIfNot
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodeInfoTable[op]
	return ok
}

// Instruction is one step of a program. Only the operand field relevant to
// Opcode is set: Value for LIT, Operator for TYPERR, N for MKLIST/MKMAP and
// jumps, Name for MBR.
type Instruction struct {
	Opcode   Opcode
	N        int
	Value    Value
	Operator Operator
	Name     Identifier
}

// Convenience constructors used by the compiler and tests.

func Lit(v Value) Instruction            { return Instruction{Opcode: OpLit, Value: v} }
func TypeError(op Operator) Instruction  { return Instruction{Opcode: OpTypeError, Operator: op} }
func MakeList(n int) Instruction         { return Instruction{Opcode: OpMakeList, N: n} }
func MakeMap(n int) Instruction          { return Instruction{Opcode: OpMakeMap, N: n} }
func Jump(n int) Instruction             { return Instruction{Opcode: OpJump, N: n} }
func JumpError(n int) Instruction        { return Instruction{Opcode: OpJumpError, N: n} }
func JumpIf(n int) Instruction           { return Instruction{Opcode: OpJumpIf, N: n} }
func JumpIfNot(n int) Instruction        { return Instruction{Opcode: OpJumpIfNot, N: n} }
func Member(name Identifier) Instruction { return Instruction{Opcode: OpMember, Name: name} }
func Simple(op Opcode) Instruction       { return Instruction{Opcode: op} }

// Short returns the instruction mnemonic.
func (in Instruction) Short() string {
	return in.Opcode.String()
}

// Operand renders the instruction operand, or "" if it has none.
func (in Instruction) Operand() string {
	switch in.Opcode {
	case OpLit:
		if in.Value == nil {
			return ""
		}
		return in.Value.String()
	case OpTypeError:
		return string(in.Operator)
	case OpMakeList, OpMakeMap, OpJump, OpJumpError, OpJumpIf, OpJumpIfNot:
		return fmt.Sprint(in.N)
	case OpMember:
		return string(in.Name)
	}
	return ""
}

// String renders the mnemonic followed by the operand, e.g. "JMPIF 3".
func (in Instruction) String() string {
	if operand := in.Operand(); operand != "" {
		return in.Short() + " " + operand
	}
	return in.Short()
}

// Tooltip returns a one-line description of what the instruction does.
func (in Instruction) Tooltip() string {
	switch in.Opcode {
	case OpLit:
		return fmt.Sprintf("pushes the value %s onto the stack", in.Operand())
	case OpMakeList:
		return fmt.Sprintf("pop %d items and construct a list from them", in.N)
	case OpMakeMap:
		return fmt.Sprintf("pop %d items and construct a map from the key-value pairs", 2*in.N)
	case OpAdd:
		return "pop 2 items and push their sum"
	case OpSub:
		return "pop 2 items and push their difference"
	case OpMul:
		return "pop 2 items and push their product"
	case OpDiv:
		return "pop 2 items and divide them"
	case OpMod:
		return "pop 2 items and take the modulus"
	case OpNeg:
		return "pop a number and negate it"
	case OpNot:
		return "pop a boolean and negate it"
	case OpOr, OpAnd:
		return "combine two booleans"
	case OpEq:
		return "pop two items and check if they're equal"
	case OpJump:
		return fmt.Sprintf("jump %d operations", in.N)
	case OpJumpError:
		return fmt.Sprintf("peek at the top of the stack; jmp %d operations if it is an error", in.N)
	case OpJumpIf:
		return fmt.Sprintf("peek at the top of the stack; jump %d operations if it is true", in.N)
	case OpJumpIfNot:
		return fmt.Sprintf("peek at the top of the stack; jump %d operations if it is false", in.N)
	case OpClone:
		return "pop an item and push two copies of it back onto the stack"
	case OpPop:
		return "pop an item and discard it"
	case OpTypeError:
		return fmt.Sprintf("pop an item and construct a type-error for %s", in.Operator)
	case OpLt:
		return "pop two items and check if the first is < than the second"
	case OpLte:
		return "pop two items and check if the first is <= than the second"
	case OpGte:
		return "pop two items and check if the first is >= than the second"
	case OpGt:
		return "pop two items and check if the first is > than the second"
	case OpAbort:
		return "abort the program (usually because something isn't implemented)"
	case OpMember:
		return "pop a map and a string off the stack, then fetch the named member from the map"
	case OpTernary:
		return "pop two values off the stack, push the original head back on"
	}
	return "unknown instruction"
}

// Equal reports whether two instructions have the same opcode and operand.
func (in Instruction) Equal(o Instruction) bool {
	if in.Opcode != o.Opcode || in.N != o.N || in.Operator != o.Operator || in.Name != o.Name {
		return false
	}
	if in.Value == nil || o.Value == nil {
		return in.Value == nil && o.Value == nil
	}
	return Equal(in.Value, o.Value)
}
