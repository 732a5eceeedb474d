package vm

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("celstep.vm")

// Program is an instruction sequence together with its execution state: an
// instruction pointer and an operand stack of Results. A Program is driven
// by a single owner and is not safe for concurrent use.
type Program struct {
	instructions []Instruction
	pointer      int
	stack        []Result

	// SizeLimit, when positive, caps the accounted size of the value on top
	// of the stack after each instruction. Larger values are replaced by
	// EvaluationTooLarge.
	SizeLimit int

	// Trace logs every executed instruction at debug level.
	Trace bool

	// OnStep, when set, is called after every executed instruction.
	OnStep func(StepRecord)
}

// StepRecord describes the state right after one executed instruction.
type StepRecord struct {
	Index       int      `json:"index" yaml:"index"`
	Instruction string   `json:"instruction" yaml:"instruction"`
	Tooltip     string   `json:"tooltip" yaml:"tooltip"`
	Pointer     int      `json:"pointer" yaml:"pointer"`
	Stack       []string `json:"stack" yaml:"stack"`
}

// New creates a program at pointer 0 with an empty stack.
func New(instructions []Instruction) *Program {
	return &Program{instructions: instructions}
}

// Restore creates a program paused at pointer with the given stack (bottom
// first). The state is checked against the instruction sequence.
func Restore(instructions []Instruction, pointer int, stack []Result) (*Program, error) {
	depths, err := verify(instructions)
	if err != nil {
		return nil, err
	}
	if pointer < 0 || pointer > len(instructions) {
		return nil, fmt.Errorf("vm: pointer %d out of range [0, %d]", pointer, len(instructions))
	}
	want := depths[pointer]
	if want < 0 {
		return nil, fmt.Errorf("vm: pointer %d is unreachable", pointer)
	}
	if want != len(stack) {
		return nil, fmt.Errorf("vm: stack depth %d at pointer %d, want %d", len(stack), pointer, want)
	}
	for i, r := range stack {
		if (r.Err == nil) == (r.Value == nil) {
			return nil, fmt.Errorf("vm: stack slot %d must hold exactly one of value or error", i)
		}
	}
	return &Program{
		instructions: instructions,
		pointer:      pointer,
		stack:        append([]Result(nil), stack...),
	}, nil
}

// Instructions returns the instruction sequence. Callers must not modify it.
func (p *Program) Instructions() []Instruction { return p.instructions }

// Pointer returns the index of the next instruction to execute.
func (p *Program) Pointer() int { return p.pointer }

// Done reports whether the pointer has moved past the last instruction.
func (p *Program) Done() bool { return p.pointer >= len(p.instructions) }

// Stack returns a copy of the operand stack, top first.
func (p *Program) Stack() []Result {
	out := make([]Result, len(p.stack))
	for i, r := range p.stack {
		out[len(p.stack)-1-i] = r
	}
	return out
}

// RawStack returns a copy of the operand stack, bottom first.
func (p *Program) RawStack() []Result {
	return append([]Result(nil), p.stack...)
}

// Reset rewinds the program to pointer 0 with an empty stack.
func (p *Program) Reset() {
	p.pointer = 0
	p.stack = p.stack[:0]
}

// Run steps the program to completion and returns the sole remaining
// result. It panics if the stack does not hold exactly one result, which
// means the instruction sequence was malformed.
func (p *Program) Run() Result {
	for p.Step() {
	}
	if len(p.stack) != 1 {
		panic(fmt.Sprintf("vm: program finished with %d values on the stack, want 1: %v", len(p.stack), p.stack))
	}
	return p.stack[0]
}

// RunTraced runs the program to completion like Run and also returns a
// record for every executed instruction.
func (p *Program) RunTraced() (Result, []StepRecord) {
	var records []StepRecord
	prev := p.OnStep
	p.OnStep = func(rec StepRecord) {
		records = append(records, rec)
		if prev != nil {
			prev(rec)
		}
	}
	defer func() { p.OnStep = prev }()
	return p.Run(), records
}

// Step executes the instruction at the pointer and advances it. It returns
// whether instructions remain, and false without doing anything if the
// program has already finished.
func (p *Program) Step() bool {
	if p.pointer >= len(p.instructions) {
		return false
	}
	index := p.pointer
	in := p.instructions[index]
	p.exec(in)
	p.pointer++

	if p.SizeLimit > 0 && len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.Err == nil && Size(top.Value) > p.SizeLimit {
			p.stack[len(p.stack)-1] = Fail(ErrTooLarge)
		}
	}

	if p.Trace {
		log.Debugf("[%04d] %-24s ptr=%d stack=%s", index, in.String(), p.pointer, p.formatStack())
	}
	if p.OnStep != nil {
		p.OnStep(p.record(index, in))
	}
	return p.pointer < len(p.instructions)
}

func (p *Program) record(index int, in Instruction) StepRecord {
	stack := make([]string, 0, len(p.stack))
	for i := len(p.stack) - 1; i >= 0; i-- {
		stack = append(stack, p.stack[i].String())
	}
	return StepRecord{
		Index:       index,
		Instruction: in.String(),
		Tooltip:     in.Tooltip(),
		Pointer:     p.pointer,
		Stack:       stack,
	}
}

func (p *Program) formatStack() string {
	parts := make([]string, len(p.stack))
	for i, r := range p.stack {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p *Program) push(r Result) {
	p.stack = append(p.stack, r)
}

func (p *Program) pop() Result {
	n := len(p.stack)
	if n == 0 {
		panic(fmt.Sprintf("vm: stack underflow at instruction %d", p.pointer))
	}
	r := p.stack[n-1]
	p.stack[n-1] = Result{}
	p.stack = p.stack[:n-1]
	return r
}

func (p *Program) peek() Result {
	if len(p.stack) == 0 {
		panic(fmt.Sprintf("vm: stack underflow at instruction %d", p.pointer))
	}
	return p.stack[len(p.stack)-1]
}

// exec applies one instruction. Jumps add their offset here; Step adds the
// final increment.
func (p *Program) exec(in Instruction) {
	switch in.Opcode {
	// ============ Constants and construction ============
	case OpLit:
		p.push(Ok(Copy(in.Value)))

	case OpTypeError:
		r := p.pop()
		if r.Err == nil {
			r = Fail(ErrTypeForOperator(r.Value.Kind(), in.Operator))
		}
		p.push(r)

	case OpMakeList:
		p.push(p.makeList(in.N))

	case OpMakeMap:
		p.push(p.makeMap(in.N))

	// ============ Arithmetic and comparison ============
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpLt, OpLte, OpGte, OpGt:
		b := p.pop()
		a := p.pop()
		p.push(binary(in.Opcode, a, b))

	case OpEq:
		b := p.pop()
		a := p.pop()
		switch {
		case a.Err != nil:
			p.push(a)
		case b.Err != nil:
			p.push(b)
		default:
			p.push(Ok(Bool(Equal(a.Value, b.Value))))
		}

	case OpNeg:
		p.push(negate(p.pop()))

	case OpNot:
		p.push(not(p.pop()))

	// ============ Logical ============
	case OpOr:
		b := p.pop()
		a := p.pop()
		p.push(combine(a, b, true, OperatorOr))

	case OpAnd:
		b := p.pop()
		a := p.pop()
		p.push(combine(a, b, false, OperatorAnd))

	// ============ Stack manipulation ============
	case OpClone:
		r := p.pop()
		p.push(r.clone())
		p.push(r)

	case OpPop:
		p.pop()

	// ============ Control flow ============
	case OpJump:
		p.pointer += in.N

	case OpJumpError:
		if p.peek().Err != nil {
			p.pointer += in.N
		}

	case OpJumpIf, OpJumpIfNot:
		cond := p.pop()
		if cond.Err == nil {
			b, ok := cond.Value.(Bool)
			if !ok {
				cond = Fail(ErrTypeForOperator(cond.Value.Kind(), OperatorJump))
			} else if bool(b) == (in.Opcode == OpJumpIf) {
				p.pointer += in.N
			}
		}
		p.push(cond)

	case OpAbort:
		p.stack = p.stack[:0]
		p.push(Fail(ErrAbort))
		p.pointer = len(p.instructions) - 1

	case OpTernary:
		result := p.pop()
		p.pop()
		p.push(result)

	// ============ Access ============
	case OpMember:
		key := p.pop()
		operand := p.pop()
		p.push(member(operand, key))

	default:
		panic(fmt.Sprintf("vm: unknown opcode 0x%02X at instruction %d", byte(in.Opcode), p.pointer))
	}
}

// makeList drains n slots. The first error met while popping wins, but all
// n slots are always consumed.
func (p *Program) makeList(n int) Result {
	values := make(List, n)
	var err *Error
	for i := n - 1; i >= 0; i-- {
		r := p.pop()
		if err != nil {
			continue
		}
		if r.Err != nil {
			err = r.Err
			continue
		}
		values[i] = r.Value
	}
	if err != nil {
		return Fail(err)
	}
	return Ok(values)
}

// makeMap drains n value/key pairs, value first. Within a pair the value's
// error wins, as it is popped first.
func (p *Program) makeMap(n int) Result {
	entries := make(Map, n)
	var err *Error
	for i := 0; i < n; i++ {
		v := p.pop()
		k := p.pop()
		if err != nil {
			continue
		}
		switch {
		case v.Err != nil:
			err = v.Err
		case k.Err != nil:
			err = k.Err
		default:
			key, ok := k.Value.(Str)
			if !ok {
				err = ErrMapKey(k.Value.Kind())
				continue
			}
			if _, dup := entries[string(key)]; dup {
				err = ErrDuplicateKey(string(key))
				continue
			}
			entries[string(key)] = v.Value
		}
	}
	if err != nil {
		return Fail(err)
	}
	return Ok(entries)
}
