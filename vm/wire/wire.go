// Package wire encodes paused programs as canonical CBOR snapshots so a
// stepping session can be persisted and resumed later.
package wire

import (
	"fmt"

	"github.com/chazu/celstep/vm"
	"github.com/fxamacker/cbor/v2"
)

// Version is the snapshot format version written by Capture.
const Version = 1

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	dm, err := cbor.DecOptions{MaxNestedLevels: 4096}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

// Snapshot is the serializable state of a program: its instructions, the
// pointer and the stack (bottom first).
type Snapshot struct {
	Version      int           `cbor:"v"`
	Source       string        `cbor:"src,omitempty"`
	Instructions []Instruction `cbor:"ins"`
	Pointer      int           `cbor:"ptr"`
	Stack        []Result      `cbor:"stk,omitempty"`
	SizeLimit    int           `cbor:"lim,omitempty"`
}

// Instruction is the wire form of vm.Instruction.
type Instruction struct {
	Opcode   uint8  `cbor:"op"`
	N        int    `cbor:"n,omitempty"`
	Value    *Value `cbor:"val,omitempty"`
	Operator string `cbor:"opr,omitempty"`
	Name     string `cbor:"name,omitempty"`
}

// Value is the wire form of vm.Value, tagged by kind.
type Value struct {
	Kind  uint8            `cbor:"k"`
	Int   int64            `cbor:"i,omitempty"`
	Float float64          `cbor:"f,omitempty"`
	Bool  bool             `cbor:"b,omitempty"`
	Str   string           `cbor:"s,omitempty"`
	Bytes []byte           `cbor:"y,omitempty"`
	List  []Value          `cbor:"l,omitempty"`
	Map   map[string]Value `cbor:"m,omitempty"`
}

// Result is the wire form of vm.Result. Exactly one field is set.
type Result struct {
	Value *Value `cbor:"ok,omitempty"`
	Err   *Error `cbor:"err,omitempty"`
}

// Error is the wire form of vm.Error.
type Error struct {
	Code     uint8   `cbor:"c"`
	Name     string  `cbor:"n,omitempty"`
	Key      string  `cbor:"key,omitempty"`
	Kind     uint8   `cbor:"k,omitempty"`
	Kind2    uint8   `cbor:"k2,omitempty"`
	ArgKinds []uint8 `cbor:"args,omitempty"`
	Arity    int     `cbor:"a,omitempty"`
	Operator string  `cbor:"op,omitempty"`
}

// Capture records the current state of p.
func Capture(p *vm.Program, source string) *Snapshot {
	s := &Snapshot{
		Version:   Version,
		Source:    source,
		Pointer:   p.Pointer(),
		SizeLimit: p.SizeLimit,
	}
	for _, in := range p.Instructions() {
		s.Instructions = append(s.Instructions, encodeInstruction(in))
	}
	for _, r := range p.RawStack() {
		s.Stack = append(s.Stack, encodeResult(r))
	}
	return s
}

// Program rebuilds a paused program from the snapshot. The state is verified
// against the instruction sequence.
func (s *Snapshot) Program() (*vm.Program, error) {
	if s.Version != Version {
		return nil, fmt.Errorf("wire: unsupported snapshot version %d", s.Version)
	}
	instrs := make([]vm.Instruction, len(s.Instructions))
	for i, in := range s.Instructions {
		decoded, err := decodeInstruction(in)
		if err != nil {
			return nil, fmt.Errorf("wire: instruction %d: %w", i, err)
		}
		instrs[i] = decoded
	}
	stack := make([]vm.Result, len(s.Stack))
	for i, r := range s.Stack {
		decoded, err := decodeResult(r)
		if err != nil {
			return nil, fmt.Errorf("wire: stack slot %d: %w", i, err)
		}
		stack[i] = decoded
	}
	p, err := vm.Restore(instrs, s.Pointer, stack)
	if err != nil {
		return nil, fmt.Errorf("wire: restore: %w", err)
	}
	p.SizeLimit = s.SizeLimit
	return p, nil
}

// MarshalSnapshot serializes a Snapshot to CBOR bytes.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cborDecMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("wire: unmarshal snapshot: %w", err)
	}
	return &s, nil
}

// MarshalProgram captures p and serializes the snapshot.
func MarshalProgram(p *vm.Program, source string) ([]byte, error) {
	return MarshalSnapshot(Capture(p, source))
}

// UnmarshalProgram deserializes a snapshot and rebuilds its program. It also
// returns the recorded source text.
func UnmarshalProgram(data []byte) (*vm.Program, string, error) {
	s, err := UnmarshalSnapshot(data)
	if err != nil {
		return nil, "", err
	}
	p, err := s.Program()
	if err != nil {
		return nil, "", err
	}
	return p, s.Source, nil
}
