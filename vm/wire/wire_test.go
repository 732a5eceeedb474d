package wire

import (
	"bytes"
	"math"
	"testing"

	"github.com/chazu/celstep/vm"
)

func ternary() []vm.Instruction {
	return []vm.Instruction{
		vm.Lit(vm.Bool(true)), vm.JumpIf(3), vm.JumpError(4),
		vm.Lit(vm.Map{"a": vm.List{vm.Bytes{0xff}, vm.Null{}}}), vm.Jump(1),
		vm.Lit(vm.F64(2.5)), vm.Simple(vm.OpTernary),
	}
}

func TestSnapshot_CBORRoundTrip(t *testing.T) {
	p := vm.New(ternary())
	p.SizeLimit = 4096
	p.Step()
	p.Step()

	data, err := MarshalProgram(p, "true ? 2.5 : {'a': [b\"\\xff\", null]}")
	if err != nil {
		t.Fatalf("MarshalProgram: %v", err)
	}

	got, src, err := UnmarshalProgram(data)
	if err != nil {
		t.Fatalf("UnmarshalProgram: %v", err)
	}
	if src != "true ? 2.5 : {'a': [b\"\\xff\", null]}" {
		t.Errorf("source = %q", src)
	}
	if got.Pointer() != p.Pointer() {
		t.Errorf("Pointer() = %d, want %d", got.Pointer(), p.Pointer())
	}
	if got.SizeLimit != 4096 {
		t.Errorf("SizeLimit = %d, want 4096", got.SizeLimit)
	}
	if len(got.Instructions()) != len(p.Instructions()) {
		t.Fatalf("got %d instructions, want %d", len(got.Instructions()), len(p.Instructions()))
	}
	for i, in := range p.Instructions() {
		if !got.Instructions()[i].Equal(in) {
			t.Errorf("instruction %d = %s, want %s", i, got.Instructions()[i], in)
		}
	}

	want := p.Run()
	if res := got.Run(); !res.Equal(want) {
		t.Errorf("resumed result = %s, want %s", res, want)
	}
}

func TestSnapshot_ErrorsOnStack(t *testing.T) {
	instrs := []vm.Instruction{
		vm.Lit(vm.I64(1)), vm.Lit(vm.I64(0)), vm.Simple(vm.OpDiv),
		vm.Lit(vm.Bool(false)), vm.Simple(vm.OpOr),
	}
	p := vm.New(instrs)
	for i := 0; i < 4; i++ {
		p.Step()
	}
	data, err := MarshalProgram(p, "")
	if err != nil {
		t.Fatalf("MarshalProgram: %v", err)
	}
	got, _, err := UnmarshalProgram(data)
	if err != nil {
		t.Fatalf("UnmarshalProgram: %v", err)
	}
	stack := got.Stack()
	if len(stack) != 2 || !stack[1].Equal(vm.Fail(vm.ErrDivByZero)) {
		t.Errorf("Stack() = %v", stack)
	}
	if res := got.Run(); !res.Equal(vm.Fail(vm.ErrDivByZero)) {
		t.Errorf("Run() = %s, want Err(DivisionByZero)", res)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	p := vm.New([]vm.Instruction{vm.Lit(vm.Map{"z": vm.I64(1), "a": vm.I64(2), "m": vm.I64(3)})})
	a, err := MarshalProgram(p, "x")
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalProgram(p, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("canonical encoding differs between runs")
	}
}

func TestUnmarshalRejectsBadSnapshots(t *testing.T) {
	if _, _, err := UnmarshalProgram([]byte{0xff, 0x00}); err == nil {
		t.Error("accepted garbage bytes")
	}

	bad := &Snapshot{Version: Version, Instructions: []Instruction{{Opcode: uint8(vm.OpAdd)}}}
	data, err := MarshalSnapshot(bad)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := UnmarshalProgram(data); err == nil {
		t.Error("accepted a program that underflows the stack")
	}

	one := &Value{Kind: uint8(vm.KindI64), Int: 1}
	crafted := map[string][]Instruction{
		"huge jump": {{Opcode: uint8(vm.OpLit), Value: one}, {Opcode: uint8(vm.OpJump), N: math.MaxInt}},
		"huge list": {{Opcode: uint8(vm.OpLit), Value: one}, {Opcode: uint8(vm.OpMakeList), N: math.MaxInt}},
		"huge map":  {{Opcode: uint8(vm.OpLit), Value: one}, {Opcode: uint8(vm.OpMakeMap), N: math.MaxInt/2 + 1}},
	}
	for name, instrs := range crafted {
		data, err := MarshalSnapshot(&Snapshot{Version: Version, Instructions: instrs})
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := UnmarshalProgram(data); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}

	future := Capture(vm.New([]vm.Instruction{vm.Lit(vm.Null{})}), "")
	future.Version = Version + 1
	if _, err := future.Program(); err == nil {
		t.Error("accepted an unknown snapshot version")
	}
}
