package compiler

import (
	"testing"

	"github.com/chazu/celstep/vm"
)

func linearize(t *testing.T, input string) []vm.Instruction {
	t.Helper()
	e, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return Linearize(e)
}

func assertInstructions(t *testing.T, input string, want ...vm.Instruction) {
	t.Helper()
	got := linearize(t, input)
	if len(got) != len(want) {
		t.Fatalf("Linearize(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Linearize(%q)[%d] = %s, want %s", input, i, got[i], want[i])
		}
	}
	if err := vm.Verify(got); err != nil {
		t.Errorf("Verify(Linearize(%q)): %v", input, err)
	}
}

func TestLinearizeTernary(t *testing.T) {
	assertInstructions(t, "true ? 1 : 2",
		vm.Lit(vm.Bool(true)),
		vm.JumpIf(3),
		vm.JumpError(4),
		vm.Lit(vm.I64(2)),
		vm.Jump(1),
		vm.Lit(vm.I64(1)),
		vm.Simple(vm.OpTernary),
	)
}

func TestLinearizeOr(t *testing.T) {
	assertInstructions(t, "0 || 1 || 2 || 3",
		vm.Lit(vm.I64(0)),
		vm.JumpIf(2),
		vm.Lit(vm.I64(1)),
		vm.Simple(vm.OpOr),
		vm.JumpIf(2),
		vm.Lit(vm.I64(2)),
		vm.Simple(vm.OpOr),
		vm.JumpIf(2),
		vm.Lit(vm.I64(3)),
		vm.Simple(vm.OpOr),
	)
}

func TestLinearizeAnd(t *testing.T) {
	assertInstructions(t, "a && 1 + 2",
		vm.Simple(vm.OpAbort),
		vm.JumpIfNot(4),
		vm.Lit(vm.I64(1)),
		vm.Lit(vm.I64(2)),
		vm.Simple(vm.OpAdd),
		vm.Simple(vm.OpAnd),
	)
}

func TestLinearizeCollections(t *testing.T) {
	assertInstructions(t, "[]", vm.MakeList(0))
	assertInstructions(t, "[1, 2 + 3]",
		vm.Lit(vm.I64(1)),
		vm.Lit(vm.I64(2)),
		vm.Lit(vm.I64(3)),
		vm.Simple(vm.OpAdd),
		vm.MakeList(2),
	)
	assertInstructions(t, "{'a': 1}",
		vm.Lit(vm.Str("a")),
		vm.Lit(vm.I64(1)),
		vm.MakeMap(1),
	)
}

func TestLinearizeNeq(t *testing.T) {
	assertInstructions(t, "1 != 2",
		vm.Lit(vm.I64(1)),
		vm.Lit(vm.I64(2)),
		vm.Simple(vm.OpEq),
		vm.Simple(vm.OpNot),
	)
}

func TestLinearizeAccess(t *testing.T) {
	assertInstructions(t, "{}.foo",
		vm.MakeMap(0),
		vm.Lit(vm.Str("foo")),
		vm.Member("foo"),
	)
	assertInstructions(t, "{}['a']",
		vm.MakeMap(0),
		vm.Lit(vm.Str("a")),
		vm.Member("get"),
	)
	assertInstructions(t, "{}.get('a')",
		vm.MakeMap(0),
		vm.Lit(vm.Str("a")),
		vm.Member("get"),
	)
}

func TestLinearizeUnsupported(t *testing.T) {
	for _, input := range []string{
		"x",
		"let x = 1; x",
		"len([])",
		"[1].len()",
		"{}.get(1, 2)",
	} {
		assertInstructions(t, input, vm.Simple(vm.OpAbort))
	}
}

func TestLinearizeHasNoBackwardJumps(t *testing.T) {
	src := `(a || 1 < 2) && !(x ? [1, {'k': 2 % 3}] : b"x" == b"y") || (true ? false : 1 / 0)`
	for i, in := range linearize(t, src) {
		if in.Opcode.IsJump() && in.N < 0 {
			t.Errorf("instruction %d jumps backward: %s", i, in)
		}
	}
}
