package compiler

import (
	"math"
	"testing"

	"github.com/chazu/celstep/vm"
)

func eval(t *testing.T, input string) vm.Result {
	t.Helper()
	p, err := CompileSource(input)
	if err != nil {
		t.Fatalf("CompileSource(%q): %v", input, err)
	}
	return p.Run()
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  vm.Result
	}{
		{" 1 + 2 ", vm.Ok(vm.I64(3))},
		{" 3 - 2 ", vm.Ok(vm.I64(1))},
		{" 2 * 3 ", vm.Ok(vm.I64(6))},
		{" 6 / 3 ", vm.Ok(vm.I64(2))},
		{" 7 % 3 ", vm.Ok(vm.I64(1))},
		{" 7.0 % 3.4 ", vm.Ok(vm.F64(math.Mod(7.0, 3.4)))},
		{" -7 / 2 ", vm.Ok(vm.I64(-3))},
		{" 22 * (4 + 15) ", vm.Ok(vm.I64(418))},
		{" 1.5 + 1 ", vm.Fail(vm.ErrTypesForOperator(vm.KindF64, vm.KindI64, vm.OperatorPlus))},
		{" true || false ", vm.Ok(vm.Bool(true))},
		{` false || "asdf" || false `, vm.Fail(vm.ErrTypesForOperator(vm.KindBool, vm.KindString, vm.OperatorOr))},
		{" 0 || false || 2 || true || 4 || false || 6 || 7 ", vm.Ok(vm.Bool(true))},
		{" 1 / 0 || true ", vm.Ok(vm.Bool(true))},
		{" 1 / 0 && false ", vm.Ok(vm.Bool(false))},
		{" true && 1 / 0 ", vm.Fail(vm.ErrDivByZero)},
		{` 1 + 1 == 2 ? "okay" : "nope" `, vm.Ok(vm.Str("okay"))},
		{` 1 + 1 == 3 ? "okay" : "nope" `, vm.Ok(vm.Str("nope"))},
		{" 1 ? 2 : 3 ", vm.Fail(vm.ErrTypeForOperator(vm.KindI64, vm.OperatorJump))},
		{" 1 / 0 ? 2 : 3 ", vm.Fail(vm.ErrDivByZero)},
		{" false ? 1 : true ? 2 : 3 ", vm.Ok(vm.I64(2))},
		{" [1, 2 + 3] ", vm.Ok(vm.List{vm.I64(1), vm.I64(5)})},
		{" [1, 1 / 0] ", vm.Fail(vm.ErrDivByZero)},
		{` {'a': 1, "b": [true]} `, vm.Ok(vm.Map{"a": vm.I64(1), "b": vm.List{vm.Bool(true)}})},
		{` {'a': 1, 'a': 2} `, vm.Fail(vm.ErrDuplicateKey("a"))},
		{` {1: 2} `, vm.Fail(vm.ErrMapKey(vm.KindI64))},
		{`{'a': 'a'}['a']`, vm.Ok(vm.Str("a"))},
		{`{'a': 'a'}['b']`, vm.Fail(vm.ErrNoMember("b"))},
		{`{'a': {'b': 3}}.a.b`, vm.Ok(vm.I64(3))},
		{`{'a': 1}.c`, vm.Fail(vm.ErrNoMember("c"))},
		{`[1].a`, vm.Fail(vm.ErrTypesForOperator(vm.KindList, vm.KindString, vm.OperatorMember))},
		{" 1 < 2 ", vm.Ok(vm.Bool(true))},
		{" 2 <= 1 ", vm.Ok(vm.Bool(false))},
		{" 3 >= 3 ", vm.Ok(vm.Bool(true))},
		{" 1 > 2 ", vm.Ok(vm.Bool(false))},
		{" 1.0 < 2.0 ", vm.Fail(vm.ErrTypesForOperator(vm.KindF64, vm.KindF64, vm.OperatorLt))},
		{" 1 != 2 ", vm.Ok(vm.Bool(true))},
		{" [1, 'a'] == [1, 'a'] ", vm.Ok(vm.Bool(true))},
		{" 1 == 1.0 ", vm.Ok(vm.Bool(false))},
		{" null == null ", vm.Ok(vm.Bool(true))},
		{" -(1 + 2) ", vm.Ok(vm.I64(-3))},
		{" !(1 < 2) ", vm.Ok(vm.Bool(false))},
		{" !1 ", vm.Fail(vm.ErrTypeForOperator(vm.KindI64, vm.OperatorNot))},
		{` b"\x01" == b"\x01" `, vm.Ok(vm.Bool(true))},
		{" 9999999999999999999999999.0 ", vm.Ok(vm.F64(1e25))},
		{" let x = 42; x ", vm.Fail(vm.ErrAbort)},
		{" 1 + x ", vm.Fail(vm.ErrAbort)},
		{" [1, 2, 3].len() ", vm.Fail(vm.ErrAbort)},
		{` evaluate("SQL", {}) `, vm.Fail(vm.ErrAbort)},
		{" true ? 1 : x ", vm.Ok(vm.I64(1))},
		{" false ? 1 : x ", vm.Fail(vm.ErrAbort)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := eval(t, tt.input); !got.Equal(tt.want) {
				t.Errorf("eval(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRunTwiceIsDeterministic(t *testing.T) {
	inputs := []string{
		"[1, {'a': b\"\\xff\"}, 2.5, null]",
		"0 || false || 2 || true",
		"{'a': [1, 2]}['a'] == [1, 2]",
	}
	for _, input := range inputs {
		p, err := CompileSource(input)
		if err != nil {
			t.Fatal(err)
		}
		first := p.Run()
		p.Reset()
		second := p.Run()
		if !first.Equal(second) {
			t.Errorf("%q: second run = %s, first = %s", input, second, first)
		}
		if again := Compile(mustParse(t, input)).Run(); !again.Equal(first) {
			t.Errorf("%q: recompiled run = %s, first = %s", input, again, first)
		}
	}
}

func TestStepThroughTernary(t *testing.T) {
	p, err := CompileSource("true ? 1 : 2")
	if err != nil {
		t.Fatal(err)
	}
	var pointers []int
	for p.Step() {
		pointers = append(pointers, p.Pointer())
	}
	pointers = append(pointers, p.Pointer())
	want := []int{1, 5, 6, 7}
	if len(pointers) != len(want) {
		t.Fatalf("pointers = %v, want %v", pointers, want)
	}
	for i := range want {
		if pointers[i] != want[i] {
			t.Errorf("pointers = %v, want %v", pointers, want)
			break
		}
	}
}

func TestEvalHelper(t *testing.T) {
	r, err := Eval("1 + 1")
	if err != nil || !r.Equal(vm.Ok(vm.I64(2))) {
		t.Errorf("Eval(1 + 1) = %s, %v", r, err)
	}
	if _, err := Eval("1 +"); err == nil {
		t.Error("Eval(1 +) succeeded")
	}
}

func mustParse(t *testing.T, input string) Expr {
	t.Helper()
	e, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	return e
}
