package compiler

import (
	"testing"

	"github.com/chazu/celstep/vm"
)

var fuzzSeeds = []string{
	`( ) [ ] { } , : ; . ? + - * / % ! == != < <= > >= && || =`,
	`42`, `0`, `1_000_000`, `3.1415926`, `1_024__.1_4_1_5_____`, `3.`, `.5`,
	`"asdf"`, `'asdf'`, `'¢'`, `"\377"`, `"\xFF"`, `"ÿ"`, `b"\xff"`, `"\400"`, `"open`,
	`true`, `false`, `null`, `let x = 1; x`,
	`22 * (4 + 15)`,
	`0 || false || 2 || true`,
	`1 / 0 && false`,
	`1 + 1 == 2 ? "okay" : "nope"`,
	`a ? b : c ? d : e`,
	`[1, [2, [3]], {'a': b"x"}]`,
	`{'a': 'a'}['a']`,
	`{'a': {'b': 1}}.a.b`,
	`evaluate("SQL", {}).len()`,
	`-!-x`,
	`1 < 2 < 3`,
	`9999999999999999999999999`,
}

// ---------------------------------------------------------------------------
// FuzzParse: the lexer and parser never panic, and every accepted tree
// formats without panicking.
// ---------------------------------------------------------------------------

func FuzzParse(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		Tokenize(input)
		e, err := Parse(input)
		if err != nil {
			if _, ok := err.(*ParseError); !ok {
				t.Fatalf("Parse(%q) returned %T, want *ParseError", input, err)
			}
			return
		}
		Format(e)
		NodeAt(e, len(input)/2)
	})
}

// ---------------------------------------------------------------------------
// FuzzRunInvariant: every accepted expression linearizes to a verifiable
// program that runs to exactly one result.
// ---------------------------------------------------------------------------

func FuzzRunInvariant(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		e, err := Parse(input)
		if err != nil {
			return
		}
		code := Linearize(e)
		if err := vm.Verify(code); err != nil {
			t.Fatalf("Verify(%q): %v", input, err)
		}
		for i, in := range code {
			if in.Opcode.IsJump() && in.N < 0 {
				t.Fatalf("%q: backward jump at %d", input, i)
			}
		}
		p := vm.New(code)
		first := p.Run()
		p.Reset()
		if second := p.Run(); !first.Equal(second) {
			t.Fatalf("%q: rerun = %s, first = %s", input, second, first)
		}
	})
}
