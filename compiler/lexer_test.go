package compiler

import (
	"testing"
)

func TestLexerBasicTokens(t *testing.T) {
	input := `( ) [ ] { } , : ; . ? + - * / % ! == != < <= > >= && || =`
	expected := []struct {
		typ TokenType
		lit string
	}{
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBracket, "["},
		{TokenRBracket, "]"},
		{TokenLBrace, "{"},
		{TokenRBrace, "}"},
		{TokenComma, ","},
		{TokenColon, ":"},
		{TokenSemicolon, ";"},
		{TokenPeriod, "."},
		{TokenQuestion, "?"},
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenPercent, "%"},
		{TokenBang, "!"},
		{TokenEq, "=="},
		{TokenNeq, "!="},
		{TokenLt, "<"},
		{TokenLte, "<="},
		{TokenGt, ">"},
		{TokenGte, ">="},
		{TokenAndAnd, "&&"},
		{TokenOrOr, "||"},
		{TokenAssign, "="},
		{TokenEOF, ""},
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Errorf("token[%d] type = %v, want %v", i, tok.Type, exp.typ)
		}
		if tok.Literal != exp.lit {
			t.Errorf("token[%d] literal = %q, want %q", i, tok.Literal, exp.lit)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		want  string
	}{
		{"42", TokenInteger, "42"},
		{"0", TokenInteger, "0"},
		{"1_000_000", TokenInteger, "1_000_000"},
		{"3.1415926", TokenFloat, "3.1415926"},
		{"1_024__.1_4_1_5_____", TokenFloat, "1_024__.1_4_1_5_____"},
		{"42.pow", TokenInteger, "42"},
		{"3.", TokenInteger, "3"},
		{"3._0", TokenInteger, "3"},
	}

	for _, tc := range tests {
		tok := NewLexer(tc.input).NextToken()
		if tok.Type != tc.typ {
			t.Errorf("Lexer(%q): type = %v, want %v", tc.input, tok.Type, tc.typ)
		}
		if tok.Literal != tc.want {
			t.Errorf("Lexer(%q): literal = %q, want %q", tc.input, tok.Literal, tc.want)
		}
	}
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"foo", TokenIdentifier},
		{"Foo_bar2", TokenIdentifier},
		{"let", TokenLet},
		{"true", TokenTrue},
		{"false", TokenFalse},
		{"null", TokenNull},
		{"lets", TokenIdentifier},
		{"b", TokenIdentifier},
	}
	for _, tc := range tests {
		tok := NewLexer(tc.input).NextToken()
		if tok.Type != tc.typ {
			t.Errorf("Lexer(%q): type = %v, want %v", tc.input, tok.Type, tc.typ)
		}
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		want  string
	}{
		{`"asdf"`, TokenString, "asdf"},
		{`'asdf'`, TokenString, "asdf"},
		{`'¢'`, TokenString, "¢"},
		{`"as\"df"`, TokenString, `as"df`},
		{`'it\'s'`, TokenString, "it's"},
		{`"a\tb\nc\\"`, TokenString, "a\tb\nc\\"},
		{`"\000"`, TokenString, "\u0000"},
		{`"\007"`, TokenString, "\u0007"},
		{`"\377"`, TokenString, "ÿ"},
		{`"\x00"`, TokenString, "\u0000"},
		{`"\xFF"`, TokenString, "ÿ"},
		{`"\u0000"`, TokenString, "\u0000"},
		{`"\u00FF"`, TokenString, "\u00ff"},
		{`"\uFF00"`, TokenString, "\uff00"},
		{`"\uFFFF"`, TokenString, "\uffff"},
		{`b"asdf"`, TokenBytes, "asdf"},
		{`b"\xFF\377"`, TokenBytes, "\xff\xff"},
		{`b"ÿ"`, TokenBytes, "\xc3\xbf"},
	}
	for _, tc := range tests {
		tok := NewLexer(tc.input).NextToken()
		if tok.Type != tc.typ {
			t.Errorf("Lexer(%s): type = %v (%s), want %v", tc.input, tok.Type, tok.Literal, tc.typ)
			continue
		}
		if tok.Value != tc.want {
			t.Errorf("Lexer(%s): value = %q, want %q", tc.input, tok.Value, tc.want)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []string{
		`"\0"`, `"\7"`, `"\07"`, `"\77"`, `"\8"`, `"\378"`, `"\400"`,
		`"\x1"`, `"\xZZ"`, `"\u12"`, `"\uD800"`, `"\q"`,
		`"unterminated`, `'also`,
		`#`, `&`, `|`, `@`,
	}
	for _, input := range tests {
		tokens := Tokenize(input)
		last := tokens[len(tokens)-1]
		if last.Type != TokenError {
			t.Errorf("Tokenize(%s) = %v, want an error token", input, tokens)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := Tokenize("1 +\n  foo")
	want := []Position{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 6, Line: 2, Column: 3},
		{Offset: 9, Line: 2, Column: 6},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Pos != want[i] {
			t.Errorf("token[%d] %s at %+v, want %+v", i, tok, tok.Pos, want[i])
		}
	}
	if end := tokens[2].End; end.Offset != 9 || end.Column != 6 {
		t.Errorf("identifier end = %+v, want offset 9 column 6", end)
	}
}
