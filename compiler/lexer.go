package compiler

import (
	"fmt"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Lexer: Tokenizer for expression syntax
// ---------------------------------------------------------------------------

// Lexer tokenizes expression source code.
type Lexer struct {
	input   string
	pos     int  // offset of the current character
	readPos int  // offset after the current character
	ch      rune // current character
	line    int  // line of the current character (1-based)
	col     int  // column of the current character (1-based)
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character.
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) && l.readPos > 0 {
		return // stay at EOF
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.col++
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input)
		l.readPos = len(l.input) + 1
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// position returns the current position.
func (l *Lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

// Tokenize returns every token up to and including EOF or the first error.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			return tokens
		}
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position()
	if l.atEOF() {
		return Token{Type: TokenEOF, Pos: pos, End: pos}
	}

	single := func(t TokenType) Token {
		l.readChar()
		return l.token(t, pos)
	}
	double := func(next rune, two, one TokenType) Token {
		l.readChar()
		if l.ch == next {
			l.readChar()
			return l.token(two, pos)
		}
		return l.token(one, pos)
	}

	switch ch := l.ch; {
	case ch == '(':
		return single(TokenLParen)
	case ch == ')':
		return single(TokenRParen)
	case ch == '[':
		return single(TokenLBracket)
	case ch == ']':
		return single(TokenRBracket)
	case ch == '{':
		return single(TokenLBrace)
	case ch == '}':
		return single(TokenRBrace)
	case ch == ',':
		return single(TokenComma)
	case ch == ':':
		return single(TokenColon)
	case ch == ';':
		return single(TokenSemicolon)
	case ch == '.':
		return single(TokenPeriod)
	case ch == '?':
		return single(TokenQuestion)
	case ch == '+':
		return single(TokenPlus)
	case ch == '-':
		return single(TokenMinus)
	case ch == '*':
		return single(TokenStar)
	case ch == '/':
		return single(TokenSlash)
	case ch == '%':
		return single(TokenPercent)
	case ch == '=':
		return double('=', TokenEq, TokenAssign)
	case ch == '!':
		return double('=', TokenNeq, TokenBang)
	case ch == '<':
		return double('=', TokenLte, TokenLt)
	case ch == '>':
		return double('=', TokenGte, TokenGt)
	case ch == '&' && l.peekChar() == '&':
		l.readChar()
		return single(TokenAndAnd)
	case ch == '|' && l.peekChar() == '|':
		l.readChar()
		return single(TokenOrOr)
	case ch == '"' || ch == '\'':
		return l.readString(pos, TokenString)
	case ch == 'b' && (l.peekChar() == '"' || l.peekChar() == '\''):
		l.readChar()
		return l.readString(pos, TokenBytes)
	case isDigit(ch):
		return l.readNumber(pos)
	case isLetter(ch):
		return l.readIdentifier(pos)
	}

	return l.errorToken(pos, fmt.Sprintf("unexpected character %q", l.ch))
}

func (l *Lexer) token(t TokenType, start Position) Token {
	return Token{
		Type:    t,
		Literal: l.input[start.Offset:l.pos],
		Pos:     start,
		End:     l.position(),
	}
}

func (l *Lexer) errorToken(pos Position, msg string) Token {
	return Token{Type: TokenError, Literal: msg, Pos: pos, End: pos}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads an identifier or reserved word.
func (l *Lexer) readIdentifier(pos Position) Token {
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	tok := l.token(TokenIdentifier, pos)
	if t, ok := reservedWords[tok.Literal]; ok {
		tok.Type = t
	}
	return tok
}

// readNumber reads an integer or float. Underscores may follow any digit.
// A float needs digits on both sides of the point.
func (l *Lexer) readNumber(pos Position) Token {
	l.readDigits()
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		l.readDigits()
		return l.token(TokenFloat, pos)
	}
	return l.token(TokenInteger, pos)
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
}

// readString reads a quoted string or bytes literal. The current character
// is the opening quote.
func (l *Lexer) readString(pos Position, t TokenType) Token {
	quote := l.ch
	l.readChar()

	var buf []byte
	for l.ch != quote {
		if l.atEOF() {
			return l.errorToken(pos, "unterminated string literal")
		}
		if l.ch != '\\' {
			buf = utf8.AppendRune(buf, l.ch)
			l.readChar()
			continue
		}

		escPos := l.position()
		l.readChar()
		b, r, isByte, msg := l.readEscape()
		if msg != "" {
			return l.errorToken(escPos, msg)
		}
		switch {
		case isByte && t == TokenBytes:
			buf = append(buf, b)
		case isByte:
			buf = utf8.AppendRune(buf, rune(b))
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	l.readChar()

	tok := l.token(t, pos)
	tok.Value = string(buf)
	return tok
}

// readEscape decodes the escape sequence after a backslash. It yields either
// a single byte or a code point, or an error message.
func (l *Lexer) readEscape() (b byte, r rune, isByte bool, msg string) {
	ch := l.ch
	switch ch {
	case 't':
		l.readChar()
		return '\t', 0, true, ""
	case 'n':
		l.readChar()
		return '\n', 0, true, ""
	case 'r':
		l.readChar()
		return '\r', 0, true, ""
	case '"', '\'', '\\':
		l.readChar()
		return byte(ch), 0, true, ""
	case 'x':
		l.readChar()
		v, ok := l.readRadixDigits(2, 16)
		if !ok {
			return 0, 0, false, `invalid hex escape: want \xHH`
		}
		return byte(v), 0, true, ""
	case 'u':
		l.readChar()
		v, ok := l.readRadixDigits(4, 16)
		if !ok {
			return 0, 0, false, `invalid unicode escape: want \uHHHH`
		}
		if !utf8.ValidRune(rune(v)) {
			return 0, 0, false, fmt.Sprintf(`invalid unicode escape: U+%04X is not a valid code point`, v)
		}
		return 0, rune(v), false, ""
	case '0', '1', '2', '3':
		v, ok := l.readRadixDigits(3, 8)
		if !ok {
			return 0, 0, false, `invalid octal escape: want \NNN between \000 and \377`
		}
		return byte(v), 0, true, ""
	case '4', '5', '6', '7', '8', '9':
		return 0, 0, false, `invalid octal escape: want \NNN between \000 and \377`
	}
	return 0, 0, false, fmt.Sprintf("invalid escape sequence \\%c", ch)
}

// readRadixDigits consumes exactly n digits in the given base.
func (l *Lexer) readRadixDigits(n int, base int) (int, bool) {
	v := 0
	for i := 0; i < n; i++ {
		d := digitValue(l.ch)
		if d < 0 || d >= base || l.atEOF() {
			return 0, false
		}
		v = v*base + d
		l.readChar()
	}
	return v, true
}

func digitValue(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
