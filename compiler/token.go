package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Token types for the expression lexer
// ---------------------------------------------------------------------------

// TokenType represents the type of a token.
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenInteger    // 42, 1_000
	TokenFloat      // 3.14, 1_024.5
	TokenString     // 'hello', "hello"
	TokenBytes      // b"hello"
	TokenIdentifier // foo, Bar2

	// Operators
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %
	TokenBang    // !
	TokenEq      // ==
	TokenNeq     // !=
	TokenLt      // <
	TokenLte     // <=
	TokenGt      // >
	TokenGte     // >=
	TokenAndAnd  // &&
	TokenOrOr    // ||
	TokenAssign  // =
	TokenQuestion

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenLBrace    // {
	TokenRBrace    // }
	TokenComma     // ,
	TokenColon     // :
	TokenSemicolon // ;
	TokenPeriod    // .

	// Reserved identifiers
	TokenLet
	TokenTrue
	TokenFalse
	TokenNull
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenError:      "ERROR",
	TokenInteger:    "INTEGER",
	TokenFloat:      "FLOAT",
	TokenString:     "STRING",
	TokenBytes:      "BYTES",
	TokenIdentifier: "IDENTIFIER",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenStar:       "*",
	TokenSlash:      "/",
	TokenPercent:    "%",
	TokenBang:       "!",
	TokenEq:         "==",
	TokenNeq:        "!=",
	TokenLt:         "<",
	TokenLte:        "<=",
	TokenGt:         ">",
	TokenGte:        ">=",
	TokenAndAnd:     "&&",
	TokenOrOr:       "||",
	TokenAssign:     "=",
	TokenQuestion:   "?",
	TokenLParen:     "(",
	TokenRParen:     ")",
	TokenLBracket:   "[",
	TokenRBracket:   "]",
	TokenLBrace:     "{",
	TokenRBrace:     "}",
	TokenComma:      ",",
	TokenColon:      ":",
	TokenSemicolon:  ";",
	TokenPeriod:     ".",
	TokenLet:        "let",
	TokenTrue:       "true",
	TokenFalse:      "false",
	TokenNull:       "null",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", t)
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Literal string   // the raw text; for TokenError, the message
	Value   string   // decoded contents of string and bytes literals
	Pos     Position // start position
	End     Position // position just past the token
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	if t.Type == TokenError {
		return fmt.Sprintf("ERROR(%s)", t.Literal)
	}
	if len(t.Literal) > 20 {
		return fmt.Sprintf("%s(%q...)", t.Type, t.Literal[:20])
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

// Reserved words mapped to their token types.
var reservedWords = map[string]TokenType{
	"let":   TokenLet,
	"true":  TokenTrue,
	"false": TokenFalse,
	"null":  TokenNull,
}

// Keywords returns the reserved words, for editor completion.
func Keywords() []string {
	return []string{"false", "let", "null", "true"}
}
