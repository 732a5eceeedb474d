package compiler

import "fmt"

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	// ParseErrorSyntax is a grammar failure at a position.
	ParseErrorSyntax ParseErrorKind = iota
	// ParseErrorIllegalInt is an integer literal that does not fit in 64 bits.
	ParseErrorIllegalInt
	// ParseErrorIllegalFloat is a float literal that cannot be converted.
	ParseErrorIllegalFloat
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorIllegalInt:
		return "illegal integer"
	case ParseErrorIllegalFloat:
		return "illegal float"
	}
	return "parse error"
}

// ParseError is returned by Parse. Pos is the start of the offending input
// and End, when known, the position just past it.
type ParseError struct {
	Kind   ParseErrorKind
	Pos    Position
	End    Position
	Detail string
}

// Error renders a one-line message, e.g. "parse error @ L1:5: expected ),
// got EOF" or "illegal integer: 99999999999999999999: value out of range".
func (e *ParseError) Error() string {
	if e.Kind != ParseErrorSyntax {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	if e.Detail == "" {
		return fmt.Sprintf("parse error @ %s", e.Pos)
	}
	return fmt.Sprintf("parse error @ %s: %s", e.Pos, e.Detail)
}

// Span returns the source range the error refers to.
func (e *ParseError) Span() Span {
	end := e.End
	if end.Offset < e.Pos.Offset {
		end = e.Pos
	}
	return Span{Start: e.Pos, End: end}
}
