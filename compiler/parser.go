package compiler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/celstep/vm"
)

// ---------------------------------------------------------------------------
// Parser: Recursive descent precedence parser
// ---------------------------------------------------------------------------

// DefaultMaxDepth bounds expression nesting when no explicit limit is set.
const DefaultMaxDepth = 512

// Parser parses expression source code into an AST. It stops at the first
// error.
type Parser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
	prevEnd   Position // end of the last consumed token
	err       *ParseError
	depth     int

	// MaxDepth bounds expression nesting, including operator chains.
	MaxDepth int
}

// NewParser creates a new parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{
		lexer:    NewLexer(input),
		MaxDepth: DefaultMaxDepth,
	}
	// Read two tokens to fill curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a complete program: zero or more let bindings followed by a
// body expression.
func Parse(input string) (Expr, error) {
	return NewParser(input).Parse()
}

// ParseWithDepth is Parse with an explicit nesting limit.
func ParseWithDepth(input string, maxDepth int) (Expr, error) {
	p := NewParser(input)
	if maxDepth > 0 {
		p.MaxDepth = maxDepth
	}
	return p.Parse()
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.prevEnd = p.curToken.End
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// curTokenIs checks if the current token is of the given type.
func (p *Parser) curTokenIs(t TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs checks if the peek token is of the given type.
func (p *Parser) peekTokenIs(t TokenType) bool {
	return p.peekToken.Type == t
}

// expect advances if the current token matches, otherwise records an error.
func (p *Parser) expect(t TokenType) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.unexpected(fmt.Sprintf("expected %s", t))
	return false
}

// unexpected records a syntax error at the current token.
func (p *Parser) unexpected(context string) {
	tok := p.curToken
	if tok.Type == TokenError {
		p.fail(&ParseError{Kind: ParseErrorSyntax, Pos: tok.Pos, End: tok.End, Detail: tok.Literal})
		return
	}
	p.fail(&ParseError{
		Kind:   ParseErrorSyntax,
		Pos:    tok.Pos,
		End:    tok.End,
		Detail: fmt.Sprintf("%s, got %s", context, tok),
	})
}

// fail records the first error.
func (p *Parser) fail(err *ParseError) {
	if p.err == nil {
		p.err = err
	}
}

// Err returns the first parse error, or nil.
func (p *Parser) Err() *ParseError {
	return p.err
}

// enter increments the nesting depth and reports whether it is within the
// limit.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.MaxDepth {
		p.fail(&ParseError{
			Kind:   ParseErrorSyntax,
			Pos:    p.curToken.Pos,
			End:    p.curToken.End,
			Detail: "expression nested too deeply",
		})
		return false
	}
	return true
}

func (p *Parser) span(start Position) Span {
	return Span{Start: start, End: p.prevEnd}
}

// ---------------------------------------------------------------------------
// Top-level parsing
// ---------------------------------------------------------------------------

type binding struct {
	start Position
	name  vm.Identifier
	value Expr
}

// Parse parses the whole input.
func (p *Parser) Parse() (Expr, error) {
	expr := p.parseTopLevel()
	if p.err != nil {
		return nil, p.err
	}
	return expr, nil
}

func (p *Parser) parseTopLevel() Expr {
	var bindings []binding
	for p.curTokenIs(TokenLet) {
		start := p.curToken.Pos
		p.nextToken()
		if !p.curTokenIs(TokenIdentifier) {
			p.unexpected("expected identifier after let")
			return nil
		}
		name := vm.Identifier(p.curToken.Literal)
		p.nextToken()
		if !p.expect(TokenAssign) {
			return nil
		}
		value := p.ParseExpression()
		if value == nil || !p.expect(TokenSemicolon) {
			return nil
		}
		bindings = append(bindings, binding{start: start, name: name, value: value})
	}

	body := p.ParseExpression()
	if body == nil {
		return nil
	}
	if !p.curTokenIs(TokenEOF) {
		p.unexpected("expected end of input")
		return nil
	}

	// Later bindings nest inside earlier ones so the body sees all of them.
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		body = &LetBinding{
			SpanVal: Span{Start: b.start, End: body.Span().End},
			Name:    b.name,
			Value:   b.value,
			Body:    body,
		}
	}
	return body
}

// ParseExpression parses a ternary-level expression.
func (p *Parser) ParseExpression() Expr {
	if !p.enter() {
		return nil
	}
	defer func() { p.depth-- }()

	start := p.curToken.Pos
	cond := p.parseDisjunction()
	if cond == nil || !p.curTokenIs(TokenQuestion) {
		return cond
	}
	p.nextToken()

	then := p.ParseExpression()
	if then == nil || !p.expect(TokenColon) {
		return nil
	}
	els := p.ParseExpression()
	if els == nil {
		return nil
	}
	return &Ternary{SpanVal: p.span(start), Condition: cond, Then: then, Else: els}
}

// parseDisjunction parses a || b || ...; a single operand is returned as is.
func (p *Parser) parseDisjunction() Expr {
	start := p.curToken.Pos
	first := p.parseConjunction()
	if first == nil || !p.curTokenIs(TokenOrOr) {
		return first
	}
	operands := []Expr{first}
	for p.curTokenIs(TokenOrOr) {
		p.nextToken()
		next := p.parseConjunction()
		if next == nil {
			return nil
		}
		operands = append(operands, next)
	}
	return &Or{SpanVal: p.span(start), Operands: operands}
}

// parseConjunction parses a && b && ...; a single operand is returned as is.
func (p *Parser) parseConjunction() Expr {
	start := p.curToken.Pos
	first := p.parseRelation()
	if first == nil || !p.curTokenIs(TokenAndAnd) {
		return first
	}
	operands := []Expr{first}
	for p.curTokenIs(TokenAndAnd) {
		p.nextToken()
		next := p.parseRelation()
		if next == nil {
			return nil
		}
		operands = append(operands, next)
	}
	return &And{SpanVal: p.span(start), Operands: operands}
}

var relationOps = map[TokenType]BinaryOp{
	TokenEq:  BinaryEq,
	TokenNeq: BinaryNeq,
	TokenLt:  BinaryLt,
	TokenLte: BinaryLte,
	TokenGte: BinaryGte,
	TokenGt:  BinaryGt,
}

// parseRelation parses at most one comparison; relations do not chain.
func (p *Parser) parseRelation() Expr {
	start := p.curToken.Pos
	left := p.parseAddition()
	if left == nil {
		return nil
	}
	op, ok := relationOps[p.curToken.Type]
	if !ok {
		return left
	}
	p.nextToken()
	right := p.parseAddition()
	if right == nil {
		return nil
	}
	return &Binary{SpanVal: p.span(start), Operator: op, Left: left, Right: right}
}

var additionOps = map[TokenType]BinaryOp{
	TokenPlus:  BinaryAdd,
	TokenMinus: BinarySub,
}

var multiplicationOps = map[TokenType]BinaryOp{
	TokenStar:    BinaryMul,
	TokenSlash:   BinaryDiv,
	TokenPercent: BinaryMod,
}

func (p *Parser) parseAddition() Expr {
	return p.parseLeftAssoc(additionOps, p.parseMultiplication)
}

func (p *Parser) parseMultiplication() Expr {
	return p.parseLeftAssoc(multiplicationOps, p.parseUnary)
}

// parseLeftAssoc parses operands joined left to right by any of ops. Each
// link of the chain counts toward the nesting depth.
func (p *Parser) parseLeftAssoc(ops map[TokenType]BinaryOp, operand func() Expr) Expr {
	start := p.curToken.Pos
	left := operand()
	if left == nil {
		return nil
	}
	links := 0
	defer func() { p.depth -= links }()
	for {
		op, ok := ops[p.curToken.Type]
		if !ok {
			return left
		}
		links++
		if !p.enter() {
			return nil
		}
		p.nextToken()
		right := operand()
		if right == nil {
			return nil
		}
		left = &Binary{SpanVal: p.span(start), Operator: op, Left: left, Right: right}
	}
}

// parseUnary parses prefix - and !, then a member chain.
func (p *Parser) parseUnary() Expr {
	var op UnaryOp
	switch {
	case p.curTokenIs(TokenMinus):
		op = UnaryNeg
	case p.curTokenIs(TokenBang):
		op = UnaryNot
	default:
		return p.parseMemberChain()
	}

	if !p.enter() {
		return nil
	}
	defer func() { p.depth-- }()

	start := p.curToken.Pos
	p.nextToken()
	operand := p.parseUnary()
	if operand == nil {
		return nil
	}
	return &Unary{SpanVal: p.span(start), Operator: op, Operand: operand}
}

// parseMemberChain parses an operand followed by .name, .name(args) and
// [index] suffixes.
func (p *Parser) parseMemberChain() Expr {
	start := p.curToken.Pos
	expr := p.parseOperand()
	if expr == nil {
		return nil
	}
	links := 0
	defer func() { p.depth -= links }()
	for p.curTokenIs(TokenPeriod) || p.curTokenIs(TokenLBracket) {
		links++
		if !p.enter() {
			return nil
		}

		if p.curTokenIs(TokenLBracket) {
			p.nextToken()
			index := p.ParseExpression()
			if index == nil || !p.expect(TokenRBracket) {
				return nil
			}
			expr = &Method{SpanVal: p.span(start), Receiver: expr, Name: "get", Args: []Expr{index}}
			continue
		}

		p.nextToken()
		if !p.curTokenIs(TokenIdentifier) {
			p.unexpected("expected member name after .")
			return nil
		}
		name := vm.Identifier(p.curToken.Literal)
		p.nextToken()
		if !p.curTokenIs(TokenLParen) {
			expr = &Member{SpanVal: p.span(start), Operand: expr, Name: name}
			continue
		}
		args, ok := p.parseDelimited(TokenLParen, TokenRParen)
		if !ok {
			return nil
		}
		expr = &Method{SpanVal: p.span(start), Receiver: expr, Name: name, Args: args}
	}
	return expr
}

// ---------------------------------------------------------------------------
// Operands and literals
// ---------------------------------------------------------------------------

func (p *Parser) parseOperand() Expr {
	tok := p.curToken
	switch tok.Type {
	case TokenInteger:
		return p.parseInteger()
	case TokenFloat:
		return p.parseFloat()
	case TokenString:
		p.nextToken()
		return &StringLiteral{SpanVal: p.span(tok.Pos), Value: tok.Value}
	case TokenBytes:
		p.nextToken()
		return &BytesLiteral{SpanVal: p.span(tok.Pos), Value: []byte(tok.Value)}
	case TokenTrue, TokenFalse:
		p.nextToken()
		return &BoolLiteral{SpanVal: p.span(tok.Pos), Value: tok.Type == TokenTrue}
	case TokenNull:
		p.nextToken()
		return &NullLiteral{SpanVal: p.span(tok.Pos)}
	case TokenLBracket:
		elems, ok := p.parseDelimited(TokenLBracket, TokenRBracket)
		if !ok {
			return nil
		}
		return &ListLiteral{SpanVal: p.span(tok.Pos), Elements: elems}
	case TokenLBrace:
		return p.parseMap()
	case TokenIdentifier:
		name := vm.Identifier(tok.Literal)
		if p.peekTokenIs(TokenLParen) {
			p.nextToken()
			args, ok := p.parseDelimited(TokenLParen, TokenRParen)
			if !ok {
				return nil
			}
			return &FunctionCall{SpanVal: p.span(tok.Pos), Name: name, Args: args}
		}
		p.nextToken()
		return &Binding{SpanVal: p.span(tok.Pos), Name: name}
	case TokenLParen:
		p.nextToken()
		inner := p.ParseExpression()
		if inner == nil || !p.expect(TokenRParen) {
			return nil
		}
		return inner
	}
	p.unexpected("expected expression")
	return nil
}

// parseDelimited parses open expr, expr, ... close with an optional
// trailing comma.
func (p *Parser) parseDelimited(open, closing TokenType) ([]Expr, bool) {
	if !p.expect(open) {
		return nil, false
	}
	var exprs []Expr
	for !p.curTokenIs(closing) {
		e := p.ParseExpression()
		if e == nil {
			return nil, false
		}
		exprs = append(exprs, e)
		if !p.curTokenIs(TokenComma) {
			break
		}
		p.nextToken()
	}
	if !p.expect(closing) {
		return nil, false
	}
	return exprs, true
}

func (p *Parser) parseMap() Expr {
	start := p.curToken.Pos
	p.nextToken() // {
	var entries []MapEntry
	for !p.curTokenIs(TokenRBrace) {
		key := p.ParseExpression()
		if key == nil || !p.expect(TokenColon) {
			return nil
		}
		value := p.ParseExpression()
		if value == nil {
			return nil
		}
		entries = append(entries, MapEntry{Key: key, Value: value})
		if !p.curTokenIs(TokenComma) {
			break
		}
		p.nextToken()
	}
	if !p.expect(TokenRBrace) {
		return nil
	}
	return &MapLiteral{SpanVal: p.span(start), Entries: entries}
}

// parseInteger converts a decimal literal. Underscores are ignored;
// out-of-range values are an error naming the literal.
func (p *Parser) parseInteger() Expr {
	tok := p.curToken
	p.nextToken()
	v, err := strconv.ParseInt(strings.ReplaceAll(tok.Literal, "_", ""), 10, 64)
	if err != nil {
		p.fail(&ParseError{
			Kind:   ParseErrorIllegalInt,
			Pos:    tok.Pos,
			End:    tok.End,
			Detail: fmt.Sprintf("%s: %v", tok.Literal, numErrCause(err)),
		})
		return nil
	}
	return &IntLiteral{SpanVal: p.span(tok.Pos), Value: v}
}

// parseFloat converts a float literal. Values beyond the float64 range
// saturate to the largest finite value of the same sign.
func (p *Parser) parseFloat() Expr {
	tok := p.curToken
	p.nextToken()
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Literal, "_", ""), 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			p.fail(&ParseError{
				Kind:   ParseErrorIllegalFloat,
				Pos:    tok.Pos,
				End:    tok.End,
				Detail: fmt.Sprintf("%s: %v", tok.Literal, numErrCause(err)),
			})
			return nil
		}
		switch {
		case math.IsInf(v, 1):
			v = math.MaxFloat64
		case math.IsInf(v, -1):
			v = -math.MaxFloat64
		}
	}
	return &FloatLiteral{SpanVal: p.span(tok.Pos), Value: v}
}

func numErrCause(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
