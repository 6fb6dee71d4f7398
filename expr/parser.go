package expr

import (
	"strconv"
)

const (
	// maxNestingDepth bounds unary, parenthesis and call nesting so parsing and evaluation stay shallow
	maxNestingDepth = 1000

	// maxSourceLength bounds left-associative operator chains, which nest without recursing in the parser
	maxSourceLength = 4096
)

// Parser builds an expression tree by recursive descent
//
// Grammar, lowest precedence first:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/" | "%") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | "x" | constant | name "(" expr { "," expr } ")" | "(" expr ")"
type Parser struct {
	source    string
	lexer     *Lexer
	curToken  Token
	peekToken Token
	depth     int
}

func NewParser(input string) *Parser {
	p := &Parser{
		source: input,
		lexer:  NewLexer(input),
	}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// Parse consumes the whole input; trailing tokens are an error
func (p *Parser) Parse() (Node, error) {
	if p.curToken.Type == TokenEOF {
		return nil, unevaluable(p.source, -1, "empty expression")
	}
	if len(p.source) > maxSourceLength {
		return nil, unevaluable(p.source, maxSourceLength, "expression longer than %d bytes", maxSourceLength)
	}

	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curToken.Type != TokenEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == TokenPlus || p.curToken.Type == TokenMinus {
		op := p.curToken.Type
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == TokenStar || p.curToken.Type == TokenSlash || p.curToken.Type == TokenPercent {
		op := p.curToken.Type
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary is on every recursive path of the grammar, so it carries the depth guard
func (p *Parser) parseUnary() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return nil, unevaluable(p.source, p.curToken.Pos, "expression nested too deeply")
	}

	if p.curToken.Type == TokenPlus || p.curToken.Type == TokenMinus {
		op := p.curToken.Type
		p.nextToken()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, Operand: operand}, nil
	}
	return p.parsePower()
}

// parsePower is right-associative: 2^3^2 is 2^(3^2), and -x^2 is -(x^2)
func (p *Parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != TokenCaret {
		return base, nil
	}
	p.nextToken() // consume ^
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: TokenCaret, Left: base, Right: exp}, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	switch p.curToken.Type {
	case TokenNumber:
		tok := p.curToken
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, unevaluable(p.source, tok.Pos, "number out of range: %s", tok.Literal)
		}
		p.nextToken()
		return &Number{Value: v}, nil

	case TokenIdent:
		return p.parseIdent()

	case TokenLParen:
		p.nextToken() // consume (
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.curToken.Type != TokenRParen {
			return nil, p.expected(")")
		}
		p.nextToken() // consume )
		return inner, nil

	default:
		return nil, p.unexpected()
	}
}

// parseIdent resolves the variable first, then constants, then builtin calls
func (p *Parser) parseIdent() (Node, error) {
	tok := p.curToken
	name := tok.Literal

	if name == "x" {
		p.nextToken()
		return &Variable{}, nil
	}

	if v, ok := LookupConstant(name); ok {
		if p.peekToken.Type == TokenLParen {
			return nil, unevaluable(p.source, tok.Pos, "constant %s is not callable", name)
		}
		p.nextToken()
		return &Number{Value: v, Name: name}, nil
	}

	fn, ok := LookupBuiltin(name)
	if !ok {
		return nil, unevaluable(p.source, tok.Pos, "unknown identifier %s", name)
	}
	if p.peekToken.Type != TokenLParen {
		return nil, unevaluable(p.source, tok.Pos, "function %s requires arguments", name)
	}
	p.nextToken() // consume name
	p.nextToken() // consume (

	var args []Node
	if p.curToken.Type != TokenRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.curToken.Type != TokenComma {
				break
			}
			p.nextToken() // consume ,
		}
	}
	if p.curToken.Type != TokenRParen {
		return nil, p.expected(")")
	}
	p.nextToken() // consume )

	if len(args) != fn.Arity {
		return nil, unevaluable(p.source, tok.Pos, "%s takes %d argument(s), got %d", name, fn.Arity, len(args))
	}
	return &Call{Fn: fn, Args: args}, nil
}

func (p *Parser) unexpected() *CompileError {
	tok := p.curToken
	switch tok.Type {
	case TokenError:
		return unevaluable(p.source, tok.Pos, "%s", tok.Literal)
	case TokenEOF:
		return unevaluable(p.source, tok.Pos, "unexpected end of input")
	}
	return unevaluable(p.source, tok.Pos, "unexpected token %s", tok.String())
}

func (p *Parser) expected(what string) *CompileError {
	if p.curToken.Type == TokenError {
		return p.unexpected()
	}
	return unevaluable(p.source, p.curToken.Pos, "expected %s, got %s", what, p.curToken.String())
}
