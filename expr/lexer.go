package expr

import (
	"fmt"
	"unicode/utf8"
)

// Lexer scans an infix expression into tokens
type Lexer struct {
	input string
	pos   int // current position in input (points to current char)
	start int // start position of this token
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token in the stream
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	l.start = l.pos

	if l.pos >= len(l.input) {
		return l.newToken(TokenEOF, "")
	}

	ch := l.input[l.pos]

	// Operators
	switch ch {
	case '+':
		return l.single(TokenPlus)
	case '-':
		return l.single(TokenMinus)
	case '*':
		return l.single(TokenStar)
	case '/':
		return l.single(TokenSlash)
	case '%':
		return l.single(TokenPercent)
	case '^':
		return l.single(TokenCaret)
	case '(':
		return l.single(TokenLParen)
	case ')':
		return l.single(TokenRParen)
	case ',':
		return l.single(TokenComma)
	}

	if isDigit(ch) || ch == '.' {
		return l.readNumber()
	}

	if isAlpha(ch) {
		return l.readIdent()
	}

	// Unknown, report the whole rune so multi-byte input reads sensibly
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	return l.newToken(TokenError, fmt.Sprintf("unexpected character: %c", r))
}

// Tokens drains the lexer, stopping after EOF or the first error token
func (l *Lexer) Tokens() []Token {
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			return toks
		}
	}
}

func (l *Lexer) newToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Pos: l.start}
}

func (l *Lexer) single(typ TokenType) Token {
	l.pos++
	return l.newToken(typ, l.input[l.start:l.pos])
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

// readNumber accepts digits with at most one '.', no exponent part
// (a trailing 'e' would collide with Euler's constant)
func (l *Lexer) readNumber() Token {
	digits := 0
	dot := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isDigit(ch) {
			digits++
		} else if ch == '.' && !dot {
			dot = true
		} else {
			break
		}
		l.pos++
	}
	lit := l.input[l.start:l.pos]
	if digits == 0 {
		return l.newToken(TokenError, fmt.Sprintf("malformed number: %s", lit))
	}
	return l.newToken(TokenNumber, lit)
}

// readIdent reads a letter followed by letters or digits (log10, atan2)
func (l *Lexer) readIdent() Token {
	for l.pos < len(l.input) && (isAlpha(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	return l.newToken(TokenIdent, l.input[l.start:l.pos])
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
