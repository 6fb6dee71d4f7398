package expr

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF

	// Literals
	TokenNumber // 12, 1.5, .5
	TokenIdent  // x, pi, sin, log10

	// Operators and Delimiters
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %
	TokenCaret   // ^
	TokenLParen  // (
	TokenRParen  // )
	TokenComma   // ,
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the source
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenError:
		return fmt.Sprintf("Error(%s)", t.Literal)
	}
	if len(t.Literal) > 20 {
		return fmt.Sprintf("%q...", t.Literal[:20])
	}
	return fmt.Sprintf("%q", t.Literal)
}
