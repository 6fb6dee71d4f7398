package expr

import (
	"math"
	"strconv"
	"strings"
)

// Node is an expression tree node evaluated by direct tree walk
type Node interface {
	Eval(x float64) (float64, error)
	String() string
}

// Number is a literal or a resolved named constant
type Number struct {
	Value float64
	Name  string // constant name as typed, empty for literals
}

// Variable is the single free variable x
type Variable struct{}

// Unary applies a sign to its operand
type Unary struct {
	Op      TokenType // TokenPlus or TokenMinus
	Operand Node
}

// Binary applies an arithmetic operator
type Binary struct {
	Op          TokenType
	Left, Right Node
}

// Call invokes a builtin with already arity-checked arguments
type Call struct {
	Fn   *Builtin
	Args []Node
}

func (n *Number) Eval(float64) (float64, error) { return n.Value, nil }

func (n *Number) String() string {
	if n.Name != "" {
		return n.Name
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (*Variable) Eval(x float64) (float64, error) { return x, nil }

func (*Variable) String() string { return "x" }

func (n *Unary) Eval(x float64) (float64, error) {
	v, err := n.Operand.Eval(x)
	if err != nil {
		return 0, err
	}
	if n.Op == TokenMinus {
		return -v, nil
	}
	return v, nil
}

func (n *Unary) String() string {
	return "(" + opSymbol(n.Op) + n.Operand.String() + ")"
}

func (n *Binary) Eval(x float64) (float64, error) {
	l, err := n.Left.Eval(x)
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Eval(x)
	if err != nil {
		return 0, err
	}

	var v float64
	switch n.Op {
	case TokenPlus:
		v = l + r
	case TokenMinus:
		v = l - r
	case TokenStar:
		v = l * r
	case TokenSlash:
		if r == 0 {
			return 0, &EvalError{Kind: ErrDivisionByZero, Op: "/", X: x}
		}
		v = l / r
	case TokenPercent:
		if r == 0 {
			return 0, &EvalError{Kind: ErrDivisionByZero, Op: "%", X: x}
		}
		v = math.Mod(l, r)
	case TokenCaret:
		v = math.Pow(l, r)
	}
	return checkResult(v, opSymbol(n.Op), x)
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + opSymbol(n.Op) + " " + n.Right.String() + ")"
}

func (n *Call) Eval(x float64) (float64, error) {
	args := make([]float64, len(n.Args))
	for i, a := range n.Args {
		v, err := a.Eval(x)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return checkResult(n.Fn.call(args), n.Fn.Name, x)
}

func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Fn.Name + "(" + strings.Join(parts, ", ") + ")"
}

// checkResult classifies non-finite results; operands are finite at this point
func checkResult(v float64, op string, x float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, &EvalError{Kind: ErrDomain, Op: op, X: x}
	}
	if math.IsInf(v, 0) {
		return 0, &EvalError{Kind: ErrOverflow, Op: op, X: x}
	}
	return v, nil
}

// HasVariable reports whether x occurs anywhere in the tree
func HasVariable(n Node) bool {
	switch n := n.(type) {
	case *Variable:
		return true
	case *Unary:
		return HasVariable(n.Operand)
	case *Binary:
		return HasVariable(n.Left) || HasVariable(n.Right)
	case *Call:
		for _, a := range n.Args {
			if HasVariable(a) {
				return true
			}
		}
	}
	return false
}

func opSymbol(t TokenType) string {
	switch t {
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenPercent:
		return "%"
	case TokenCaret:
		return "^"
	}
	return "?"
}
