package expr

import (
	"math"
)

// probeValues are tried in order at compile time; the first finite result
// proves the tree evaluates somewhere in the field
var probeValues = []float64{1, 0, -1, 2.5, -2.5, 10, -10, 24, -24}

// Expression is a compiled, immutable formula in the single variable x
type Expression struct {
	source string
	root   Node
	probe  float64
}

// Compile parses raw into an expression tree and validates it
// Errors are *CompileError with Kind ErrUnevaluable or ErrConstant
func Compile(raw string) (*Expression, error) {
	root, err := NewParser(raw).Parse()
	if err != nil {
		return nil, err
	}

	probe, ok := findProbe(root)
	if !ok {
		return nil, unevaluable(raw, -1, "no finite value at any probe point")
	}

	// Lexical dependency check: x - x passes, pi * 2 does not
	if !HasVariable(root) {
		return nil, &CompileError{Kind: ErrConstant, Source: raw, Pos: -1}
	}

	return &Expression{source: raw, root: root, probe: probe}, nil
}

func findProbe(root Node) (float64, bool) {
	for _, x := range probeValues {
		if _, err := root.Eval(x); err == nil {
			return x, true
		}
	}
	return 0, false
}

// Evaluate returns f(x); failures are *EvalError and mean the sample does not exist
func (e *Expression) Evaluate(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &EvalError{Kind: ErrDomain, Op: "x", X: x}
	}
	return e.root.Eval(x)
}

// Func adapts the expression to a plain function value
func (e *Expression) Func() func(float64) (float64, error) {
	return e.Evaluate
}

// Source returns the text the expression was compiled from
func (e *Expression) Source() string { return e.source }

// Probe returns the x value that evaluated finite during compilation
func (e *Expression) Probe() float64 { return e.probe }

// Root exposes the compiled tree
func (e *Expression) Root() Node { return e.root }

// String returns the canonical fully parenthesised form
func (e *Expression) String() string { return e.root.String() }
