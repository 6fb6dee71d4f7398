package expr

import (
	"errors"
	"fmt"
)

// Compile-time error kinds
var (
	ErrUnevaluable = errors.New("unevaluable mathematical expression")
	ErrConstant    = errors.New("expression must depend on x")
)

// Evaluation error kinds
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("argument outside function domain")
	ErrOverflow       = errors.New("result overflows float64")
)

// CompileError rejects a whole expression; Kind is ErrUnevaluable or ErrConstant
type CompileError struct {
	Kind   error
	Source string
	Pos    int    // byte offset of the offending token, -1 when not tied to one
	Reason string // detail for logs, empty for ErrConstant
}

func (e *CompileError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	if e.Pos < 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%v: %s at offset %d", e.Kind, e.Reason, e.Pos)
}

func (e *CompileError) Unwrap() error { return e.Kind }

// EvalError reports a single sample that has no real value
type EvalError struct {
	Kind error
	Op   string // operator or function that produced the failure
	X    float64
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at x=%g: %v", e.Op, e.X, e.Kind)
}

func (e *EvalError) Unwrap() error { return e.Kind }

func unevaluable(src string, pos int, format string, args ...any) *CompileError {
	return &CompileError{
		Kind:   ErrUnevaluable,
		Source: src,
		Pos:    pos,
		Reason: fmt.Sprintf(format, args...),
	}
}
