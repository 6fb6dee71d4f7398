package expr

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func mustCompile(t *testing.T, src string) *Expression {
	t.Helper()
	e, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", src, err)
	}
	return e
}

func assertEval(t *testing.T, e *Expression, x, want float64) {
	t.Helper()
	got, err := e.Evaluate(x)
	if err != nil {
		t.Errorf("%s at x=%g: unexpected error %v", e.Source(), x, err)
		return
	}
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s at x=%g: expected %g, got %g", e.Source(), x, want, got)
	}
}

// TestCompileProbeIsFinite verifies every accepted expression evaluates finite at its probe
func TestCompileProbeIsFinite(t *testing.T) {
	sources := []string{
		"x", "x^2 - 3*x + 1", "1/x", "ln(x)", "sqrt(x - 4)", "log(x, 2)",
		"exp(x)", "abs(x) % 3", "tan(x)", "acosh(x)", "x - x", "hypot(x, 3)",
		"1/(x - 1)", "sqrt(-x - 20)",
	}
	for _, src := range sources {
		e := mustCompile(t, src)
		v, err := e.Evaluate(e.Probe())
		if err != nil {
			t.Errorf("%s: probe %g failed: %v", src, e.Probe(), err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s: probe %g produced non-finite %g", src, e.Probe(), v)
		}
	}
}

// TestCompileProbeOrder verifies the first probe is preferred and later ones are fallbacks
func TestCompileProbeOrder(t *testing.T) {
	if p := mustCompile(t, "x").Probe(); p != 1 {
		t.Errorf("Expected probe 1 for x, got %g", p)
	}
	if p := mustCompile(t, "1/(x - 1)").Probe(); p != 0 {
		t.Errorf("Expected probe 0 for 1/(x-1), got %g", p)
	}
	if p := mustCompile(t, "sqrt(-x - 20)").Probe(); p != -24 {
		t.Errorf("Expected probe -24 for sqrt(-x-20), got %g", p)
	}
}

// TestCompileConstantRejected verifies expressions without x are degenerate
func TestCompileConstantRejected(t *testing.T) {
	for _, src := range []string{"5", "pi * 2", "sin(1) + e", "TAU"} {
		_, err := Compile(src)
		if !errors.Is(err, ErrConstant) {
			t.Errorf("Compile(%q): expected ErrConstant, got %v", src, err)
		}
		if errors.Is(err, ErrUnevaluable) {
			t.Errorf("Compile(%q): constant must not also report ErrUnevaluable", src)
		}
	}
}

// TestCompileUnevaluable verifies syntax, resolution and probe failures
func TestCompileUnevaluable(t *testing.T) {
	for _, src := range []string{"x +", "", "   ", "sinx", "y + 1", "1/0", "sqrt(-1 - x^2)", "ln(-abs(x) - 1)"} {
		_, err := Compile(src)
		if !errors.Is(err, ErrUnevaluable) {
			t.Errorf("Compile(%q): expected ErrUnevaluable, got %v", src, err)
		}
	}
}

// TestCompileErrorMessages verifies the user-facing texts stay distinct
func TestCompileErrorMessages(t *testing.T) {
	_, err := Compile("5")
	if err.Error() != "expression must depend on x" {
		t.Errorf("Unexpected constant message: %q", err.Error())
	}

	_, err = Compile("x +")
	want := "unevaluable mathematical expression: unexpected end of input at offset 3"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

// TestConstantSubstitution verifies named constants, case-insensitively
func TestConstantSubstitution(t *testing.T) {
	assertEval(t, mustCompile(t, "pi * x"), 1, math.Pi)
	assertEval(t, mustCompile(t, "PI * x"), 1, math.Pi)
	assertEval(t, mustCompile(t, "tau + x"), 0, 2*math.Pi)
	assertEval(t, mustCompile(t, "SqrtTwo * x"), 1, math.Sqrt2)
	assertEval(t, mustCompile(t, "e^x"), 1, math.E)
	assertEval(t, mustCompile(t, "lntwo * x"), 2, 2*math.Ln2)
}

// TestFunctionCalls verifies builtin resolution
func TestFunctionCalls(t *testing.T) {
	sin := mustCompile(t, "sin(x)")
	assertEval(t, sin, 0, 0)
	assertEval(t, sin, math.Pi/2, 1)

	assertEval(t, mustCompile(t, "cos(x)"), 0, 1)
	assertEval(t, mustCompile(t, "ln(x)"), math.E, 1)
	assertEval(t, mustCompile(t, "log(x, 2)"), 8, 3)
	assertEval(t, mustCompile(t, "log2(x)"), 1024, 10)
	assertEval(t, mustCompile(t, "log10(x)"), 1000, 3)
	assertEval(t, mustCompile(t, "pow(x, 3)"), 2, 8)
	assertEval(t, mustCompile(t, "atan2(x, 1)"), 1, math.Pi/4)
	assertEval(t, mustCompile(t, "hypot(x, 4)"), 3, 5)
	assertEval(t, mustCompile(t, "cbrt(x)"), -27, -3)
	assertEval(t, mustCompile(t, "abs(x)"), -2.5, 2.5)
	assertEval(t, mustCompile(t, "sqrt(x)"), 16, 4)
	assertEval(t, mustCompile(t, "x % 3"), 7, 1)
}

// TestVariableInsideFunctionNames verifies exp/exp2 are not corrupted by x binding
func TestVariableInsideFunctionNames(t *testing.T) {
	assertEval(t, mustCompile(t, "exp(x)"), 1, math.E)
	assertEval(t, mustCompile(t, "exp2(x)"), 3, 8)
	assertEval(t, mustCompile(t, "x*exp(x) + exp2(x)"), 0, 1)
}

// TestEvaluateErrors verifies per-sample failures are typed, never panics
func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		kind error
		op   string
	}{
		{"1/x", 0, ErrDivisionByZero, "/"},
		{"x % (x - 2)", 2, ErrDivisionByZero, "%"},
		{"ln(x)", -1, ErrDomain, "ln"},
		{"ln(x)", 0, ErrDomain, "ln"},
		{"sqrt(x)", -4, ErrDomain, "sqrt"},
		{"acos(x)", 2, ErrDomain, "acos"},
		{"exp(x)", 1000, ErrOverflow, "exp"},
		{"x^x", 500, ErrOverflow, "^"},
	}

	for _, tc := range cases {
		e := mustCompile(t, tc.src)
		_, err := e.Evaluate(tc.x)
		if !errors.Is(err, tc.kind) {
			t.Errorf("%s at %g: expected %v, got %v", tc.src, tc.x, tc.kind, err)
			continue
		}
		var ee *EvalError
		if !errors.As(err, &ee) {
			t.Fatalf("%s: expected *EvalError, got %T", tc.src, err)
		}
		if ee.Op != tc.op || ee.X != tc.x {
			t.Errorf("%s: expected op %s x %g, got op %s x %g", tc.src, tc.op, tc.x, ee.Op, ee.X)
		}
	}
}

// TestEvaluateNonFiniteInput verifies NaN and Inf inputs are rejected up front
func TestEvaluateNonFiniteInput(t *testing.T) {
	e := mustCompile(t, "x")
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := e.Evaluate(x); !errors.Is(err, ErrDomain) {
			t.Errorf("Expected ErrDomain for x=%g, got %v", x, err)
		}
	}
}

// TestExpressionIsReusable verifies repeated evaluation does not depend on call order
func TestExpressionIsReusable(t *testing.T) {
	e := mustCompile(t, "x^2")
	f := e.Func()
	for i := 0; i < 3; i++ {
		assertEval(t, e, 3, 9)
		if v, err := f(-2); err != nil || v != 4 {
			t.Errorf("Func(-2): expected 4, got %g (%v)", v, err)
		}
	}
	if e.Source() != "x^2" {
		t.Errorf("Expected source x^2, got %q", e.Source())
	}
	if e.String() != "(x ^ 2)" {
		t.Errorf("Expected canonical (x ^ 2), got %q", e.String())
	}
}
