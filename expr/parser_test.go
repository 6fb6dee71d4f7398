package expr

import (
	"errors"
	"strings"
	"testing"
)

// TestParserPrecedence verifies operator precedence through the canonical form
func TestParserPrecedence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1 + 2 * x", "(1 + (2 * x))"},
		{"(1 + 2) * x", "((1 + 2) * x)"},
		{"x - 1 - 2", "((x - 1) - 2)"},
		{"-x^2", "(-(x ^ 2))"},
		{"2^3^x", "(2 ^ (3 ^ x))"},
		{"2^-x", "(2 ^ (-x))"},
		{"x % 3 / 2", "((x % 3) / 2)"},
		{"PI*x", "(PI * x)"},
		{"atan2(x, 1) + +x", "(atan2(x, 1) + (+x))"},
	}

	for _, tc := range cases {
		n, err := NewParser(tc.in).Parse()
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.in, err)
			continue
		}
		if got := n.String(); got != tc.want {
			t.Errorf("Parse(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

// TestParserRejects verifies malformed input surfaces as ErrUnevaluable with a position
func TestParserRejects(t *testing.T) {
	cases := []struct {
		in  string
		pos int
	}{
		{"", -1},
		{"x +", 3},
		{"(x", 2},
		{"x)", 1},
		{"sin x", 0},
		{"sin(x, 2)", 0},
		{"pow(x)", 0},
		{"foo(x)", 0},
		{"pi(2)", 0},
		{"SIN(x)", 0},
		{"2x", 1},
		{"x $ 2", 2},
		{"x,1", 1},
	}

	for _, tc := range cases {
		_, err := NewParser(tc.in).Parse()
		if err == nil {
			t.Errorf("Parse(%q): expected error", tc.in)
			continue
		}
		if !errors.Is(err, ErrUnevaluable) {
			t.Errorf("Parse(%q): expected ErrUnevaluable, got %v", tc.in, err)
		}
		var ce *CompileError
		if !errors.As(err, &ce) {
			t.Fatalf("Parse(%q): expected *CompileError, got %T", tc.in, err)
		}
		if ce.Pos != tc.pos {
			t.Errorf("Parse(%q): expected offset %d, got %d (%v)", tc.in, tc.pos, ce.Pos, err)
		}
	}
}

// TestParserEmptyCallArguments verifies zero-argument calls are rejected on arity
func TestParserEmptyCallArguments(t *testing.T) {
	_, err := NewParser("sqrt()").Parse()
	if !errors.Is(err, ErrUnevaluable) {
		t.Errorf("Expected ErrUnevaluable for sqrt(), got %v", err)
	}
}

// TestParserNestingLimit verifies deep nesting is rejected instead of exhausting the stack
func TestParserNestingLimit(t *testing.T) {
	deep := []string{
		strings.Repeat("-", 20_000_000) + "x",
		strings.Repeat("(", 1500) + "x" + strings.Repeat(")", 1500),
		strings.Repeat("-(", 600) + "x" + strings.Repeat(")", 600),
		strings.Repeat("x^", 1500) + "x",
	}
	for _, in := range deep {
		_, err := Compile(in)
		if !errors.Is(err, ErrUnevaluable) {
			t.Errorf("Expected ErrUnevaluable for %d-byte nested input, got %v", len(in), err)
		}
	}

	var ce *CompileError
	_, err := NewParser(strings.Repeat("(", 1500) + "x" + strings.Repeat(")", 1500)).Parse()
	if !errors.As(err, &ce) || ce.Reason != "expression nested too deeply" {
		t.Errorf("Expected nesting reason, got %v", err)
	}

	shallow := strings.Repeat("(", 400) + "x" + strings.Repeat(")", 400)
	if _, err := Compile(shallow); err != nil {
		t.Errorf("Expected 400 levels to compile, got %v", err)
	}
}

// TestParserLengthLimit verifies long operator chains are rejected before building a deep tree
func TestParserLengthLimit(t *testing.T) {
	long := "x" + strings.Repeat("+x", 1_000_000)
	_, err := Compile(long)

	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(err, ErrUnevaluable) {
		t.Fatalf("Expected CompileError wrapping ErrUnevaluable, got %v", err)
	}
	if ce.Pos != maxSourceLength {
		t.Errorf("Expected position %d, got %d", maxSourceLength, ce.Pos)
	}

	if _, err := Compile("x" + strings.Repeat("+x", 1000)); err != nil {
		t.Errorf("Expected 2001-byte chain to compile, got %v", err)
	}
}
