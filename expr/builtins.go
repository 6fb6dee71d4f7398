package expr

import (
	"math"
	"strings"
)

// Builtin is a callable function of the expression language
type Builtin struct {
	Name   string
	Arity  int
	unary  func(float64) float64
	binary func(a, b float64) float64
}

func (b *Builtin) call(args []float64) float64 {
	if b.Arity == 1 {
		return b.unary(args[0])
	}
	return b.binary(args[0], args[1])
}

func unaryFn(name string, fn func(float64) float64) *Builtin {
	return &Builtin{Name: name, Arity: 1, unary: fn}
}

func binaryFn(name string, fn func(a, b float64) float64) *Builtin {
	return &Builtin{Name: name, Arity: 2, binary: fn}
}

// positive maps non-positive input to NaN so log poles surface as domain errors
func positive(fn func(float64) float64) func(float64) float64 {
	return func(v float64) float64 {
		if v <= 0 {
			return math.NaN()
		}
		return fn(v)
	}
}

var builtins = map[string]*Builtin{}

func init() {
	for _, b := range []*Builtin{
		unaryFn("ln", positive(math.Log)),
		binaryFn("log", func(v, base float64) float64 {
			if v <= 0 || base <= 0 {
				return math.NaN()
			}
			return math.Log(v) / math.Log(base)
		}),
		unaryFn("log2", positive(math.Log2)),
		unaryFn("log10", positive(math.Log10)),
		unaryFn("exp", math.Exp),
		unaryFn("exp2", math.Exp2),
		binaryFn("pow", math.Pow),
		unaryFn("cos", math.Cos),
		unaryFn("acos", math.Acos),
		unaryFn("cosh", math.Cosh),
		unaryFn("acosh", math.Acosh),
		unaryFn("sin", math.Sin),
		unaryFn("asin", math.Asin),
		unaryFn("sinh", math.Sinh),
		unaryFn("asinh", math.Asinh),
		unaryFn("tan", math.Tan),
		unaryFn("atan", math.Atan),
		binaryFn("atan2", math.Atan2),
		unaryFn("tanh", math.Tanh),
		unaryFn("atanh", math.Atanh),
		unaryFn("sqrt", math.Sqrt),
		unaryFn("cbrt", math.Cbrt),
		binaryFn("hypot", math.Hypot),
		unaryFn("abs", math.Abs),
	} {
		builtins[b.Name] = b
	}
}

// Named constants, matched case-insensitively
var constants = map[string]float64{
	"pi":      math.Pi,
	"tau":     2 * math.Pi,
	"sqrttwo": math.Sqrt2,
	"e":       math.E,
	"lntwo":   math.Ln2,
}

// LookupConstant resolves a constant name regardless of case
func LookupConstant(name string) (float64, bool) {
	v, ok := constants[strings.ToLower(name)]
	return v, ok
}

// LookupBuiltin resolves a function name; function names are lower-case only
func LookupBuiltin(name string) (*Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}
