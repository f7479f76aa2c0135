// Package expr parses and evaluates the restricted arithmetic expressions
// used in visualization parameters. The grammar covers numeric literals,
// the plot variables x, y, t, u and v, the operators + - * / ^, unary
// minus, parentheses, and a closed set of named functions and constants
// in either bare (sin, PI) or qualified (Math.sin, Math.PI) notation.
// Nothing outside that set parses, so untrusted model output can never
// reach host code through an expression string.
package expr

import (
	"fmt"
	"math"
)

// Node is an immutable parsed expression tree. Nodes are shared freely
// once built; nothing mutates them after Parse returns.
type Node interface {
	node()
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

// Var references one of the reserved plot variables.
type Var struct {
	Name string
}

// Const is a named mathematical constant, PI or E.
type Const struct {
	Name string
}

// Unary is a negation.
type Unary struct {
	X Node
}

// Binary is an infix operation. Op is one of + - * / ^.
type Binary struct {
	Op byte
	X  Node
	Y  Node
}

// Call applies one of the whitelisted functions.
type Call struct {
	Fn   string
	Args []Node
}

func (*Num) node()    {}
func (*Var) node()    {}
func (*Const) node()  {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}

// funcArity lists every callable name with its argument count. The set is
// closed: the parser rejects any other name.
var funcArity = map[string]int{
	"sin":  1,
	"cos":  1,
	"tan":  1,
	"asin": 1,
	"acos": 1,
	"atan": 1,
	"exp":  1,
	"log":  1,
	"sqrt": 1,
	"abs":  1,
	"pow":  2,
	"min":  2,
	"max":  2,
}

var constValue = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

// varNames holds the plot variables the grammar recognizes: x and y for
// cartesian forms, t for parametric curves, u and v for surfaces.
var varNames = map[string]bool{
	"x": true,
	"y": true,
	"t": true,
	"u": true,
	"v": true,
}

// KnownVariable reports whether name is one of the plot variables.
func KnownVariable(name string) bool {
	return varNames[name]
}

// ErrorKind classifies why an expression failed to parse.
type ErrorKind string

const (
	KindSyntax            ErrorKind = "SyntaxError"
	KindUnknownIdentifier ErrorKind = "UnknownIdentifier"
)

// EvalError reports a structural problem in an expression string: unbalanced
// parentheses, trailing garbage, or a name outside the closed whitelist.
// Evaluation itself never fails; IEEE Inf and NaN are ordinary outputs.
type EvalError struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Kind, e.Pos, e.Msg)
}

func syntaxErr(pos int, format string, args ...any) *EvalError {
	return &EvalError{Kind: KindSyntax, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func unknownErr(pos int, name string) *EvalError {
	return &EvalError{Kind: KindUnknownIdentifier, Pos: pos, Msg: fmt.Sprintf("unknown identifier %q", name)}
}
