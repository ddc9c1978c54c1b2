//go:build !cgo
// +build !cgo

// Package z3 is the foreign-function bridge to the Z3 theorem prover.
// This stub lets the package type-check without cgo available. Install Z3
// and enable cgo to use the real binding.
package z3

import "errors"

var errNoCgo = errors.New("z3: cgo support is required")

// Placeholder types for documentation-only builds (no functionality).

type Context struct{}

type Config struct{}

type Sort struct{}

type AST struct{}

type FuncDecl struct{}

type Solver struct{}

type Model struct{}

type Ctor struct{}

type DatatypeField struct {
	Name string
	Sort Sort
}

type CtorDecls struct {
	Constructor    FuncDecl
	Recognizer     FuncDecl
	RecognizerName string
	Accessors      []FuncDecl
}

type CheckResult int

const (
	Unknown CheckResult = iota
	Sat
	Unsat
)

func (r CheckResult) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

func (ctx *Context) Err() error { return errNoCgo }

func (s Sort) Valid() bool     { return false }
func (a AST) Valid() bool      { return false }
func (d FuncDecl) Valid() bool { return false }

func (s Sort) Name() string     { return "" }
func (s Sort) String() string   { return "" }
func (a AST) String() string    { return "<no-cgo>" }
func (d FuncDecl) Name() string { return "" }
func (d FuncDecl) Arity() int   { return 0 }
