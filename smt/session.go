//go:build cgo
// +build cgo

// Package smt embeds the SMT-LIB v2 command language over the z3 binding.
// A Session mirrors SMT-LIB commands one-to-one (declare-sort, declare-const,
// declare-fun, assert, push, pop, check-sat, get-model), and DefineFun adds
// the define-fun command by expanding a definition into a declaration plus a
// single defining axiom.
package smt

import (
	"errors"
	"fmt"

	z3 "github.com/smtkit/smtlib-go/z3"
)

// Session binds one context and one solver and holds the name registry for
// declared and defined functions. Declarations and assertions append to the
// solver's ordered log, so a declaration must be issued before any assertion
// that references it; every Session method preserves that order.
//
// A Session is a single logical resource. Callers using it from multiple
// goroutines must serialize access or provision one session per goroutine.
type Session struct {
	ctx    *z3.Context
	solver *z3.Solver
	decls  map[string]z3.FuncDecl
}

// NewSession creates a session with a fresh solver on the given context.
func NewSession(ctx *z3.Context) *Session {
	return &Session{
		ctx:    ctx,
		solver: ctx.NewSolver(),
		decls:  make(map[string]z3.FuncDecl),
	}
}

// Close releases the underlying solver. The context is owned by the caller
// and is left open.
func (s *Session) Close() {
	if s != nil && s.solver != nil {
		s.solver.Close()
		s.solver = nil
	}
}

// Context returns the owning context, for building terms against the
// session.
func (s *Session) Context() *z3.Context { return s.ctx }

// DeclareSort introduces an uninterpreted sort, the (declare-sort name 0)
// command. Declaring the same name twice returns the same sort.
func (s *Session) DeclareSort(name string) z3.Sort {
	return s.ctx.UninterpretedSort(name)
}

// DeclareConst introduces a constant of the given sort, the
// (declare-const name sort) command.
func (s *Session) DeclareConst(name string, sort z3.Sort) z3.AST {
	return s.ctx.Const(name, sort)
}

// DeclareFun introduces an uninterpreted function signature, the
// (declare-fun name (domain...) result) command, and registers it under its
// name. Redeclaring an identical signature is idempotent (Z3 hash-conses
// declarations). Redeclaring a name with a different signature is an error:
// collision behavior is solver-defined and is surfaced, never silently
// deduplicated or overridden.
func (s *Session) DeclareFun(name string, domain []z3.Sort, result z3.Sort) (z3.FuncDecl, error) {
	if name == "" {
		return z3.FuncDecl{}, errors.New("declare-fun: empty name")
	}
	if !result.Valid() {
		return z3.FuncDecl{}, fmt.Errorf("declare-fun %s: invalid result sort", name)
	}
	for i, d := range domain {
		if !d.Valid() {
			return z3.FuncDecl{}, fmt.Errorf("declare-fun %s: invalid sort for argument %d", name, i)
		}
	}
	decl := s.ctx.NewFuncDecl(name, domain, result)
	if err := s.ctx.Err(); err != nil {
		return z3.FuncDecl{}, fmt.Errorf("declare-fun %s: %w", name, err)
	}
	return s.register(name, decl)
}

func (s *Session) register(name string, decl z3.FuncDecl) (z3.FuncDecl, error) {
	if prev, ok := s.decls[name]; ok {
		// Identical signatures hash-cons to the same handle.
		if prev != decl {
			return z3.FuncDecl{}, fmt.Errorf("declare-fun %s: already declared with signature %s %s",
				name, prev.DomainString(), prev.Result().Name())
		}
		return prev, nil
	}
	s.decls[name] = decl
	return decl, nil
}

// FuncDecl looks up a previously declared or defined function by name.
func (s *Session) FuncDecl(name string) (z3.FuncDecl, bool) {
	d, ok := s.decls[name]
	return d, ok
}

// Apply applies a previously declared or defined function, by name, to the
// given arguments. This is how SMT-LIB scripts reference earlier definitions
// inside later bodies.
func (s *Session) Apply(name string, args ...z3.AST) (z3.AST, error) {
	d, ok := s.FuncDecl(name)
	if !ok {
		return z3.AST{}, fmt.Errorf("apply: %s is not declared", name)
	}
	a := s.ctx.App(d, args...)
	if err := s.ctx.Err(); err != nil {
		return z3.AST{}, fmt.Errorf("apply %s: %w", name, err)
	}
	return a, nil
}

// Assert appends a formula to the solver's assertion log, the (assert f)
// command. Solver-level failures (such as asserting a non-boolean term)
// propagate unchanged.
func (s *Session) Assert(formula z3.AST) error {
	return s.solver.Assert(formula)
}

// Push enters a new solver scope.
func (s *Session) Push() { s.solver.Push() }

// Pop discards n solver scopes. Assertions made inside the popped scopes are
// dropped; name registrations are not scoped (declarations live at the
// context level in Z3).
func (s *Session) Pop(n uint) { s.solver.Pop(n) }

// CheckSat runs the (check-sat) command.
func (s *Session) CheckSat() (z3.CheckResult, error) {
	return s.solver.Check()
}

// Model runs the (get-model) command. It fails if the last CheckSat did not
// produce a model.
func (s *Session) Model() (*z3.Model, error) {
	m := s.solver.Model()
	if m == nil {
		return nil, errors.New("get-model: no model available")
	}
	return m, nil
}

// SetLogic issues the (set-logic name) command.
func (s *Session) SetLogic(name string) error {
	return s.solver.AssertSMTLIB2String(fmt.Sprintf("(set-logic %s)", name))
}

// SetOption issues the (set-option :name value) command.
func (s *Session) SetOption(name string, value interface{}) error {
	return s.solver.SetOption(name, value)
}

// DeclareDatatype introduces an algebraic datatype, the (declare-datatype)
// command. Constructor, recognizer, and accessor declarations are registered
// under their names so Apply can reach them.
func (s *Session) DeclareDatatype(name string, ctors []*z3.Ctor) (z3.Sort, []z3.CtorDecls, error) {
	sort, decls := s.ctx.NewDatatype(name, ctors)
	if err := s.ctx.Err(); err != nil {
		return z3.Sort{}, nil, fmt.Errorf("declare-datatype %s: %w", name, err)
	}
	for _, d := range decls {
		if _, err := s.register(d.Constructor.Name(), d.Constructor); err != nil {
			return z3.Sort{}, nil, err
		}
		// Z3 names every recognizer declaration "is"; register under the
		// name the constructor descriptor was built with.
		if _, err := s.register(d.RecognizerName, d.Recognizer); err != nil {
			return z3.Sort{}, nil, err
		}
		for _, acc := range d.Accessors {
			if _, err := s.register(acc.Name(), acc); err != nil {
				return z3.Sort{}, nil, err
			}
		}
	}
	return sort, decls, nil
}
