//go:build cgo
// +build cgo

package smt

import (
	z3 "github.com/smtkit/smtlib-go/z3"
)

// Definition expansion: the (define-fun name ((p sort)...) result body)
// command. A definition is not inlined at call sites; it is expanded once
// into an uninterpreted signature declaration plus a single universally
// quantified defining equation,
//
//	(declare-fun f (S1 ... Sn) R)
//	(assert (forall ((p1 S1) ... (pn Sn)) (= (f p1 ... pn) body)))
//
// or, for a zero-parameter definition, a plain equality with no quantifier.
// Inline substitution duplicates subexpressions multiplicatively when
// definitions nest, so expanded terms grow exponentially with nesting depth;
// the quantified axiom keeps total expansion size linear in the number of
// definitions and leaves instantiation to Z3's macro-finder/MBQI machinery,
// which recognizes definitional quantifiers of exactly this shape.

// Param is one (name sort) pair in a definition's parameter list.
type Param struct {
	Name string
	Sort z3.Sort
}

// Definition describes a named, parameterized symbolic function. Body is
// invoked exactly once with the parameter terms in declared order; it plays
// the role SMT-LIB gives to a body expression with the parameter names free.
type Definition struct {
	Name   string
	Params []Param
	Result z3.Sort
	Body   func(args ...z3.AST) z3.AST
}

// Expansion is the result of expanding one definition: always exactly a
// signature declaration and one defining axiom, regardless of parameter
// count.
type Expansion struct {
	Decl  z3.FuncDecl
	Axiom z3.AST
}

// Expand turns a definition into its expansion. It is a pure syntax-to-
// syntax transformation: it builds terms against the context but never
// touches a solver, performs no I/O, and holds no state across calls, so
// expanding the same definition twice yields syntactically identical output.
//
// Structural validation happens first; a malformed definition is rejected
// with a *DefinitionError before any term is constructed. Semantic problems
// (body sort mismatching the declared result, undeclared symbols in the
// body) are not checked here and surface later from the solver.
func Expand(ctx *z3.Context, def Definition) (Expansion, error) {
	if err := checkShape(def); err != nil {
		return Expansion{}, err
	}

	// Dispatch on the shape of the parameter list, empty case first.
	if len(def.Params) == 0 {
		// A zero-parameter body denotes a constant: a zero-arity
		// quantifier would be vacuous, so the axiom is the plain
		// equality between the nullary application and the body.
		decl := ctx.NewFuncDecl(def.Name, nil, def.Result)
		axiom := z3.Eq(ctx.App(decl), def.Body())
		return Expansion{Decl: decl, Axiom: axiom}, nil
	}

	domain := make([]z3.Sort, len(def.Params))
	bound := make([]z3.AST, len(def.Params))
	for i, p := range def.Params {
		domain[i] = p.Sort
		bound[i] = ctx.Const(p.Name, p.Sort)
	}
	decl := ctx.NewFuncDecl(def.Name, domain, def.Result)
	eq := z3.Eq(ctx.App(decl, bound...), def.Body(bound...))
	axiom := z3.Forall(bound, eq)
	return Expansion{Decl: decl, Axiom: axiom}, nil
}

// checkShape rejects definition forms that fit neither the zero-parameter
// nor the n-parameter shape.
func checkShape(def Definition) error {
	if def.Name == "" {
		return &DefinitionError{Reason: "empty name"}
	}
	if !def.Result.Valid() {
		return &DefinitionError{Name: def.Name, Reason: "missing result sort"}
	}
	if def.Body == nil {
		return &DefinitionError{Name: def.Name, Reason: "missing body"}
	}
	seen := make(map[string]struct{}, len(def.Params))
	for i, p := range def.Params {
		if p.Name == "" {
			return &DefinitionError{Name: def.Name, Reason: paramReason(i, "missing name")}
		}
		if !p.Sort.Valid() {
			return &DefinitionError{Name: def.Name, Reason: paramReason(i, "missing sort for "+p.Name)}
		}
		if _, dup := seen[p.Name]; dup {
			return &DefinitionError{Name: def.Name, Reason: paramReason(i, "duplicate name "+p.Name)}
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// DefineFun runs the (define-fun ...) command: it expands the definition and
// issues exactly two primitive commands, the signature declaration followed
// by the axiom assertion. Errors from either primitive propagate unchanged,
// with no retry and no rollback: if the declaration succeeds and the
// assertion then fails, the declaration remains in the session.
//
// The declared FuncDecl is returned so later definition bodies can apply it;
// it is also registered under the definition name for Apply.
//
// The defining axiom is written for Z3's macro finder, which eliminates
// quantifiers of exactly this shape before search. The finder is off by
// default; sessions that check definitions should enable it with
// SetOption("smt.macro_finder", true), or MBQI may diverge on the axioms.
func (s *Session) DefineFun(def Definition) (z3.FuncDecl, error) {
	exp, err := Expand(s.ctx, def)
	if err != nil {
		return z3.FuncDecl{}, err
	}
	if err := s.ctx.Err(); err != nil {
		return z3.FuncDecl{}, &DefinitionError{Name: def.Name, Reason: err.Error()}
	}
	decl, err := s.register(def.Name, exp.Decl)
	if err != nil {
		return z3.FuncDecl{}, err
	}
	if err := s.Assert(exp.Axiom); err != nil {
		return z3.FuncDecl{}, err
	}
	return decl, nil
}
