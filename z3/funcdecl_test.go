//go:build cgo
// +build cgo

package z3

import "testing"

func TestFuncDeclSignature(t *testing.T) {
	ctx := newTestContext(t)
	intS := ctx.IntSort()
	boolS := ctx.BoolSort()

	f := ctx.NewFuncDecl("f", []Sort{intS, boolS}, intS)
	if !f.Valid() {
		t.Fatalf("invalid func decl")
	}
	if f.Name() != "f" {
		t.Fatalf("expected name f, got %q", f.Name())
	}
	if f.Arity() != 2 {
		t.Fatalf("expected arity 2, got %d", f.Arity())
	}
	if f.Domain(0) != intS || f.Domain(1) != boolS {
		t.Fatalf("domain sorts out of order: %s", f.DomainString())
	}
	if f.Result() != intS {
		t.Fatalf("expected Int result, got %s", f.Result().Name())
	}
	if f.Kind() != DeclOpUninterpreted {
		t.Fatalf("expected uninterpreted decl, got %v", f.Kind())
	}

	// Identical signatures hash-cons to the same handle.
	if g := ctx.NewFuncDecl("f", []Sort{intS, boolS}, intS); g != f {
		t.Fatalf("expected hash-consed decl on identical signature")
	}
}

func TestNullaryFuncDecl(t *testing.T) {
	ctx := newTestContext(t)

	c := ctx.NewFuncDecl("c", nil, ctx.IntSort())
	if c.Arity() != 0 {
		t.Fatalf("expected arity 0, got %d", c.Arity())
	}
	app := ctx.App(c)
	if !app.IsApp() || app.NumChildren() != 0 {
		t.Fatalf("nullary application malformed: %s", app.String())
	}
	if app.Decl().Name() != "c" {
		t.Fatalf("expected application of c, got %s", app.Decl().Name())
	}
}

func TestForallAccessors(t *testing.T) {
	ctx := newTestContext(t)
	intS := ctx.IntSort()

	x := ctx.Const("x", intS)
	y := ctx.Const("y", intS)
	f := ctx.NewFuncDecl("f", []Sort{intS, intS}, intS)

	ax := Forall([]AST{x, y}, Eq(f.Apply(x, y), Add(x, y)))

	if !ax.IsQuantifier() || !ax.IsForall() {
		t.Fatalf("expected a forall, got kind %v", ax.Kind())
	}
	if n := ax.NumBound(); n != 2 {
		t.Fatalf("expected 2 bound vars, got %d", n)
	}
	if ax.BoundName(0) != "x" || ax.BoundName(1) != "y" {
		t.Fatalf("bound names out of order: %s %s", ax.BoundName(0), ax.BoundName(1))
	}
	if ax.BoundSort(0) != intS || ax.BoundSort(1) != intS {
		t.Fatalf("unexpected bound sorts")
	}
	body := ax.QuantifierBody()
	if !body.IsApp() || body.Decl().Kind() != DeclOpEq {
		t.Fatalf("expected equality body, got %s", body.String())
	}

	ex := Exists([]AST{x}, Gt(x, ctx.IntVal(0)))
	if !ex.IsQuantifier() || ex.IsForall() {
		t.Fatalf("expected an exists, got %s", ex.String())
	}
}

func TestForallDefiningEquation(t *testing.T) {
	ctx := newTestContext(t)
	intS := ctx.IntSort()

	s := ctx.NewSolver()
	defer s.Close()
	if err := s.SetOption("smt.macro_finder", true); err != nil {
		t.Fatalf("SetOption: %v", err)
	}

	succ := ctx.NewFuncDecl("succ", []Sort{intS}, intS)
	x := ctx.Const("x", intS)
	ax := Forall([]AST{x}, Eq(succ.Apply(x), Add(x, ctx.IntVal(1))))
	if err := s.Assert(ax); err != nil {
		t.Fatalf("assert axiom: %v", err)
	}

	if err := s.Assert(Eq(succ.Apply(ctx.IntVal(2)), ctx.IntVal(3))); err != nil {
		t.Fatalf("assert: %v", err)
	}
	res, err := s.Check()
	if err != nil || res != Sat {
		t.Fatalf("expected sat, got %v err %v", res, err)
	}

	s.Push()
	if err := s.Assert(Eq(succ.Apply(ctx.IntVal(2)), ctx.IntVal(4))); err != nil {
		t.Fatalf("assert: %v", err)
	}
	res, err = s.Check()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res != Unsat {
		t.Fatalf("expected unsat, got %v", res)
	}
	s.Pop(1)
}
