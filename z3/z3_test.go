//go:build cgo
// +build cgo

package z3

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	t.Cleanup(ctx.Close)
	return ctx
}

func TestIntArithmeticAndModel(t *testing.T) {
	ctx := newTestContext(t)

	x := ctx.Const("x", ctx.IntSort())
	y := ctx.Const("y", ctx.IntSort())

	s := ctx.NewSolver()
	defer s.Close()

	for _, f := range []AST{
		Ge(x, ctx.IntVal(0)),
		Ge(y, ctx.IntVal(0)),
		Gt(Add(x, y), ctx.IntVal(5)),
	} {
		if err := s.Assert(f); err != nil {
			t.Fatalf("assert: %v", err)
		}
	}

	res, err := s.Check()
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if res != Sat {
		t.Fatalf("expected sat, got %v", res)
	}

	m := s.Model()
	if m == nil {
		t.Fatalf("no model")
	}
	defer m.Close()

	xv, ok := m.Eval(x, true).AsInt64()
	if !ok {
		t.Fatalf("model eval of x is not an int")
	}
	yv, ok := m.Eval(y, true).AsInt64()
	if !ok {
		t.Fatalf("model eval of y is not an int")
	}
	if xv+yv <= 5 {
		t.Fatalf("model violates x+y>5: x=%d y=%d", xv, yv)
	}
}

func TestAssertNonBoolSurfacesError(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()

	if err := s.Assert(ctx.IntVal(1)); err == nil {
		t.Fatalf("expected error asserting a non-boolean term")
	}
}

func TestStringsContains(t *testing.T) {
	ctx := newTestContext(t)

	s1 := ctx.Const("s1", ctx.StringSort())
	s2 := ctx.Const("s2", ctx.StringSort())

	s := ctx.NewSolver()
	defer s.Close()

	if err := s.Assert(Contains(Concat(s1, ctx.StringVal("abc"), s2), ctx.StringVal("b"))); err != nil {
		t.Fatalf("assert: %v", err)
	}
	res, err := s.Check()
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if res != Sat {
		t.Fatalf("expected sat, got %v", res)
	}
}

func TestUninterpretedSort(t *testing.T) {
	ctx := newTestContext(t)

	u := ctx.UninterpretedSort("Color")
	if !u.Valid() {
		t.Fatalf("invalid uninterpreted sort")
	}
	if u.Name() != "Color" {
		t.Fatalf("expected sort name Color, got %q", u.Name())
	}
	if again := ctx.UninterpretedSort("Color"); again != u {
		t.Fatalf("expected the same sort handle on redeclare")
	}
	if got, ok := ctx.SortByName("Color"); !ok || got != u {
		t.Fatalf("SortByName did not rediscover Color")
	}

	a := ctx.Const("a", u)
	b := ctx.Const("b", u)
	s := ctx.NewSolver()
	defer s.Close()
	if err := s.Assert(Distinct(a, b)); err != nil {
		t.Fatalf("assert: %v", err)
	}
	res, err := s.Check()
	if err != nil || res != Sat {
		t.Fatalf("expected sat, got %v err %v", res, err)
	}
}

func TestDatatypeOptionInt(t *testing.T) {
	ctx := newTestContext(t)

	someCtor := ctx.NewCtor("Some", "is-Some", []DatatypeField{{Name: "val", Sort: ctx.IntSort()}})
	noneCtor := ctx.NewCtor("None", "is-None", nil)
	optSort, decls := ctx.NewDatatype("OptionInt", []*Ctor{someCtor, noneCtor})

	some := decls[0]
	none := decls[1]

	o := ctx.Const("o", optSort)

	s := ctx.NewSolver()
	defer s.Close()
	if err := s.Assert(Eq(o, ctx.App(some.Constructor, ctx.IntVal(10)))); err != nil {
		t.Fatalf("assert: %v", err)
	}

	if res, err := s.Check(); err != nil || res != Sat {
		t.Fatalf("expected sat, got %v err %v", res, err)
	}
	m := s.Model()
	if m == nil {
		t.Fatalf("no model")
	}
	defer m.Close()

	if b := m.Eval(ctx.App(some.Recognizer, o), true); b.String() != "true" {
		t.Fatalf("expected is-Some(o) true, got %s", b.String())
	}
	if b := m.Eval(ctx.App(none.Recognizer, o), true); b.String() != "false" {
		t.Fatalf("expected is-None(o) false, got %s", b.String())
	}
	if len(some.Accessors) != 1 {
		t.Fatalf("expected 1 accessor")
	}
	if v := m.Eval(ctx.App(some.Accessors[0], o), true); v.NumeralString() != "10" {
		t.Fatalf("expected value 10, got %s", v.NumeralString())
	}
}

func TestSMTLIB2FromString(t *testing.T) {
	ctx := newTestContext(t)

	s := ctx.NewSolver()
	defer s.Close()

	smt := `
	(set-logic ALL)
	(declare-fun x () Int)
	(declare-fun y () Int)
	(assert (>= x 0))
	(assert (>= y 0))
	(assert (> (+ x y) 5))
	`

	if err := s.AssertSMTLIB2String(smt); err != nil {
		t.Fatalf("parse/assert smtlib2 string: %v", err)
	}
	res, err := s.Check()
	if err != nil || res != Sat {
		t.Fatalf("expected sat, got %v err %v", res, err)
	}

	// Declarations from the script are recorded by name.
	if _, ok := ctx.FuncDeclByName("x"); !ok {
		t.Fatalf("declaration of x was not recorded")
	}
}

func TestSMTLIB2FromFile(t *testing.T) {
	ctx := newTestContext(t)

	s := ctx.NewSolver()
	defer s.Close()

	path := filepath.Join(t.TempDir(), "example.smt2")
	content := `
	(set-logic QF_ALIA)
	(declare-fun a () (Array Int Int))
	(declare-fun i () Int)
	(assert (>= i 0))
	(assert (= (select a i) 42))
	`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write smt2: %v", err)
	}

	res, err := s.SolveSMTLIB2File(path)
	if err != nil || res != Sat {
		t.Fatalf("expected sat, got %v err %v", res, err)
	}
}

func TestSetOptionScopedToSolver(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()

	if err := s.SetOption("smt.macro_finder", true); err != nil {
		t.Fatalf("SetOption bool: %v", err)
	}
	if err := s.SetOption("smt.random_seed", 17); err != nil {
		t.Fatalf("SetOption uint: %v", err)
	}
	// CLI-style textual values coerce to the parameter kind they spell.
	if err := s.SetOption("smt.mbqi", "false"); err != nil {
		t.Fatalf("SetOption textual bool: %v", err)
	}
	if err := s.SetOption("not.a.real.parameter", true); err == nil {
		t.Fatalf("expected error for unknown parameter")
	}

	// Options are solver-local: a later context starts from Z3 defaults
	// and keeps working.
	ctx2 := newTestContext(t)
	s2 := ctx2.NewSolver()
	defer s2.Close()
	x := ctx2.Const("x", ctx2.IntSort())
	if err := s2.Assert(Eq(x, ctx2.IntVal(1))); err != nil {
		t.Fatalf("assert: %v", err)
	}
	if res, err := s2.Check(); err != nil || res != Sat {
		t.Fatalf("expected sat, got %v err %v", res, err)
	}
}

func TestPopBeyondScopes(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()

	s.Push()
	if n := s.NumScopes(); n != 1 {
		t.Fatalf("expected 1 scope, got %d", n)
	}

	// Z3 rejects the pop through the context error code; the scope stack
	// is untouched and no panic occurs.
	s.Pop(2)
	if err := ctx.Err(); err == nil {
		t.Fatalf("expected error popping beyond scope depth")
	}
	if n := s.NumScopes(); n != 1 {
		t.Fatalf("rejected pop changed scope depth to %d", n)
	}

	s.Pop(1)
	if n := s.NumScopes(); n != 0 {
		t.Fatalf("expected 0 scopes, got %d", n)
	}
}

func TestSMTLIB2ParseError(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()

	if err := s.AssertSMTLIB2String("(assert (= x"); err == nil {
		t.Fatalf("expected parse error for truncated script")
	}
}
