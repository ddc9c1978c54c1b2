//go:build cgo
// +build cgo

package z3

import "testing"

func TestASTTraversalFromSMTLIB(t *testing.T) {
	ctx := newTestContext(t)

	const script = `
(set-logic QF_LIA)
(declare-const x Int)
(declare-const y Int)
(assert (= (+ x 3) y))
(assert (= y 10))
`

	asts, err := ctx.ParseSMTLIB2String(script)
	if err != nil {
		t.Fatalf("ParseSMTLIB2String error: %v", err)
	}
	if len(asts) == 0 {
		t.Fatalf("expected parsed ASTs, got none")
	}

	var eq AST
	for _, node := range asts {
		if node.Kind() != ASTKindApp || node.Decl().Kind() != DeclOpEq {
			continue
		}
		if left := node.Child(0); left.IsApp() && left.Decl().Kind() == DeclOpAdd {
			eq = node
			break
		}
	}
	if !eq.Valid() {
		t.Fatalf("failed to locate (= (+ x 3) y) in parsed script")
	}

	left := eq.Child(0)
	children := left.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 addition operands, got %d", len(children))
	}
	if v, ok := children[1].AsInt64(); !ok || v != 3 {
		t.Fatalf("expected numeral 3, got %s", children[1].String())
	}
	if children[0].Decl().Name() != "x" {
		t.Fatalf("expected constant x, got %s", children[0].String())
	}

	// Walk visits every node exactly once per occurrence.
	if n := eq.NodeCount(); n != 5 {
		t.Fatalf("expected 5 nodes in (= (+ x 3) y), got %d", n)
	}
}

func TestWalkDescendsQuantifiers(t *testing.T) {
	ctx := newTestContext(t)
	intS := ctx.IntSort()

	x := ctx.Const("x", intS)
	f := ctx.NewFuncDecl("f", []Sort{intS}, intS)
	ax := Forall([]AST{x}, Eq(f.Apply(x), x))

	sawEq := false
	ax.Walk(func(node AST) bool {
		if node.IsApp() && node.Decl().Kind() == DeclOpEq {
			sawEq = true
		}
		return true
	})
	if !sawEq {
		t.Fatalf("walk did not reach the quantifier body")
	}
}

func TestBoolAndStringLiterals(t *testing.T) {
	ctx := newTestContext(t)

	if v, ok := ctx.BoolVal(true).BoolValue(); !ok || !v {
		t.Fatalf("expected true literal")
	}
	if s, ok := ctx.StringVal("abc").AsStringLiteral(); !ok || s != "abc" {
		t.Fatalf("expected string literal abc, got %q", s)
	}
	if _, ok := ctx.IntVal(7).AsStringLiteral(); ok {
		t.Fatalf("numeral must not read as string literal")
	}
	if v, ok := ctx.IntVal(7).AsInt64(); !ok || v != 7 {
		t.Fatalf("expected numeral 7")
	}
}
