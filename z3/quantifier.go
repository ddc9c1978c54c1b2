//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
*/
import "C"

import "unsafe"

// Quantifier construction over constant bound variables. Callers create the
// bound variables with Context.Const and Z3 rebinds them to de Bruijn
// indices internally, which keeps the Go side free of index bookkeeping.

// Forall builds a universal quantifier binding the given constants, in the
// given order, over body. The bound slice must not be empty; a zero-arity
// quantifier is degenerate and Z3 rejects it.
func Forall(bound []AST, body AST) AST {
	return mkQuantifierConst(true, bound, body)
}

// Exists builds an existential quantifier binding the given constants over
// body.
func Exists(bound []AST, body AST) AST {
	return mkQuantifierConst(false, bound, body)
}

func mkQuantifierConst(forall bool, bound []AST, body AST) AST {
	if len(bound) == 0 {
		panic("quantifier requires at least one bound variable")
	}
	ctx := body.ctx
	capps := make([]C.Z3_app, len(bound))
	for i, b := range bound {
		// Constants are apps; Z3_app is a refinement of Z3_ast.
		capps[i] = (C.Z3_app)(unsafe.Pointer(b.a))
	}
	bp := (*C.Z3_app)(unsafe.Pointer(&capps[0]))
	var a C.Z3_ast
	if forall {
		a = C.Z3_mk_forall_const(ctx.c, 0, C.uint(len(bound)), bp, 0, nil, body.a)
	} else {
		a = C.Z3_mk_exists_const(ctx.c, 0, C.uint(len(bound)), bp, 0, nil, body.a)
	}
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// IsQuantifier reports whether the AST is a quantified formula.
func (a AST) IsQuantifier() bool {
	return a.Kind() == ASTKindQuantifier
}

// IsForall reports whether the AST is a universal quantifier.
func (a AST) IsForall() bool {
	if !a.IsQuantifier() {
		return false
	}
	return bool(C.Z3_is_quantifier_forall(a.ctx.c, a.a))
}

// NumBound returns the number of variables bound by a quantifier AST, or 0
// for non-quantifiers.
func (a AST) NumBound() int {
	if !a.IsQuantifier() {
		return 0
	}
	return int(C.Z3_get_quantifier_num_bound(a.ctx.c, a.a))
}

// BoundName returns the name of the i-th bound variable of a quantifier.
func (a AST) BoundName(i int) string {
	if i < 0 || i >= a.NumBound() {
		return ""
	}
	sym := C.Z3_get_quantifier_bound_name(a.ctx.c, a.a, C.uint(i))
	return symbolToString(a.ctx, sym)
}

// BoundSort returns the sort of the i-th bound variable of a quantifier.
func (a AST) BoundSort(i int) Sort {
	if i < 0 || i >= a.NumBound() {
		return Sort{}
	}
	return Sort{a.ctx, C.Z3_get_quantifier_bound_sort(a.ctx.c, a.a, C.uint(i))}
}

// QuantifierBody returns the body of a quantifier AST. Bound variables occur
// in the body as de Bruijn indexed variables (ASTKindVar).
func (a AST) QuantifierBody() AST {
	if !a.IsQuantifier() {
		return AST{}
	}
	body := C.Z3_get_quantifier_body(a.ctx.c, a.a)
	if body == nil {
		return AST{}
	}
	C.Z3_inc_ref(a.ctx.c, body)
	return AST{a.ctx, body}
}
