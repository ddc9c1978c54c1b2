//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
*/
import "C"

import "unsafe"

// This file is the renamed built-in operator layer: each SMT-LIB primitive
// is exposed under a Go identifier (= becomes Eq, ite becomes Ite, and so
// on). Constructors are black boxes returning opaque AST handles; no typing
// is enforced on the Go side, Z3 reports sort errors through Context.Err.

func mkVariadic(args []AST, mk func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast, op string) AST {
	if len(args) == 0 {
		panic(op + " requires at least one arg")
	}
	ctx := args[0].ctx
	cargs := make([]C.Z3_ast, len(args))
	for i, a := range args {
		cargs[i] = a.a
	}
	a := mk(ctx.c, C.uint(len(cargs)), (*C.Z3_ast)(unsafe.Pointer(&cargs[0])))
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

func mkBinary(x, y AST, mk func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast) AST {
	ctx := x.ctx
	a := mk(ctx.c, x.a, y.a)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// Not returns the logical negation of the AST.
func (t AST) Not() AST {
	a := C.Z3_mk_not(t.ctx.c, t.a)
	C.Z3_inc_ref(t.ctx.c, a)
	return AST{t.ctx, a}
}

// And builds a conjunction over all provided ASTs.
func And(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_and(c, n, a)
	}, "And")
}

// Or builds a disjunction over all provided ASTs.
func Or(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_or(c, n, a)
	}, "Or")
}

// Xor builds the exclusive disjunction of x and y.
func Xor(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_xor(c, a, b)
	})
}

// Iff builds the biconditional x <=> y.
func Iff(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_iff(c, a, b)
	})
}

// Implies builds the implication x => y.
func Implies(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_implies(c, a, b)
	})
}

// Eq builds an equality between two ASTs.
func Eq(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_eq(c, a, b)
	})
}

// Distinct enforces that all provided ASTs take pairwise different values.
func Distinct(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_distinct(c, n, a)
	}, "Distinct")
}

// Ite builds an if-then-else over c, t, and e.
func Ite(c, t, e AST) AST {
	ctx := c.ctx
	a := C.Z3_mk_ite(ctx.c, c.a, t.a, e.a)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// Add sums all provided numeric ASTs.
func Add(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_add(c, n, a)
	}, "Add")
}

// Sub subtracts subsequent ASTs from the first argument.
func Sub(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_sub(c, n, a)
	}, "Sub")
}

// Mul multiplies all provided numeric ASTs.
func Mul(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_mul(c, n, a)
	}, "Mul")
}

// Div builds the quotient x / y (integer or real division per the sort).
func Div(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_div(c, a, b)
	})
}

// Mod builds the integer modulus x mod y.
func Mod(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_mod(c, a, b)
	})
}

// Neg builds the unary minus of x.
func Neg(x AST) AST {
	a := C.Z3_mk_unary_minus(x.ctx.c, x.a)
	C.Z3_inc_ref(x.ctx.c, a)
	return AST{x.ctx, a}
}

// Le builds the constraint x <= y.
func Le(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_le(c, a, b)
	})
}

// Lt builds the constraint x < y.
func Lt(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_lt(c, a, b)
	})
}

// Ge builds the constraint x >= y.
func Ge(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_ge(c, a, b)
	})
}

// Gt builds the constraint x > y.
func Gt(x, y AST) AST {
	return mkBinary(x, y, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_gt(c, a, b)
	})
}

// Select builds an array select expression.
func Select(array AST, index AST) AST {
	return mkBinary(array, index, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_select(c, a, b)
	})
}

// Store builds an array store expression.
func Store(array, index, value AST) AST {
	ctx := array.ctx
	a := C.Z3_mk_store(ctx.c, array.a, index.a, value.a)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// Concat concatenates the provided sequence (string) ASTs.
func Concat(args ...AST) AST {
	return mkVariadic(args, func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_seq_concat(c, n, a)
	}, "Concat")
}

// Length returns the sequence length as an Int AST.
func Length(s AST) AST {
	a := C.Z3_mk_seq_length(s.ctx.c, s.a)
	C.Z3_inc_ref(s.ctx.c, a)
	return AST{s.ctx, a}
}

// Contains builds the predicate (contains s t).
func Contains(s, t AST) AST {
	return mkBinary(s, t, func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_seq_contains(c, a, b)
	})
}
