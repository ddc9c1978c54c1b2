//go:build cgo
// +build cgo

package z3

/*
#include "z3.h"
*/
import "C"

import (
	"strconv"
	"unsafe"
)

// FuncDecl wraps Z3_func_decl, the handle behind an SMT-LIB
// (declare-fun name (dom...) range) signature.
type FuncDecl struct {
	ctx *Context
	d   C.Z3_func_decl
}

// Valid reports whether the declaration wraps a live handle.
func (d FuncDecl) Valid() bool { return d.ctx != nil && d.d != nil }

// NewFuncDecl creates a function declaration with the given name, domain
// sorts, and result sort. An empty domain declares a nullary (constant)
// symbol. Z3 hash-conses declarations, so creating the same signature twice
// yields the same handle.
func (ctx *Context) NewFuncDecl(name string, domain []Sort, result Sort) FuncDecl {
	sym := ctx.StringSymbol(name)
	var dp *C.Z3_sort
	if len(domain) > 0 {
		cdomain := make([]C.Z3_sort, len(domain))
		for i, s := range domain {
			cdomain[i] = s.s
		}
		dp = (*C.Z3_sort)(unsafe.Pointer(&cdomain[0]))
	}
	d := C.Z3_mk_func_decl(ctx.c, sym, C.uint(len(domain)), dp, result.s)
	C.Z3_inc_ref(ctx.c, C.Z3_func_decl_to_ast(ctx.c, d))
	return FuncDecl{ctx, d}
}

// App applies a function declaration to the provided arguments. With no
// arguments it builds the nullary application, i.e. the constant named by
// the declaration.
func (ctx *Context) App(f FuncDecl, args ...AST) AST {
	var a C.Z3_ast
	if len(args) == 0 {
		a = C.Z3_mk_app(ctx.c, f.d, 0, nil)
	} else {
		cargs := make([]C.Z3_ast, len(args))
		for i, v := range args {
			cargs[i] = v.a
		}
		a = C.Z3_mk_app(ctx.c, f.d, C.uint(len(cargs)), (*C.Z3_ast)(unsafe.Pointer(&cargs[0])))
	}
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// Apply is shorthand for applying the declaration in its own context.
func (d FuncDecl) Apply(args ...AST) AST {
	return d.ctx.App(d, args...)
}

// Name returns the symbol name of the declaration.
func (d FuncDecl) Name() string {
	if !d.Valid() {
		return ""
	}
	sym := C.Z3_get_decl_name(d.ctx.c, d.d)
	return symbolToString(d.ctx, sym)
}

// Arity returns the number of arguments the declaration takes.
func (d FuncDecl) Arity() int {
	if !d.Valid() {
		return 0
	}
	return int(C.Z3_get_arity(d.ctx.c, d.d))
}

// Domain returns the sort of the i-th argument.
func (d FuncDecl) Domain(i int) Sort {
	if !d.Valid() || i < 0 || i >= d.Arity() {
		return Sort{}
	}
	return Sort{d.ctx, C.Z3_get_domain(d.ctx.c, d.d, C.uint(i))}
}

// Result returns the sort of the declaration's result.
func (d FuncDecl) Result() Sort {
	if !d.Valid() {
		return Sort{}
	}
	return Sort{d.ctx, C.Z3_get_range(d.ctx.c, d.d)}
}

// Kind returns the declaration kind (see DeclKind).
func (d FuncDecl) Kind() DeclKind {
	if !d.Valid() {
		return DeclKind(0)
	}
	return DeclKind(C.Z3_get_decl_kind(d.ctx.c, d.d))
}

// String returns the SMT-LIB textual form of the declaration.
func (d FuncDecl) String() string {
	if !d.Valid() {
		return "<nil-decl>"
	}
	s := C.Z3_func_decl_to_string(d.ctx.c, d.d)
	if s == nil {
		return "<invalid-decl>"
	}
	return C.GoString(s)
}

// DomainString renders the domain sorts for diagnostics, e.g. "(Int Int)".
func (d FuncDecl) DomainString() string {
	n := d.Arity()
	out := "("
	for i := 0; i < n; i++ {
		if i > 0 {
			out += " "
		}
		s := d.Domain(i)
		if name := s.Name(); name != "" {
			out += name
		} else {
			out += "#" + strconv.Itoa(i)
		}
	}
	return out + ")"
}
