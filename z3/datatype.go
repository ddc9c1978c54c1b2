//go:build cgo
// +build cgo

package z3

/*
#include <stdlib.h>
#include "z3.h"
*/
import "C"

import "unsafe"

// Algebraic datatypes, the handles behind SMT-LIB (declare-datatype ...).

// Ctor is a short-lived constructor descriptor; it must be consumed by
// NewDatatype, which also frees the underlying Z3 constructor object.
type Ctor struct {
	ctx *Context
	c   C.Z3_constructor
	rec string
	n   int
}

// DatatypeField describes a constructor field with a concrete sort.
type DatatypeField struct {
	Name string
	Sort Sort
}

// CtorDecls collects the callable declarations extracted from a constructor:
// the constructor function itself, its recognizer, and one accessor per
// field. RecognizerName carries the name given to NewCtor; Z3 names every
// recognizer declaration "is" (the parametric (_ is C) form), so the
// declaration itself cannot tell recognizers apart.
type CtorDecls struct {
	Constructor    FuncDecl
	Recognizer     FuncDecl
	RecognizerName string
	Accessors      []FuncDecl
}

// NewCtor creates a constructor descriptor with the provided recognizer name
// and fields.
func (ctx *Context) NewCtor(name, recognizer string, fields []DatatypeField) *Ctor {
	symName := ctx.StringSymbol(name)
	symRec := ctx.StringSymbol(recognizer)

	n := len(fields)
	var fieldSyms *C.Z3_symbol
	var fieldSorts *C.Z3_sort
	var sortRefs *C.uint
	if n > 0 {
		syms := make([]C.Z3_symbol, n)
		sorts := make([]C.Z3_sort, n)
		refs := make([]C.uint, n)
		for i, f := range fields {
			cstr := C.CString(f.Name)
			syms[i] = C.Z3_mk_string_symbol(ctx.c, cstr)
			C.free(unsafe.Pointer(cstr))
			sorts[i] = f.Sort.s
			refs[i] = 0 // non-recursive fields
		}
		fieldSyms = (*C.Z3_symbol)(unsafe.Pointer(&syms[0]))
		fieldSorts = (*C.Z3_sort)(unsafe.Pointer(&sorts[0]))
		sortRefs = (*C.uint)(unsafe.Pointer(&refs[0]))
	}
	c := C.Z3_mk_constructor(ctx.c, symName, symRec, C.uint(n), fieldSyms, fieldSorts, sortRefs)
	return &Ctor{ctx: ctx, c: c, rec: recognizer, n: n}
}

// NewDatatype turns constructor descriptors into a datatype sort and its
// concrete declarations. The sort is recorded on the context so it can be
// rediscovered later via SortByName; constructor, recognizer, and accessor
// declarations are recorded by name as well.
func (ctx *Context) NewDatatype(name string, ctors []*Ctor) (Sort, []CtorDecls) {
	sym := ctx.StringSymbol(name)
	n := len(ctors)
	var arr *C.Z3_constructor
	if n > 0 {
		carr := make([]C.Z3_constructor, n)
		for i, k := range ctors {
			carr[i] = k.c
		}
		arr = (*C.Z3_constructor)(unsafe.Pointer(&carr[0]))
	}
	srt := C.Z3_mk_datatype(ctx.c, sym, C.uint(n), arr)
	decls := make([]CtorDecls, n)
	for i := 0; i < n; i++ {
		k := ctors[i]
		nf := k.n
		var fdecl C.Z3_func_decl
		var rdecl C.Z3_func_decl
		if nf > 0 {
			accArr := make([]C.Z3_func_decl, nf)
			acc := (*C.Z3_func_decl)(unsafe.Pointer(&accArr[0]))
			C.Z3_query_constructor(ctx.c, k.c, C.uint(nf), &fdecl, &rdecl, acc)
			accOut := make([]FuncDecl, nf)
			for j := 0; j < nf; j++ {
				accOut[j] = FuncDecl{ctx, accArr[j]}
			}
			decls[i] = CtorDecls{Constructor: FuncDecl{ctx, fdecl}, Recognizer: FuncDecl{ctx, rdecl}, RecognizerName: k.rec, Accessors: accOut}
		} else {
			C.Z3_query_constructor(ctx.c, k.c, 0, &fdecl, &rdecl, nil)
			decls[i] = CtorDecls{Constructor: FuncDecl{ctx, fdecl}, Recognizer: FuncDecl{ctx, rdecl}, RecognizerName: k.rec, Accessors: nil}
		}
		C.Z3_del_constructor(ctx.c, k.c)
	}
	sort := Sort{ctx, srt}
	ctx.rememberSort(sort)
	for _, d := range decls {
		ctx.rememberDecl(d.Constructor.Name(), d.Constructor)
		ctx.rememberDecl(d.RecognizerName, d.Recognizer)
		for _, acc := range d.Accessors {
			ctx.rememberDecl(acc.Name(), acc)
		}
	}
	return sort, decls
}
