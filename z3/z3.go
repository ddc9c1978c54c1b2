//go:build cgo
// +build cgo

// Package z3 is the foreign-function bridge to the Z3 theorem prover.
// It wraps the C API behind opaque Go handles (Context, Sort, AST,
// FuncDecl, Solver, Model) and exposes every solver primitive under a Go
// identifier, so SMT-LIB operators that collide with host syntax (=, +,
// ite, and, forall, ...) are reachable as ordinary functions.
package z3

/*
// cgo headers (linker flags are provided via separate build-tagged files).
#include <stdlib.h>
#include "z3.h"

int model_eval_wrap(Z3_context c, Z3_model m, Z3_ast a, int model_completion, Z3_ast* out) {
	return Z3_model_eval(c, m, a, model_completion, out);
}

// Install a no-op error handler so Z3 reports errors through error codes
// instead of aborting the process; Go reads the codes via Context.Err.
void go_z3_error_handler(Z3_context c, Z3_error_code e) {
	// no-op
}
static void z3_set_noop_error_handler(Z3_context c) {
	Z3_set_error_handler(c, go_z3_error_handler);
}
*/
import "C"
import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"unsafe"
)

// Context wraps Z3_context. Besides the raw handle it keeps name-based
// bookkeeping for sorts and function declarations so higher layers (and
// SMT-LIB scripts loaded through the parser) can rediscover handles by the
// names they carry in SMT-LIB text.
type Context struct {
	c     C.Z3_context
	sorts map[string]Sort
	decls map[string]FuncDecl
}

// Config wraps Z3_config.
type Config struct{ cfg C.Z3_config }

// NewConfig creates a default config with model construction enabled, so
// solver models can be queried without extra knobs. Callers may mutate the
// returned Config via SetParam before NewContext consumes it.
func NewConfig() *Config {
	cfg := &Config{cfg: C.Z3_mk_config()}
	cfg.SetParam("model", "true")
	cfg.SetParam("auto_config", "true")
	return cfg
}

// SetParam sets a configuration parameter. Z3 only consults these at context
// creation time, so mutating the config afterwards has no effect on existing
// contexts.
func (cfg *Config) SetParam(key, value string) {
	if cfg == nil || cfg.cfg == nil {
		return
	}
	k := C.CString(key)
	v := C.CString(value)
	C.Z3_set_param_value(cfg.cfg, k, v)
	C.free(unsafe.Pointer(k))
	C.free(unsafe.Pointer(v))
}

// Close frees the config. Safe to call multiple times or on a nil receiver.
func (cfg *Config) Close() {
	if cfg != nil && cfg.cfg != nil {
		C.Z3_del_config(cfg.cfg)
		cfg.cfg = nil
	}
}

// NewContext creates a new Z3 context with the given config (optional). When
// no config is provided a temporary one is created under the hood. Contexts
// install a no-op error handler so Z3 surfaces errors through Err instead of
// aborting.
func NewContext(cfg *Config) *Context {
	var c C.Z3_context
	if cfg != nil {
		c = C.Z3_mk_context(cfg.cfg)
	} else {
		tmp := C.Z3_mk_config()
		c = C.Z3_mk_context(tmp)
		C.Z3_del_config(tmp)
	}
	C.z3_set_noop_error_handler(c)
	ctx := &Context{c: c, sorts: make(map[string]Sort), decls: make(map[string]FuncDecl)}
	runtime.SetFinalizer(ctx, func(x *Context) { x.Close() })
	return ctx
}

// Close deletes the context and clears the name bookkeeping. After Close
// returns the context must not be used.
func (ctx *Context) Close() {
	if ctx != nil && ctx.c != nil {
		C.Z3_del_context(ctx.c)
		ctx.c = nil
	}
	if ctx != nil {
		ctx.sorts = nil
		ctx.decls = nil
	}
}

// Err reports the pending Z3 error for this context, or nil when the last
// API call succeeded. The textual message comes from Z3 itself.
func (ctx *Context) Err() error {
	if ctx == nil || ctx.c == nil {
		return errors.New("nil z3 context")
	}
	code := C.Z3_get_error_code(ctx.c)
	if code == C.Z3_OK {
		return nil
	}
	msg := C.Z3_get_error_msg(ctx.c, code)
	if msg != nil {
		return errors.New(C.GoString(msg))
	}
	return fmt.Errorf("z3 error code %d", int(code))
}

// Sort wraps Z3_sort.
type Sort struct {
	ctx *Context
	s   C.Z3_sort
}

// AST wraps Z3_ast.
type AST struct {
	ctx *Context
	a   C.Z3_ast
}

// Valid reports whether the sort wraps a live handle. The zero Sort is not
// valid.
func (s Sort) Valid() bool { return s.ctx != nil && s.s != nil }

// Valid reports whether the AST wraps a live handle.
func (a AST) Valid() bool { return a.ctx != nil && a.a != nil }

// BoolSort returns the boolean sort.
func (ctx *Context) BoolSort() Sort {
	s := Sort{ctx, C.Z3_mk_bool_sort(ctx.c)}
	ctx.rememberSort(s)
	return s
}

// IntSort returns the sort of mathematical integers.
func (ctx *Context) IntSort() Sort {
	s := Sort{ctx, C.Z3_mk_int_sort(ctx.c)}
	ctx.rememberSort(s)
	return s
}

// RealSort returns the real-number sort.
func (ctx *Context) RealSort() Sort {
	s := Sort{ctx, C.Z3_mk_real_sort(ctx.c)}
	ctx.rememberSort(s)
	return s
}

// StringSort returns the Z3 string sort (sequence of unicode characters).
func (ctx *Context) StringSort() Sort {
	s := Sort{ctx, C.Z3_mk_string_sort(ctx.c)}
	ctx.rememberSort(s)
	return s
}

// UninterpretedSort creates (or rediscovers) an uninterpreted sort with the
// given name, the handle behind an SMT-LIB (declare-sort name 0) command.
// Repeated calls with the same name return the same sort.
func (ctx *Context) UninterpretedSort(name string) Sort {
	if s, ok := ctx.SortByName(name); ok {
		return s
	}
	sym := ctx.StringSymbol(name)
	s := Sort{ctx, C.Z3_mk_uninterpreted_sort(ctx.c, sym)}
	ctx.rememberSort(s)
	return s
}

// SortByName returns a previously recorded sort by its symbolic name or
// printed form. Sorts are recorded when created through the helpers above or
// when encountered while loading SMT-LIB text.
func (ctx *Context) SortByName(name string) (Sort, bool) {
	if ctx == nil || name == "" || ctx.sorts == nil {
		return Sort{}, false
	}
	s, ok := ctx.sorts[name]
	return s, ok
}

// StringSymbol creates a Z3 symbol from the provided Go string.
func (ctx *Context) StringSymbol(name string) C.Z3_symbol {
	cstr := C.CString(name)
	defer C.free(unsafe.Pointer(cstr))
	return C.Z3_mk_string_symbol(ctx.c, cstr)
}

// Const creates a constant with the given name and sort and records its
// declaration so it can be rediscovered by name later.
func (ctx *Context) Const(name string, s Sort) AST {
	sym := ctx.StringSymbol(name)
	a := C.Z3_mk_const(ctx.c, sym, s.s)
	C.Z3_inc_ref(ctx.c, a)
	ctx.rememberSort(s)
	res := AST{ctx, a}
	ctx.rememberDecl(name, res.Decl())
	return res
}

func (ctx *Context) rememberSort(s Sort) {
	if ctx == nil || s.s == nil {
		return
	}
	ctx.storeSortByKey(s, s.Name())
	ctx.storeSortByKey(s, s.String())
}

func (ctx *Context) storeSortByKey(s Sort, key string) {
	if ctx == nil || s.s == nil || key == "" {
		return
	}
	if ctx.sorts == nil {
		ctx.sorts = make(map[string]Sort)
	}
	if _, exists := ctx.sorts[key]; !exists {
		ctx.sorts[key] = s
	}
}

func (ctx *Context) rememberDecl(name string, d FuncDecl) {
	if ctx == nil || d.d == nil || name == "" {
		return
	}
	if ctx.decls == nil {
		ctx.decls = make(map[string]FuncDecl)
	}
	if _, exists := ctx.decls[name]; !exists {
		ctx.decls[name] = d
	}
}

// recordFromAST walks an AST loaded from SMT-LIB text and records every sort
// and named declaration it mentions, so later lookups by name keep working.
func (ctx *Context) recordFromAST(root AST) {
	if ctx == nil || !root.Valid() {
		return
	}
	root.Walk(func(node AST) bool {
		if !node.Valid() {
			return true
		}
		ctx.rememberSort(node.Sort())
		if node.IsApp() {
			decl := node.Decl()
			ctx.rememberDecl(decl.Name(), decl)
		}
		return true
	})
}

// FuncDeclByName returns a previously encountered declaration by name.
func (ctx *Context) FuncDeclByName(name string) (FuncDecl, bool) {
	if ctx == nil || name == "" || ctx.decls == nil {
		return FuncDecl{}, false
	}
	d, ok := ctx.decls[name]
	return d, ok
}

// IntVal creates an integer numeral AST.
func (ctx *Context) IntVal(v int64) AST {
	// String-based numeral creation avoids platform-dependent C integer types.
	s := strconv.FormatInt(v, 10)
	cstr := C.CString(s)
	defer C.free(unsafe.Pointer(cstr))
	a := C.Z3_mk_numeral(ctx.c, cstr, ctx.IntSort().s)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// RealVal creates a real numeral from a string like "1/3" or "2". Z3 accepts
// rational literals, so fractions are passed in textual form.
func (ctx *Context) RealVal(num string) AST {
	cstr := C.CString(num)
	defer C.free(unsafe.Pointer(cstr))
	a := C.Z3_mk_numeral(ctx.c, cstr, ctx.RealSort().s)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// StringVal creates a string literal AST.
func (ctx *Context) StringVal(s string) AST {
	cstr := C.CString(s)
	defer C.free(unsafe.Pointer(cstr))
	a := C.Z3_mk_string(ctx.c, cstr)
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// BoolVal creates the boolean constant true or false.
func (ctx *Context) BoolVal(b bool) AST {
	var a C.Z3_ast
	if b {
		a = C.Z3_mk_true(ctx.c)
	} else {
		a = C.Z3_mk_false(ctx.c)
	}
	C.Z3_inc_ref(ctx.c, a)
	return AST{ctx, a}
}

// Sort returns the sort of the AST.
func (a AST) Sort() Sort {
	if !a.Valid() {
		return Sort{}
	}
	return Sort{a.ctx, C.Z3_get_sort(a.ctx.c, a.a)}
}

// String returns the SMT-LIB textual form of the AST.
func (a AST) String() string {
	if a.a == nil {
		return "<nil>"
	}
	s := C.Z3_ast_to_string(a.ctx.c, a.a)
	if s == nil {
		return "<invalid>"
	}
	return C.GoString(s)
}

// String returns the SMT-LIB textual form of the sort.
func (s Sort) String() string {
	if s.ctx == nil || s.s == nil {
		return ""
	}
	str := C.Z3_sort_to_string(s.ctx.c, s.s)
	if str == nil {
		return "<invalid-sort>"
	}
	return C.GoString(str)
}

// Name returns the symbolic name of the sort if available.
func (s Sort) Name() string {
	if s.ctx == nil || s.s == nil {
		return ""
	}
	sym := C.Z3_get_sort_name(s.ctx.c, s.s)
	return symbolToString(s.ctx, sym)
}

// NumeralString returns the textual numeral if the AST is numeric.
func (a AST) NumeralString() string {
	if a.a == nil {
		return ""
	}
	s := C.Z3_get_numeral_string(a.ctx.c, a.a)
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func symbolToString(ctx *Context, sym C.Z3_symbol) string {
	if ctx == nil || ctx.c == nil || sym == nil {
		return ""
	}
	switch C.Z3_get_symbol_kind(ctx.c, sym) {
	case C.Z3_INT_SYMBOL:
		v := int(C.Z3_get_symbol_int(ctx.c, sym))
		return "#" + strconv.Itoa(v)
	case C.Z3_STRING_SYMBOL:
		return C.GoString(C.Z3_get_symbol_string(ctx.c, sym))
	default:
		return ""
	}
}
