//go:build cgo
// +build cgo

package z3

/*
#include <stdlib.h>
#include "z3.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"unsafe"
)

// Solver wraps a Z3_solver handle. A solver holds the ordered log of
// declarations and assertions accumulated by the commands issued against it;
// it is a single logical resource and callers must serialize concurrent use.
type Solver struct {
	ctx *Context
	s   C.Z3_solver
}

// CheckResult captures the outcome of a solver check.
type CheckResult int

const (
	// Unknown indicates the solver could not determine satisfiability.
	Unknown CheckResult = iota
	// Sat indicates the problem is satisfiable.
	Sat
	// Unsat indicates the problem is unsatisfiable.
	Unsat
)

func (r CheckResult) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// NewSolver creates a fresh solver attached to the context. The returned
// solver tracks a Go finalizer so leaked handles are still released when the
// GC runs.
func (ctx *Context) NewSolver() *Solver {
	s := &Solver{ctx, C.Z3_mk_solver(ctx.c)}
	C.Z3_solver_inc_ref(ctx.c, s.s)
	runtime.SetFinalizer(s, func(x *Solver) { x.Close() })
	return s
}

// Close releases the underlying Z3 solver reference. Repeated calls are safe
// and become no-ops once the handle has been cleared.
func (s *Solver) Close() {
	if s != nil && s.s != nil {
		C.Z3_solver_dec_ref(s.ctx.c, s.s)
		s.s = nil
	}
}

// SetGlobalParam sets a global Z3 parameter such as "timeout". Global
// parameters must be configured before creating contexts and affect every
// solver in the current process.
func SetGlobalParam(key, value string) {
	k := C.CString(key)
	v := C.CString(value)
	C.Z3_global_param_set(k, v)
	C.free(unsafe.Pointer(k))
	C.free(unsafe.Pointer(v))
}

// Assert appends a constraint to the solver's assertion log. The AST must
// have been created in the same context as the solver. Z3-level failures
// (e.g. asserting a non-boolean term) are surfaced as errors.
func (s *Solver) Assert(a AST) error {
	if s == nil || s.s == nil {
		return errors.New("nil solver")
	}
	if !a.Valid() {
		return errors.New("assert: invalid formula")
	}
	C.Z3_solver_assert(s.ctx.c, s.s, a.a)
	return s.ctx.Err()
}

// SetOption applies an SMT-LIB (set-option) command as a parameter local to
// this solver, via Z3_mk_params/Z3_solver_set_params; the setting never leaks
// into other solvers or contexts. Unknown parameter names and kind mismatches
// surface through the context error code. String values, as they arrive from
// a CLI flag, are coerced to the parameter kind they spell (bool, unsigned,
// double) and passed as symbols otherwise.
func (s *Solver) SetOption(name string, value interface{}) error {
	if s == nil || s.s == nil {
		return errors.New("nil solver")
	}
	p := C.Z3_mk_params(s.ctx.c)
	C.Z3_params_inc_ref(s.ctx.c, p)
	defer C.Z3_params_dec_ref(s.ctx.c, p)

	k := s.ctx.StringSymbol(name)
	switch v := value.(type) {
	case bool:
		C.Z3_params_set_bool(s.ctx.c, p, k, C.bool(v))
	case int:
		if v < 0 {
			return fmt.Errorf("option %s: negative value %d", name, v)
		}
		C.Z3_params_set_uint(s.ctx.c, p, k, C.uint(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("option %s: negative value %d", name, v)
		}
		C.Z3_params_set_uint(s.ctx.c, p, k, C.uint(v))
	case uint:
		C.Z3_params_set_uint(s.ctx.c, p, k, C.uint(v))
	case uint64:
		C.Z3_params_set_uint(s.ctx.c, p, k, C.uint(v))
	case float64:
		C.Z3_params_set_double(s.ctx.c, p, k, C.double(v))
	case string:
		if v == "true" || v == "false" {
			C.Z3_params_set_bool(s.ctx.c, p, k, C.bool(v == "true"))
		} else if u, err := strconv.ParseUint(v, 10, 32); err == nil {
			C.Z3_params_set_uint(s.ctx.c, p, k, C.uint(u))
		} else if f, err := strconv.ParseFloat(v, 64); err == nil {
			C.Z3_params_set_double(s.ctx.c, p, k, C.double(f))
		} else {
			C.Z3_params_set_symbol(s.ctx.c, p, k, s.ctx.StringSymbol(v))
		}
	default:
		return fmt.Errorf("unsupported option value type %T", v)
	}
	C.Z3_solver_set_params(s.ctx.c, s.s, p)
	return s.ctx.Err()
}

// Push creates a new solver scope; constraints added afterwards can be
// discarded with a matching Pop.
func (s *Solver) Push() {
	C.Z3_solver_push(s.ctx.c, s.s)
}

// Pop removes the given number of solver scopes. Passing 0 leaves scopes
// untouched. Popping more scopes than exist is rejected by Z3 and leaves the
// scope stack unchanged; the rejection is readable via the context error
// code until the next Z3 call.
func (s *Solver) Pop(n uint) {
	C.Z3_solver_pop(s.ctx.c, s.s, C.uint(n))
}

// NumScopes returns the current backtracking depth.
func (s *Solver) NumScopes() uint {
	if s == nil || s.s == nil {
		return 0
	}
	return uint(C.Z3_solver_get_num_scopes(s.ctx.c, s.s))
}

// Check runs the solver over the asserted constraints. Unknown results carry
// the textual reason from Z3 when available.
func (s *Solver) Check() (CheckResult, error) {
	r := C.Z3_solver_check(s.ctx.c, s.s)
	switch r {
	case C.Z3_L_TRUE:
		return Sat, nil
	case C.Z3_L_FALSE:
		return Unsat, nil
	default:
		rstr := C.Z3_solver_get_reason_unknown(s.ctx.c, s.s)
		if rstr != nil {
			return Unknown, errors.New(C.GoString(rstr))
		}
		return Unknown, errors.New("unknown")
	}
}

// ReasonUnknown returns Z3's explanation for an "unknown" result, or an
// empty string if the solver has not been queried or the last result was
// decisive.
func (s *Solver) ReasonUnknown() string {
	if s == nil || s.s == nil {
		return ""
	}
	rstr := C.Z3_solver_get_reason_unknown(s.ctx.c, s.s)
	if rstr == nil {
		return ""
	}
	return C.GoString(rstr)
}

// Model retrieves the current model if available. The returned model must be
// closed by the caller (or left for GC finalization) to avoid accumulating
// references inside Z3.
func (s *Solver) Model() *Model {
	m := C.Z3_solver_get_model(s.ctx.c, s.s)
	if m == nil {
		return nil
	}
	C.Z3_model_inc_ref(s.ctx.c, m)
	mod := &Model{s.ctx, m}
	runtime.SetFinalizer(mod, func(x *Model) { x.Close() })
	return mod
}

// AssertSMTLIB2String parses an SMT-LIB2 script and asserts the resulting
// formulas. Declarations found in the script are recorded on the owning
// context so FuncDeclByName and SortByName keep working for parsed symbols.
func (s *Solver) AssertSMTLIB2String(input string) error {
	cstr := C.CString(input)
	defer C.free(unsafe.Pointer(cstr))
	vec := C.Z3_parse_smtlib2_string(s.ctx.c, cstr, 0, nil, nil, 0, nil, nil)
	return s.assertParsed(vec)
}

// AssertSMTLIB2File parses an SMT-LIB2 file and asserts the resulting
// formulas, mirroring AssertSMTLIB2String with input sourced from disk.
func (s *Solver) AssertSMTLIB2File(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	vec := C.Z3_parse_smtlib2_file(s.ctx.c, cpath, 0, nil, nil, 0, nil, nil)
	return s.assertParsed(vec)
}

func (s *Solver) assertParsed(vec C.Z3_ast_vector) error {
	if code := C.Z3_get_error_code(s.ctx.c); code != C.Z3_OK {
		msg := C.Z3_get_error_msg(s.ctx.c, code)
		if msg != nil {
			return errors.New(C.GoString(msg))
		}
		return errors.New("SMT-LIB2 parse error")
	}
	if vec == nil {
		return nil
	}
	C.Z3_ast_vector_inc_ref(s.ctx.c, vec)
	defer C.Z3_ast_vector_dec_ref(s.ctx.c, vec)
	n := int(C.Z3_ast_vector_size(s.ctx.c, vec))
	for i := 0; i < n; i++ {
		a := C.Z3_ast_vector_get(s.ctx.c, vec, C.uint(i))
		if a != nil {
			s.ctx.recordFromAST(AST{ctx: s.ctx, a: a})
			C.Z3_solver_assert(s.ctx.c, s.s, a)
		}
	}
	return nil
}

// SolveSMTLIB2String asserts SMT-LIB2 commands from a string and immediately
// runs Check, for one-off satisfiability queries.
func (s *Solver) SolveSMTLIB2String(input string) (CheckResult, error) {
	if err := s.AssertSMTLIB2String(input); err != nil {
		return Unknown, err
	}
	return s.Check()
}

// SolveSMTLIB2File asserts SMT-LIB2 commands from a file and immediately
// runs Check, mirroring SolveSMTLIB2String for file-based workflows.
func (s *Solver) SolveSMTLIB2File(path string) (CheckResult, error) {
	if err := s.AssertSMTLIB2File(path); err != nil {
		return Unknown, err
	}
	return s.Check()
}
