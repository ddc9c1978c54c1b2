//go:build cgo
// +build cgo

package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	z3 "github.com/smtkit/smtlib-go/z3"
)

func TestSessionDeclareAssertCheck(t *testing.T) {
	s := newTestSession(t)
	ctx := s.Context()

	x := s.DeclareConst("x", ctx.IntSort())
	y := s.DeclareConst("y", ctx.IntSort())
	zero := ctx.IntVal(0)

	require.NoError(t, s.Assert(z3.Ge(x, zero)))
	require.NoError(t, s.Assert(z3.Ge(y, zero)))
	require.NoError(t, s.Assert(z3.Gt(z3.Add(x, y), ctx.IntVal(5))))

	res, err := s.CheckSat()
	require.NoError(t, err)
	require.Equal(t, z3.Sat, res)

	m, err := s.Model()
	require.NoError(t, err)
	defer m.Close()
	xv, ok := m.Eval(x, true).AsInt64()
	require.True(t, ok)
	yv, ok := m.Eval(y, true).AsInt64()
	require.True(t, ok)
	assert.Greater(t, xv+yv, int64(5))
}

func TestSessionPushPop(t *testing.T) {
	s := newTestSession(t)
	ctx := s.Context()

	x := s.DeclareConst("x", ctx.IntSort())
	require.NoError(t, s.Assert(z3.Gt(x, ctx.IntVal(0))))

	s.Push()
	require.NoError(t, s.Assert(z3.Lt(x, ctx.IntVal(0))))
	res, err := s.CheckSat()
	require.NoError(t, err)
	assert.Equal(t, z3.Unsat, res)
	s.Pop(1)

	res, err = s.CheckSat()
	require.NoError(t, err)
	assert.Equal(t, z3.Sat, res)
}

func TestSessionDeclareFun(t *testing.T) {
	s := newTestSession(t)
	ctx := s.Context()
	intS := ctx.IntSort()

	f, err := s.DeclareFun("f", []z3.Sort{intS}, intS)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Arity())

	// Uninterpreted: only the asserted constraints pin its behavior.
	require.NoError(t, s.Assert(z3.Eq(f.Apply(ctx.IntVal(1)), ctx.IntVal(2))))
	res, err := s.CheckSat()
	require.NoError(t, err)
	assert.Equal(t, z3.Sat, res)

	got, ok := s.FuncDecl("f")
	require.True(t, ok)
	assert.Equal(t, "f", got.Name())

	applied, err := s.Apply("f", ctx.IntVal(3))
	require.NoError(t, err)
	assert.True(t, applied.IsApp())

	_, err = s.Apply("g", ctx.IntVal(3))
	require.Error(t, err)
}

func TestSessionDeclareSort(t *testing.T) {
	s := newTestSession(t)

	color := s.DeclareSort("Color")
	require.True(t, color.Valid())
	assert.Equal(t, "Color", color.Name())
	// declare-sort is idempotent per name.
	assert.Equal(t, color, s.DeclareSort("Color"))

	red := s.DeclareConst("red", color)
	green := s.DeclareConst("green", color)
	require.NoError(t, s.Assert(z3.Distinct(red, green)))

	res, err := s.CheckSat()
	require.NoError(t, err)
	assert.Equal(t, z3.Sat, res)
}

func TestSessionDeclareDatatype(t *testing.T) {
	s := newTestSession(t)
	ctx := s.Context()

	some := ctx.NewCtor("Some", "is-Some", []z3.DatatypeField{{Name: "val", Sort: ctx.IntSort()}})
	none := ctx.NewCtor("None", "is-None", nil)
	optSort, decls, err := s.DeclareDatatype("OptionInt", []*z3.Ctor{some, none})
	require.NoError(t, err)
	require.Len(t, decls, 2)

	o := s.DeclareConst("o", optSort)
	require.NoError(t, s.Assert(z3.Eq(o, decls[0].Constructor.Apply(ctx.IntVal(10)))))

	res, err := s.CheckSat()
	require.NoError(t, err)
	require.Equal(t, z3.Sat, res)

	m, err := s.Model()
	require.NoError(t, err)
	defer m.Close()
	val := m.Eval(decls[0].Accessors[0].Apply(o), true)
	assert.Equal(t, "10", val.NumeralString())

	// Constructor names are registered for name-based application.
	_, ok := s.FuncDecl("Some")
	assert.True(t, ok)

	// Recognizers register under their NewCtor names; Z3 calls them all
	// "is", so both must coexist in the registry.
	assert.Equal(t, "is-Some", decls[0].RecognizerName)
	isSome, ok := s.FuncDecl("is-Some")
	require.True(t, ok)
	_, ok = s.FuncDecl("is-None")
	require.True(t, ok)

	s.Push()
	require.NoError(t, s.Assert(isSome.Apply(o)))
	res, err = s.CheckSat()
	require.NoError(t, err)
	assert.Equal(t, z3.Sat, res)
	s.Pop(1)
}

func TestSessionSetLogicAndOption(t *testing.T) {
	s := newTestSession(t)
	ctx := s.Context()

	require.NoError(t, s.SetLogic("ALL"))
	require.NoError(t, s.SetOption("smt.qi.eager_threshold", 10.0))

	x := s.DeclareConst("x", ctx.IntSort())
	require.NoError(t, s.Assert(z3.Eq(x, ctx.IntVal(1))))
	res, err := s.CheckSat()
	require.NoError(t, err)
	assert.Equal(t, z3.Sat, res)
}
