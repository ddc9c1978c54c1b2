//go:build !cgo
// +build !cgo

// Package smt embeds the SMT-LIB v2 command language over the z3 binding.
// This stub lets the package type-check without cgo available.
package smt

import (
	"errors"

	z3 "github.com/smtkit/smtlib-go/z3"
)

var errNoCgo = errors.New("smt: cgo support is required")

type Param struct {
	Name string
	Sort z3.Sort
}

type Definition struct {
	Name   string
	Params []Param
	Result z3.Sort
	Body   func(args ...z3.AST) z3.AST
}

type Expansion struct {
	Decl  z3.FuncDecl
	Axiom z3.AST
}

type DefinitionError struct {
	Name   string
	Reason string
}

func (e *DefinitionError) Error() string { return "define-fun: cgo support is required" }

type Session struct{}

func NewSession(*z3.Context) *Session { return &Session{} }

func (s *Session) Close()               {}
func (s *Session) Context() *z3.Context { return nil }

func Expand(*z3.Context, Definition) (Expansion, error) { return Expansion{}, errNoCgo }

func (s *Session) DefineFun(Definition) (z3.FuncDecl, error) { return z3.FuncDecl{}, errNoCgo }
func (s *Session) DeclareFun(string, []z3.Sort, z3.Sort) (z3.FuncDecl, error) {
	return z3.FuncDecl{}, errNoCgo
}
func (s *Session) DeclareSort(string) z3.Sort          { return z3.Sort{} }
func (s *Session) DeclareConst(string, z3.Sort) z3.AST { return z3.AST{} }
func (s *Session) DeclareDatatype(string, []*z3.Ctor) (z3.Sort, []z3.CtorDecls, error) {
	return z3.Sort{}, nil, errNoCgo
}
func (s *Session) Apply(string, ...z3.AST) (z3.AST, error) { return z3.AST{}, errNoCgo }
func (s *Session) Assert(z3.AST) error                     { return errNoCgo }
func (s *Session) CheckSat() (z3.CheckResult, error)       { return z3.Unknown, errNoCgo }
func (s *Session) Model() (*z3.Model, error)               { return nil, errNoCgo }
func (s *Session) FuncDecl(string) (z3.FuncDecl, bool)     { return z3.FuncDecl{}, false }
func (s *Session) SetLogic(string) error                   { return errNoCgo }
func (s *Session) SetOption(string, interface{}) error     { return errNoCgo }
func (s *Session) Push()                                   {}
func (s *Session) Pop(uint)                                {}
