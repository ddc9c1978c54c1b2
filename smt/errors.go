//go:build cgo
// +build cgo

package smt

import "strconv"

// DefinitionError reports a structural-match failure: a definition form that
// fits neither the zero-parameter nor the n-parameter shape. It is returned
// at expansion time, before any primitive command is issued, and affects
// only the one definition it names.
type DefinitionError struct {
	Name   string // definition name, if one was given
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return "define-fun: " + e.Reason
	}
	return "define-fun " + e.Name + ": " + e.Reason
}

func paramReason(i int, detail string) string {
	return "parameter " + strconv.Itoa(i) + ": " + detail
}
