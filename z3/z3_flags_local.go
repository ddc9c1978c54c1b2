//go:build cgo
// +build cgo

package z3

/*
// CGO_CFLAGS and CGO_LDFLAGS can be set at build time to point at a local
// Z3 checkout. No defaults here to avoid hard-coding machine paths.
*/
import "C"
