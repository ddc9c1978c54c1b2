//go:build cgo && linux
// +build cgo,linux

package z3

/*
// Default linker flag for Linux, where libz3 installed via the distro
// package (libz3-dev) lands on the default linker path. Override with
// CGO_CFLAGS/CGO_LDFLAGS for non-standard installs.
#cgo LDFLAGS: -lz3
*/
import "C"
