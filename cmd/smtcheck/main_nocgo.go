//go:build !cgo
// +build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "smtcheck requires cgo. Build with CGO_ENABLED=1 and a Z3 installation.")
	os.Exit(2)
}
