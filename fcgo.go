// Package fcgo provides safe bindings to fontconfig, the font-configuration
// and matching library used on Linux and other UNIX-like systems, for
// resolving a font family name and optional style into an installed font
// file.
//
// For most use cases, open a FontConfig with New and call Find. The
// lower-level Pattern, ObjectSet, FontSet, CharSet and LangSet wrappers are
// available for listing, sorting and inspecting fonts the way the fc-match
// and fc-list tools do.
//
// By default the bindings link against libfontconfig at build time through
// cgo, discovered with pkg-config. Building with CGO_ENABLED=0 or with the
// fcdlopen build tag instead loads the shared library at run time and
// resolves each symbol by name, which is useful for cross compiling.
//
// fontconfig keeps one process-wide configuration; a FontConfig value is
// the ownership token for it. Individual handles (patterns, sets) are not
// safe for concurrent mutation without external synchronization.
package fcgo

import (
	"github.com/obinnaokechukwu/fcgo/internal/bindings"
)

// Init resolves the fontconfig entry points. It is called automatically by
// New, but can be called explicitly to check for load errors up front.
// It is safe to call multiple times; every caller observes the outcome of
// the first resolution.
func Init() error {
	return bindings.Load()
}

// IsLoaded returns true if the fontconfig entry points have been resolved.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Version returns the fontconfig library version as a single integer
// (e.g. 21301 for 2.13.1), or 0 if the library is not available.
func Version() int {
	if err := bindings.Load(); err != nil {
		return 0
	}
	return int(bindings.FcGetVersion())
}
